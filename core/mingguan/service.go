package mingguan

import (
	"context"
	"time"

	"github.com/mrsmranau/ehomeroom/core"
)

var ErrNotFound = core.NewNotFoundError("Laporan mingguan")

type (
	Repository interface {
		// QueryWeeklyReports orders by pertemuan_ke DESC.
		QueryWeeklyReports(ctx context.Context, homeroomID int64) ([]Report, error)
		GetWeeklyReportByID(ctx context.Context, id int64) (Report, error)
		// CreateWeeklyReport assigns the next pertemuan_ke of the homeroom and stores the
		// absences in the same transaction.
		CreateWeeklyReport(ctx context.Context, rep Report) (Report, error)
		// UpdateWeeklyReport replaces the row and its absences.
		UpdateWeeklyReport(ctx context.Context, rep Report) error
		DeleteWeeklyReport(ctx context.Context, id int64) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, homeroomID int64) ([]Report, error) {
	return svc.repo.QueryWeeklyReports(ctx, homeroomID)
}

func (svc *Service) Get(ctx context.Context, id int64) (Report, error) {
	return svc.repo.GetWeeklyReportByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, nr NewReport) (Report, error) {
	if err := nr.Validate(); err != nil {
		return Report{}, err
	}
	rep := nr.report()
	rep.CreatedAt = time.Now().UTC()
	rep.UpdatedAt = rep.CreatedAt
	return svc.repo.CreateWeeklyReport(ctx, rep)
}

func (svc *Service) Update(ctx context.Context, id int64, nr NewReport) error {
	if err := nr.Validate(); err != nil {
		return err
	}
	rep := nr.report()
	rep.ID = id
	rep.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateWeeklyReport(ctx, rep)
}

func (svc *Service) Delete(ctx context.Context, id int64) error {
	return svc.repo.DeleteWeeklyReport(ctx, id)
}
