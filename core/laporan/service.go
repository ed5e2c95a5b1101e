package laporan

import (
	"context"
	"time"

	"github.com/mrsmranau/ehomeroom/core"
)

var ErrNotFound = core.NewNotFoundError("Laporan")

type (
	Repository interface {
		// QueryReports orders by tarikh_laporan DESC, created_at DESC.
		QueryReports(ctx context.Context, filter QueryFilter) ([]Report, error)
		GetReportByID(ctx context.Context, id int64) (Report, error)
		CreateReport(ctx context.Context, rep Report) (int64, error)
		UpdateReport(ctx context.Context, rep Report) error
		SetReportStatus(ctx context.Context, id int64, status string, updatedAt time.Time) error
		ReportStats(ctx context.Context, homeroomID int64) (Stats, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) ([]Report, error) {
	if filter.Status == "" {
		filter.Status = StatusAktif
	}
	return svc.repo.QueryReports(ctx, filter)
}

// Get returns the report whatever its status.
func (svc *Service) Get(ctx context.Context, id int64) (Report, error) {
	return svc.repo.GetReportByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, nr NewReport, createdBy int64) (int64, error) {
	if err := nr.Validate(); err != nil {
		return 0, err
	}
	now := time.Now().UTC()
	return svc.repo.CreateReport(ctx, Report{
		HomeroomID:    nr.HomeroomID.Int64(),
		TarikhLaporan: nr.TarikhLaporan,
		JenisLaporan:  nr.JenisLaporan,
		Tajuk:         nr.Tajuk,
		Perkara:       nr.Perkara,
		Status:        StatusAktif,
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

func (svc *Service) Update(ctx context.Context, id int64, nr NewReport) error {
	if err := nr.Validate(); err != nil {
		return err
	}
	return svc.repo.UpdateReport(ctx, Report{
		ID:            id,
		HomeroomID:    nr.HomeroomID.Int64(),
		TarikhLaporan: nr.TarikhLaporan,
		JenisLaporan:  nr.JenisLaporan,
		Tajuk:         nr.Tajuk,
		Perkara:       nr.Perkara,
		UpdatedAt:     time.Now().UTC(),
	})
}

// Archive is the delete operation of reports: the row stays, with status arkib.
func (svc *Service) Archive(ctx context.Context, id int64) error {
	return svc.repo.SetReportStatus(ctx, id, StatusArkib, time.Now().UTC())
}

// Stats counts active reports, optionally for one homeroom (homeroomID > 0).
func (svc *Service) Stats(ctx context.Context, homeroomID int64) (Stats, error) {
	return svc.repo.ReportStats(ctx, homeroomID)
}
