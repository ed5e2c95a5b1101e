package aktiviti

import (
	"context"
	"time"

	"github.com/mrsmranau/ehomeroom/core"
)

var ErrNotFound = core.NewNotFoundError("Aktiviti")

type (
	Repository interface {
		// QueryActivities orders by tarikh DESC, created_at DESC.
		QueryActivities(ctx context.Context, kind Kind, homeroomID int64) ([]Activity, error)
		GetActivityByID(ctx context.Context, kind Kind, id int64) (Activity, error)
		CreateActivity(ctx context.Context, kind Kind, a Activity) (int64, error)
		UpdateActivity(ctx context.Context, kind Kind, a Activity) error
		DeleteActivity(ctx context.Context, kind Kind, id int64) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, kind Kind, homeroomID int64) ([]Activity, error) {
	return svc.repo.QueryActivities(ctx, kind, homeroomID)
}

func (svc *Service) Get(ctx context.Context, kind Kind, id int64) (Activity, error) {
	return svc.repo.GetActivityByID(ctx, kind, id)
}

func (svc *Service) Create(ctx context.Context, kind Kind, na NewActivity) (int64, error) {
	if err := na.Validate(); err != nil {
		return 0, err
	}
	a := na.activity(kind)
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	return svc.repo.CreateActivity(ctx, kind, a)
}

func (svc *Service) Update(ctx context.Context, kind Kind, id int64, na NewActivity) error {
	if err := na.Validate(); err != nil {
		return err
	}
	a := na.activity(kind)
	a.ID = id
	a.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateActivity(ctx, kind, a)
}

func (svc *Service) Delete(ctx context.Context, kind Kind, id int64) error {
	return svc.repo.DeleteActivity(ctx, kind, id)
}
