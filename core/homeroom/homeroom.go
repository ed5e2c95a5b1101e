package homeroom

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/mrsmranau/ehomeroom/core"
)

var ErrNotFound = core.NewNotFoundError("Homeroom")

// Homeroom is a classroom group; every student-facing record belongs to one.
type Homeroom struct {
	ID           int64       `db:"id" json:"id"`
	NamaHomeroom string      `db:"nama_homeroom" json:"nama_homeroom"`
	Tingkatan    string      `db:"tingkatan" json:"tingkatan"`
	NamaGuru     null.String `db:"nama_guru" json:"nama_guru"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updated_at"`
}

type NewHomeroom struct {
	NamaHomeroom string      `json:"nama_homeroom" validate:"required"`
	Tingkatan    string      `json:"tingkatan" validate:"required"`
	NamaGuru     null.String `json:"nama_guru"`
}

func (nh *NewHomeroom) Validate() error {
	nh.NamaHomeroom = core.CleanString(nh.NamaHomeroom)
	nh.Tingkatan = core.CleanString(nh.Tingkatan)
	nh.NamaGuru = core.CleanNullString(nh.NamaGuru)
	return core.Validate.Struct(nh)
}

type (
	Repository interface {
		CreateHomeroom(ctx context.Context, hr Homeroom) (Homeroom, error)
		// QueryHomerooms returns all homerooms ordered by tingkatan, nama_homeroom.
		QueryHomerooms(ctx context.Context) ([]Homeroom, error)
		GetHomeroomByID(ctx context.Context, id int64) (Homeroom, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nh NewHomeroom) (Homeroom, error) {
	if err := nh.Validate(); err != nil {
		return Homeroom{}, err
	}
	now := time.Now().UTC()
	return svc.repo.CreateHomeroom(ctx, Homeroom{
		NamaHomeroom: nh.NamaHomeroom,
		Tingkatan:    nh.Tingkatan,
		NamaGuru:     nh.NamaGuru,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (svc *Service) QueryAll(ctx context.Context) ([]Homeroom, error) {
	return svc.repo.QueryHomerooms(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int64) (Homeroom, error) {
	return svc.repo.GetHomeroomByID(ctx, id)
}
