package pencapaian

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/mrsmranau/ehomeroom/core"
)

var ErrNotFound = core.NewNotFoundError("Pencapaian")

// Peringkat (tier)
const (
	PeringkatDaerah       = "daerah"
	PeringkatNegeri       = "negeri"
	PeringkatKebangsaan   = "kebangsaan"
	PeringkatAntaraMaktab = "antara_maktab"
)

// Achievement is a student's recognised result. The student is denormalised (name + no_maktab).
type Achievement struct {
	ID             int64       `db:"id" json:"id"`
	HomeroomID     int64       `db:"homeroom_id" json:"homeroom_id"`
	NamaPelajar    string      `db:"nama_pelajar" json:"nama_pelajar"`
	NoMaktab       null.String `db:"no_maktab" json:"no_maktab"`
	PNG            core.Number `db:"png" json:"png"`
	NamaAktiviti   string      `db:"nama_aktiviti" json:"nama_aktiviti"`
	Peringkat      string      `db:"peringkat" json:"peringkat"`
	Pencapaian     null.String `db:"pencapaian" json:"pencapaian"`
	GaleriURL      null.String `db:"galeri_url" json:"galeri_url"`
	GaleriCaption  null.String `db:"galeri_caption" json:"galeri_caption"`
	DisediakanOleh null.String `db:"disediakan_oleh" json:"disediakan_oleh"`
	DisemakOleh    null.String `db:"disemak_oleh" json:"disemak_oleh"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at" json:"updated_at"`
}

// NewAchievement is the payload of create and update. HomeroomID is ignored on update.
type NewAchievement struct {
	HomeroomID     core.ID     `json:"homeroom_id" validate:"required"`
	NamaPelajar    string      `json:"nama_pelajar" validate:"required"`
	NoMaktab       null.String `json:"no_maktab"`
	PNG            core.Number `json:"png"`
	NamaAktiviti   string      `json:"nama_aktiviti" validate:"required"`
	Peringkat      string      `json:"peringkat" validate:"required,oneof=daerah negeri kebangsaan antara_maktab"`
	Pencapaian     null.String `json:"pencapaian"`
	GaleriURL      null.String `json:"galeri_url"`
	GaleriCaption  null.String `json:"galeri_caption"`
	DisediakanOleh null.String `json:"disediakan_oleh"`
	DisemakOleh    null.String `json:"disemak_oleh"`
}

func (na *NewAchievement) Validate() error {
	na.NamaPelajar = core.CleanString(na.NamaPelajar)
	na.NamaAktiviti = core.CleanString(na.NamaAktiviti)
	na.Peringkat = core.CleanString(na.Peringkat, true /* lower */)
	for _, s := range []*null.String{
		&na.NoMaktab, &na.Pencapaian, &na.GaleriURL, &na.GaleriCaption, &na.DisediakanOleh, &na.DisemakOleh,
	} {
		*s = core.CleanNullString(*s)
	}
	if err := core.Validate.Struct(na); err != nil {
		return err
	}
	if na.PNG.Valid && (na.PNG.Float64.Float64 < 0 || na.PNG.Float64.Float64 > 4) {
		return core.NewValidationError(nil, core.FieldError{Field: "png", Error: "png must be between 0 and 4"})
	}
	return nil
}

func (na NewAchievement) achievement() Achievement {
	return Achievement{
		HomeroomID:     na.HomeroomID.Int64(),
		NamaPelajar:    na.NamaPelajar,
		NoMaktab:       na.NoMaktab,
		PNG:            na.PNG,
		NamaAktiviti:   na.NamaAktiviti,
		Peringkat:      na.Peringkat,
		Pencapaian:     na.Pencapaian,
		GaleriURL:      na.GaleriURL,
		GaleriCaption:  na.GaleriCaption,
		DisediakanOleh: na.DisediakanOleh,
		DisemakOleh:    na.DisemakOleh,
	}
}

type (
	Repository interface {
		// QueryAchievements orders by created_at DESC.
		QueryAchievements(ctx context.Context, homeroomID int64) ([]Achievement, error)
		GetAchievementByID(ctx context.Context, id int64) (Achievement, error)
		CreateAchievement(ctx context.Context, a Achievement) (int64, error)
		UpdateAchievement(ctx context.Context, a Achievement) error
		DeleteAchievement(ctx context.Context, id int64) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, homeroomID int64) ([]Achievement, error) {
	return svc.repo.QueryAchievements(ctx, homeroomID)
}

func (svc *Service) Get(ctx context.Context, id int64) (Achievement, error) {
	return svc.repo.GetAchievementByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, na NewAchievement) (int64, error) {
	if err := na.Validate(); err != nil {
		return 0, err
	}
	a := na.achievement()
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	return svc.repo.CreateAchievement(ctx, a)
}

func (svc *Service) Update(ctx context.Context, id int64, na NewAchievement) error {
	if err := na.Validate(); err != nil {
		return err
	}
	a := na.achievement()
	a.ID = id
	a.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateAchievement(ctx, a)
}

func (svc *Service) Delete(ctx context.Context, id int64) error {
	return svc.repo.DeleteAchievement(ctx, id)
}
