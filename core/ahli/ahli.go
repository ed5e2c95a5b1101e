package ahli

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/mrsmranau/ehomeroom/core"
)

var ErrNotFound = core.NewNotFoundError("Ahli")

// RoleAJKKhas is the only role whose "lain" qualifier is kept.
const RoleAJKKhas = "AJK KHAS"

// Jantina
const (
	Lelaki    = "Lelaki"
	Perempuan = "Perempuan"
)

// Member is a student of a homeroom. Bilangan is assigned on creation and never renumbered.
type Member struct {
	ID                    int64       `db:"id" json:"id"`
	HomeroomID            int64       `db:"homeroom_id" json:"homeroom_id"`
	Bilangan              int64       `db:"bilangan" json:"bilangan"`
	NamaAhli              string      `db:"nama_ahli" json:"nama_ahli"`
	NoMaktab              string      `db:"no_maktab" json:"no_maktab"`
	Jantina               string      `db:"jantina" json:"jantina"`
	Kelas                 string      `db:"kelas" json:"kelas"`
	JawatanHomeroom       null.String `db:"jawatan_homeroom" json:"jawatan_homeroom"`
	NoBilikAsrama         null.String `db:"no_bilik_asrama" json:"no_bilik_asrama"`
	UnitBeruniform        null.String `db:"unit_beruniform" json:"unit_beruniform"`
	JawatanBeruniform     null.String `db:"jawatan_beruniform" json:"jawatan_beruniform"`
	JawatanBeruniformLain null.String `db:"jawatan_beruniform_lain" json:"jawatan_beruniform_lain"`
	KelabPersatuan        null.String `db:"kelab_persatuan" json:"kelab_persatuan"`
	JawatanKelab          null.String `db:"jawatan_kelab" json:"jawatan_kelab"`
	JawatanKelabLain      null.String `db:"jawatan_kelab_lain" json:"jawatan_kelab_lain"`
	SukanPermainan        null.String `db:"sukan_permainan" json:"sukan_permainan"`
	JawatanSukan          null.String `db:"jawatan_sukan" json:"jawatan_sukan"`
	JawatanSukanLain      null.String `db:"jawatan_sukan_lain" json:"jawatan_sukan_lain"`
	SekretariatSKP        null.String `db:"sekretariat_skp" json:"sekretariat_skp"`
	JawatanSKP            null.String `db:"jawatan_skp" json:"jawatan_skp"`
	JawatanSKPLain        null.String `db:"jawatan_skp_lain" json:"jawatan_skp_lain"`
	CreatedAt             time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time   `db:"updated_at" json:"updated_at"`
}

// NewMember is the payload of create and update. HomeroomID is ignored on update.
type NewMember struct {
	HomeroomID            core.ID     `json:"homeroom_id" validate:"required"`
	NamaAhli              string      `json:"nama_ahli" validate:"required"`
	NoMaktab              string      `json:"no_maktab" validate:"required"`
	Jantina               string      `json:"jantina" validate:"required,oneof=Lelaki Perempuan"`
	Kelas                 string      `json:"kelas" validate:"required"`
	JawatanHomeroom       null.String `json:"jawatan_homeroom"`
	NoBilikAsrama         null.String `json:"no_bilik_asrama"`
	UnitBeruniform        null.String `json:"unit_beruniform"`
	JawatanBeruniform     null.String `json:"jawatan_beruniform"`
	JawatanBeruniformLain null.String `json:"jawatan_beruniform_lain"`
	KelabPersatuan        null.String `json:"kelab_persatuan"`
	JawatanKelab          null.String `json:"jawatan_kelab"`
	JawatanKelabLain      null.String `json:"jawatan_kelab_lain"`
	SukanPermainan        null.String `json:"sukan_permainan"`
	JawatanSukan          null.String `json:"jawatan_sukan"`
	JawatanSukanLain      null.String `json:"jawatan_sukan_lain"`
	SekretariatSKP        null.String `json:"sekretariat_skp"`
	JawatanSKP            null.String `json:"jawatan_skp"`
	JawatanSKPLain        null.String `json:"jawatan_skp_lain"`
}

func (nm *NewMember) Validate() error {
	nm.NamaAhli = core.CleanString(nm.NamaAhli)
	nm.NoMaktab = core.CleanString(nm.NoMaktab)
	nm.Jantina = core.CleanString(nm.Jantina)
	nm.Kelas = core.CleanString(nm.Kelas)
	for _, s := range []*null.String{
		&nm.JawatanHomeroom, &nm.NoBilikAsrama,
		&nm.UnitBeruniform, &nm.JawatanBeruniform, &nm.JawatanBeruniformLain,
		&nm.KelabPersatuan, &nm.JawatanKelab, &nm.JawatanKelabLain,
		&nm.SukanPermainan, &nm.JawatanSukan, &nm.JawatanSukanLain,
		&nm.SekretariatSKP, &nm.JawatanSKP, &nm.JawatanSKPLain,
	} {
		*s = core.CleanNullString(*s)
	}
	nm.JawatanBeruniformLain = lainFor(nm.JawatanBeruniform, nm.JawatanBeruniformLain)
	nm.JawatanKelabLain = lainFor(nm.JawatanKelab, nm.JawatanKelabLain)
	nm.JawatanSukanLain = lainFor(nm.JawatanSukan, nm.JawatanSukanLain)
	nm.JawatanSKPLain = lainFor(nm.JawatanSKP, nm.JawatanSKPLain)
	return core.Validate.Struct(nm)
}

// lainFor drops the qualifier unless the role is AJK KHAS.
func lainFor(role, lain null.String) null.String {
	if role.Valid && role.String == RoleAJKKhas {
		return lain
	}
	return null.String{}
}

func (nm NewMember) member() Member {
	return Member{
		HomeroomID:            nm.HomeroomID.Int64(),
		NamaAhli:              nm.NamaAhli,
		NoMaktab:              nm.NoMaktab,
		Jantina:               nm.Jantina,
		Kelas:                 nm.Kelas,
		JawatanHomeroom:       nm.JawatanHomeroom,
		NoBilikAsrama:         nm.NoBilikAsrama,
		UnitBeruniform:        nm.UnitBeruniform,
		JawatanBeruniform:     nm.JawatanBeruniform,
		JawatanBeruniformLain: nm.JawatanBeruniformLain,
		KelabPersatuan:        nm.KelabPersatuan,
		JawatanKelab:          nm.JawatanKelab,
		JawatanKelabLain:      nm.JawatanKelabLain,
		SukanPermainan:        nm.SukanPermainan,
		JawatanSukan:          nm.JawatanSukan,
		JawatanSukanLain:      nm.JawatanSukanLain,
		SekretariatSKP:        nm.SekretariatSKP,
		JawatanSKP:            nm.JawatanSKP,
		JawatanSKPLain:        nm.JawatanSKPLain,
	}
}

type (
	Repository interface {
		// QueryMembers orders by bilangan ASC.
		QueryMembers(ctx context.Context, homeroomID int64) ([]Member, error)
		GetMemberByID(ctx context.Context, id int64) (Member, error)
		// CreateMember assigns the next bilangan of the member's homeroom atomically.
		CreateMember(ctx context.Context, m Member) (Member, error)
		UpdateMember(ctx context.Context, m Member) error
		DeleteMember(ctx context.Context, id int64) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, homeroomID int64) ([]Member, error) {
	return svc.repo.QueryMembers(ctx, homeroomID)
}

func (svc *Service) Get(ctx context.Context, id int64) (Member, error) {
	return svc.repo.GetMemberByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, nm NewMember) (Member, error) {
	if err := nm.Validate(); err != nil {
		return Member{}, err
	}
	m := nm.member()
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt
	return svc.repo.CreateMember(ctx, m)
}

func (svc *Service) Update(ctx context.Context, id int64, nm NewMember) error {
	if err := nm.Validate(); err != nil {
		return err
	}
	m := nm.member()
	m.ID = id
	m.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateMember(ctx, m)
}

func (svc *Service) Delete(ctx context.Context, id int64) error {
	return svc.repo.DeleteMember(ctx, id)
}
