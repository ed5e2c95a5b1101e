package laporan

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/mrsmranau/ehomeroom/core"
)

// Statuses
const (
	StatusAktif = "aktif"
	StatusArkib = "arkib"
)

// Categories (jenis_laporan)
const (
	JenisKehadiran = "kehadiran"
	JenisDisiplin  = "disiplin"
	JenisAkademik  = "akademik"
	JenisAktiviti  = "aktiviti"
	JenisAm        = "am"
)

var AllJenis = []string{JenisKehadiran, JenisDisiplin, JenisAkademik, JenisAktiviti, JenisAm}

// Report is an administrative note about a homeroom. It is archived, never erased.
type Report struct {
	ID            int64       `db:"id" json:"id"`
	HomeroomID    int64       `db:"homeroom_id" json:"homeroom_id"`
	TarikhLaporan string      `db:"tarikh_laporan" json:"tarikh_laporan"`
	JenisLaporan  string      `db:"jenis_laporan" json:"jenis_laporan"`
	Tajuk         string      `db:"tajuk" json:"tajuk"`
	Perkara       null.String `db:"perkara" json:"perkara"`
	Status        string      `db:"status" json:"status"`
	CreatedBy     int64       `db:"created_by" json:"created_by"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at" json:"updated_at"`

	// joined
	NamaHomeroom  string `db:"nama_homeroom" json:"nama_homeroom"`
	Tingkatan     string `db:"tingkatan" json:"tingkatan"`
	CreatedByName string `db:"created_by_name" json:"created_by_name"`
}

// NewReport is the payload of both create and update: update replaces every mutable column.
type NewReport struct {
	HomeroomID    core.ID     `json:"homeroom_id" validate:"required"`
	TarikhLaporan string      `json:"tarikh_laporan" validate:"omitempty,datetime=2006-01-02"`
	JenisLaporan  string      `json:"jenis_laporan" validate:"required,jenis_laporan"`
	Tajuk         string      `json:"tajuk" validate:"required"`
	Perkara       null.String `json:"perkara"`
}

func (nr *NewReport) Validate() error {
	nr.TarikhLaporan = core.CleanString(nr.TarikhLaporan)
	if nr.TarikhLaporan == "" {
		nr.TarikhLaporan = core.Today()
	}
	nr.JenisLaporan = core.CleanString(nr.JenisLaporan, true /* lower */)
	nr.Tajuk = core.CleanString(nr.Tajuk)
	nr.Perkara = core.CleanNullString(nr.Perkara)
	return core.Validate.Struct(nr)
}

type QueryFilter struct {
	HomeroomID int64  // 0: all homerooms
	Jenis      string // "": all categories
	Status     string // "": StatusAktif
}

type JenisCount struct {
	JenisLaporan string `db:"jenis_laporan" json:"jenis_laporan"`
	Count        int64  `db:"count" json:"count"`
}

// Stats aggregates active reports.
type Stats struct {
	Total   int64        `json:"total"`
	ByJenis []JenisCount `json:"byJenis"`
}

var (
	jenisTag  = "jenis_laporan"
	jenisText = "{0} must be one of: kehadiran, disiplin, akademik, aktiviti, am"
)

func init() {
	_ = core.Validate.RegisterValidation(jenisTag, func(fl validator.FieldLevel) bool {
		return IsJenis(fl.Field().String())
	})
	core.RegisterCustomTranslation(jenisTag, jenisText)
}

func IsJenis(s string) bool {
	for _, j := range AllJenis {
		if s == j {
			return true
		}
	}
	return false
}
