package mingguan

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/mrsmranau/ehomeroom/core"
)

// Report is the record of one homeroom meeting. PertemuanKe is assigned on creation.
type Report struct {
	ID                 int64       `db:"id" json:"id"`
	HomeroomID         int64       `db:"homeroom_id" json:"homeroom_id"`
	PertemuanKe        int64       `db:"pertemuan_ke" json:"pertemuan_ke"`
	NamaHomeroom       null.String `db:"nama_homeroom" json:"nama_homeroom"`
	Tarikh             string      `db:"tarikh" json:"tarikh"`
	Hari               null.String `db:"hari" json:"hari"`
	Masa               null.String `db:"masa" json:"masa"`
	Tempat             null.String `db:"tempat" json:"tempat"`
	Kehadiran          null.Int64  `db:"kehadiran" json:"kehadiran"`
	Ketidakhadiran     MemberIDs   `db:"-" json:"ketidakhadiran"`
	Tema               null.String `db:"tema" json:"tema"`
	Tajuk              null.String `db:"tajuk" json:"tajuk"`
	PeneranganAktiviti null.String `db:"penerangan_aktiviti" json:"penerangan_aktiviti"`
	GaleriURL          null.String `db:"galeri_url" json:"galeri_url"`
	GaleriCaption      null.String `db:"galeri_caption" json:"galeri_caption"`
	RefleksiPelajar    null.String `db:"refleksi_pelajar" json:"refleksi_pelajar"`
	RefleksiGuru       null.String `db:"refleksi_guru" json:"refleksi_guru"`
	DisediakanOleh     null.String `db:"disediakan_oleh" json:"disediakan_oleh"`
	DisemakOleh        null.String `db:"disemak_oleh" json:"disemak_oleh"`
	CreatedAt          time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time   `db:"updated_at" json:"updated_at"`
}

// MemberIDs lists the absent members (ahli ids) of a meeting.
// Decodes from a JSON array of ids (numbers or numeric strings) or from a string holding
// such an array, as older page scripts send it: "[3,5]".
type MemberIDs []int64

func (ids *MemberIDs) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*ids = MemberIDs{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return err
		}
		inner = strings.TrimSpace(inner)
		if inner == "" {
			*ids = MemberIDs{}
			return nil
		}
		s = inner
	}

	var raw []core.ID
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return fmt.Errorf("invalid ketidakhadiran %s", string(data))
	}
	out := make(MemberIDs, 0, len(raw))
	seen := make(map[int64]bool, len(raw))
	for _, id := range raw {
		if id <= 0 || seen[id.Int64()] {
			continue
		}
		seen[id.Int64()] = true
		out = append(out, id.Int64())
	}
	*ids = out
	return nil
}

func (ids MemberIDs) MarshalJSON() ([]byte, error) {
	if ids == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]int64(ids))
}

// NewReport is the payload of create and update. HomeroomID is ignored on update.
type NewReport struct {
	HomeroomID         core.ID     `json:"homeroom_id" validate:"required"`
	NamaHomeroom       null.String `json:"nama_homeroom"`
	Tarikh             string      `json:"tarikh" validate:"required,datetime=2006-01-02"`
	Hari               null.String `json:"hari"`
	Masa               null.String `json:"masa"`
	Tempat             null.String `json:"tempat"`
	Kehadiran          null.Int64  `json:"kehadiran" validate:"omitempty,min=0"`
	Ketidakhadiran     MemberIDs   `json:"ketidakhadiran"`
	Tema               null.String `json:"tema"`
	Tajuk              null.String `json:"tajuk"`
	PeneranganAktiviti null.String `json:"penerangan_aktiviti"`
	GaleriURL          null.String `json:"galeri_url"`
	GaleriCaption      null.String `json:"galeri_caption"`
	RefleksiPelajar    null.String `json:"refleksi_pelajar"`
	RefleksiGuru       null.String `json:"refleksi_guru"`
	DisediakanOleh     null.String `json:"disediakan_oleh"`
	DisemakOleh        null.String `json:"disemak_oleh"`
}

func (nr *NewReport) Validate() error {
	nr.Tarikh = core.CleanString(nr.Tarikh)
	for _, s := range []*null.String{
		&nr.NamaHomeroom, &nr.Hari, &nr.Masa, &nr.Tempat, &nr.Tema, &nr.Tajuk, &nr.PeneranganAktiviti,
		&nr.GaleriURL, &nr.GaleriCaption, &nr.RefleksiPelajar, &nr.RefleksiGuru,
		&nr.DisediakanOleh, &nr.DisemakOleh,
	} {
		*s = core.CleanNullString(*s)
	}
	if err := core.Validate.Struct(nr); err != nil {
		return err
	}
	if !nr.Hari.Valid {
		if t, err := time.Parse(core.DateLayout, nr.Tarikh); err == nil {
			nr.Hari = null.StringFrom(core.DayNameMS(t))
		}
	}
	if nr.Ketidakhadiran == nil {
		nr.Ketidakhadiran = MemberIDs{}
	}
	return nil
}

func (nr NewReport) report() Report {
	return Report{
		HomeroomID:         nr.HomeroomID.Int64(),
		NamaHomeroom:       nr.NamaHomeroom,
		Tarikh:             nr.Tarikh,
		Hari:               nr.Hari,
		Masa:               nr.Masa,
		Tempat:             nr.Tempat,
		Kehadiran:          nr.Kehadiran,
		Ketidakhadiran:     nr.Ketidakhadiran,
		Tema:               nr.Tema,
		Tajuk:              nr.Tajuk,
		PeneranganAktiviti: nr.PeneranganAktiviti,
		GaleriURL:          nr.GaleriURL,
		GaleriCaption:      nr.GaleriCaption,
		RefleksiPelajar:    nr.RefleksiPelajar,
		RefleksiGuru:       nr.RefleksiGuru,
		DisediakanOleh:     nr.DisediakanOleh,
		DisemakOleh:        nr.DisemakOleh,
	}
}
