package aktiviti

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/mrsmranau/ehomeroom/core"
)

// Kind is the annual activity sub-type.
type Kind string

const (
	KindBiasa        Kind = "biasa"        // general
	KindKeusahawanan Kind = "keusahawanan" // entrepreneurial
	KindKhidmat      Kind = "khidmat"      // community service
)

var AllKinds = []Kind{KindBiasa, KindKeusahawanan, KindKhidmat}

func (k Kind) Valid() bool {
	switch k {
	case KindBiasa, KindKeusahawanan, KindKhidmat:
		return true
	}
	return false
}

// Table is the table storing activities of kind k.
func (k Kind) Table() string {
	return "aktiviti_" + string(k)
}

// Gallery holds up to three pictures (biasa).
type Gallery struct {
	Gambar1URL     null.String `db:"gambar1_url" json:"gambar1_url"`
	Gambar1Caption null.String `db:"gambar1_caption" json:"gambar1_caption"`
	Gambar2URL     null.String `db:"gambar2_url" json:"gambar2_url"`
	Gambar2Caption null.String `db:"gambar2_caption" json:"gambar2_caption"`
	Gambar3URL     null.String `db:"gambar3_url" json:"gambar3_url"`
	Gambar3Caption null.String `db:"gambar3_caption" json:"gambar3_caption"`
}

// Photo is the single picture of keusahawanan and khidmat activities.
type Photo struct {
	GambarURL     null.String `db:"gambar_url" json:"gambar_url"`
	GambarCaption null.String `db:"gambar_caption" json:"gambar_caption"`
}

type Venture struct {
	Keuntungan core.Number `db:"keuntungan" json:"keuntungan"`
}

type Outreach struct {
	Objektif null.String `db:"objektif" json:"objektif"`
	Impak    null.String `db:"impak" json:"impak"`
}

// Activity is an annual activity of any Kind. Only the parts of its kind are set:
// biasa has Gallery; keusahawanan has Photo and Venture; khidmat has Photo and Outreach.
type Activity struct {
	ID             int64       `db:"id" json:"id"`
	HomeroomID     int64       `db:"homeroom_id" json:"homeroom_id"`
	Tarikh         string      `db:"tarikh" json:"tarikh"`
	Hari           null.String `db:"hari" json:"hari"`
	Masa           null.String `db:"masa" json:"masa"`
	NamaAktiviti   string      `db:"nama_aktiviti" json:"nama_aktiviti"`
	Tempat         null.String `db:"tempat" json:"tempat"`
	Catatan        null.String `db:"catatan" json:"catatan"`
	DisediakanOleh null.String `db:"disediakan_oleh" json:"disediakan_oleh"`
	DisemakOleh    null.String `db:"disemak_oleh" json:"disemak_oleh"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at" json:"updated_at"`

	*Gallery
	*Photo
	*Venture
	*Outreach
}

// NewActivity is the payload of create and update for every kind; fields foreign to the
// kind are dropped. HomeroomID is ignored on update.
type NewActivity struct {
	HomeroomID     core.ID     `json:"homeroom_id" validate:"required"`
	Tarikh         string      `json:"tarikh" validate:"required,datetime=2006-01-02"`
	Hari           null.String `json:"hari"`
	Masa           null.String `json:"masa"`
	NamaAktiviti   string      `json:"nama_aktiviti" validate:"required"`
	Tempat         null.String `json:"tempat"`
	Catatan        null.String `json:"catatan"`
	DisediakanOleh null.String `json:"disediakan_oleh"`
	DisemakOleh    null.String `json:"disemak_oleh"`

	Gambar1URL     null.String `json:"gambar1_url"`
	Gambar1Caption null.String `json:"gambar1_caption"`
	Gambar2URL     null.String `json:"gambar2_url"`
	Gambar2Caption null.String `json:"gambar2_caption"`
	Gambar3URL     null.String `json:"gambar3_url"`
	Gambar3Caption null.String `json:"gambar3_caption"`
	GambarURL      null.String `json:"gambar_url"`
	GambarCaption  null.String `json:"gambar_caption"`
	Keuntungan     core.Number `json:"keuntungan"`
	Objektif       null.String `json:"objektif"`
	Impak          null.String `json:"impak"`
}

func (na *NewActivity) Validate() error {
	na.Tarikh = core.CleanString(na.Tarikh)
	na.NamaAktiviti = core.CleanString(na.NamaAktiviti)
	for _, s := range []*null.String{
		&na.Hari, &na.Masa, &na.Tempat, &na.Catatan, &na.DisediakanOleh, &na.DisemakOleh,
		&na.Gambar1URL, &na.Gambar1Caption, &na.Gambar2URL, &na.Gambar2Caption, &na.Gambar3URL, &na.Gambar3Caption,
		&na.GambarURL, &na.GambarCaption, &na.Objektif, &na.Impak,
	} {
		*s = core.CleanNullString(*s)
	}
	if err := core.Validate.Struct(na); err != nil {
		return err
	}
	if !na.Hari.Valid {
		if t, err := time.Parse(core.DateLayout, na.Tarikh); err == nil {
			na.Hari = null.StringFrom(core.DayNameMS(t))
		}
	}
	return nil
}

func (na NewActivity) activity(kind Kind) Activity {
	a := Activity{
		HomeroomID:     na.HomeroomID.Int64(),
		Tarikh:         na.Tarikh,
		Hari:           na.Hari,
		Masa:           na.Masa,
		NamaAktiviti:   na.NamaAktiviti,
		Tempat:         na.Tempat,
		Catatan:        na.Catatan,
		DisediakanOleh: na.DisediakanOleh,
		DisemakOleh:    na.DisemakOleh,
	}
	switch kind {
	case KindBiasa:
		a.Gallery = &Gallery{
			Gambar1URL: na.Gambar1URL, Gambar1Caption: na.Gambar1Caption,
			Gambar2URL: na.Gambar2URL, Gambar2Caption: na.Gambar2Caption,
			Gambar3URL: na.Gambar3URL, Gambar3Caption: na.Gambar3Caption,
		}
	case KindKeusahawanan:
		a.Photo = &Photo{GambarURL: na.GambarURL, GambarCaption: na.GambarCaption}
		a.Venture = &Venture{Keuntungan: na.Keuntungan}
	case KindKhidmat:
		a.Photo = &Photo{GambarURL: na.GambarURL, GambarCaption: na.GambarCaption}
		a.Outreach = &Outreach{Objektif: na.Objektif, Impak: na.Impak}
	}
	return a
}

// Normalize allocates the parts of kind k (and only those), so every kind-specific
// column reads back as null rather than being omitted.
func (a *Activity) Normalize(k Kind) {
	switch k {
	case KindBiasa:
		if a.Gallery == nil {
			a.Gallery = &Gallery{}
		}
		a.Photo, a.Venture, a.Outreach = nil, nil, nil
	case KindKeusahawanan:
		if a.Photo == nil {
			a.Photo = &Photo{}
		}
		if a.Venture == nil {
			a.Venture = &Venture{}
		}
		a.Gallery, a.Outreach = nil, nil
	case KindKhidmat:
		if a.Photo == nil {
			a.Photo = &Photo{}
		}
		if a.Outreach == nil {
			a.Outreach = &Outreach{}
		}
		a.Gallery, a.Venture = nil, nil
	}
}
