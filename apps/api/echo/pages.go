package echoapi

import (
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/ahli"
	"github.com/mrsmranau/ehomeroom/core/laporan"
	"github.com/mrsmranau/ehomeroom/core/user"
	appfs "github.com/mrsmranau/ehomeroom/fs"
)

type (
	page struct {
		Name     string
		Path     string
		Title    string
		Icon     string
		Role     string // "" when the page is public
		Login    bool
		Stats    bool
		Links    []link
		Sections []section
	}

	link struct {
		Path  string
		Title string
	}

	// section is one resource table with its form; the page script talks to /api/<Resource>.
	section struct {
		Heading        string
		Icon           string
		Resource       string
		Scoped         bool // listed per homeroom: /api/<Resource>/<homeroom_id>
		ReadOnly       bool
		HomeroomFilter bool
		StatusFilter   bool
		Columns        []column
		Fields         []field
	}

	column struct {
		Field string
		Label string
	}

	field struct {
		Name     string
		Label    string
		Type     string // textarea | select | homeroom | members | any <input> type
		Options  []string
		Required bool
	}

	pageData struct {
		AppName      string
		Today        string
		Page         page
		JenisLaporan []string
	}

	pageRenderer struct {
		tmpl *template.Template
	}
)

func mustPageRenderer() *pageRenderer {
	return &pageRenderer{tmpl: template.Must(template.ParseFS(appfs.FS, "templates/*.gohtml"))}
}

func (r *pageRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}

var penggunaLinks = []link{
	{Path: "/pengguna", Title: "Utama"},
	{Path: "/pengguna/ahli", Title: "Ahli"},
	{Path: "/pengguna/laporan-mingguan", Title: "Laporan Mingguan"},
	{Path: "/pengguna/pencapaian", Title: "Pencapaian"},
	{Path: "/pengguna/aktiviti-tahunan", Title: "Aktiviti Tahunan"},
}

var (
	reportColumns = []column{
		{"tarikh_laporan", "Tarikh"}, {"nama_homeroom", "Homeroom"}, {"jenis_laporan", "Jenis"},
		{"tajuk", "Tajuk"}, {"created_by_name", "Oleh"},
	}

	preparedByFields = []field{
		{Name: "disediakan_oleh", Label: "Disediakan oleh", Type: "text"},
		{Name: "disemak_oleh", Label: "Disemak oleh", Type: "text"},
	}

	activityFields = []field{
		{Name: "tarikh", Label: "Tarikh", Type: "date", Required: true},
		{Name: "masa", Label: "Masa", Type: "time"},
		{Name: "nama_aktiviti", Label: "Nama aktiviti", Type: "text", Required: true},
		{Name: "tempat", Label: "Tempat", Type: "text"},
		{Name: "catatan", Label: "Catatan", Type: "textarea"},
	}

	activityColumns = []column{
		{"tarikh", "Tarikh"}, {"hari", "Hari"}, {"nama_aktiviti", "Aktiviti"}, {"tempat", "Tempat"},
	}
)

func fields(groups ...[]field) []field {
	var out []field
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var pages = []page{
	{
		Name: "login", Path: "/", Title: "Log Masuk", Login: true,
	},
	{
		Name: "admin", Path: "/admin", Title: "Dashboard Admin", Icon: "fa-user-shield", Role: user.RoleAdmin, Stats: true,
		Sections: []section{{
			Heading: "Laporan Homeroom", Icon: "fa-file-alt", Resource: "laporan",
			HomeroomFilter: true, StatusFilter: true,
			Columns: reportColumns,
			Fields: []field{
				{Name: "homeroom_id", Label: "Homeroom", Type: "homeroom", Required: true},
				{Name: "tarikh_laporan", Label: "Tarikh", Type: "date"},
				{Name: "jenis_laporan", Label: "Jenis laporan", Type: "select", Options: laporan.AllJenis, Required: true},
				{Name: "tajuk", Label: "Tajuk", Type: "text", Required: true},
				{Name: "perkara", Label: "Perkara", Type: "textarea"},
			},
		}},
	},
	{
		Name: "pengguna", Path: "/pengguna", Title: "Dashboard Guru Homeroom", Icon: "fa-chalkboard-teacher",
		Role: user.RolePengguna, Links: penggunaLinks,
		Sections: []section{{
			Heading: "Laporan Homeroom", Icon: "fa-file-alt", Resource: "laporan", ReadOnly: true,
			Columns: reportColumns,
		}},
	},
	{
		Name: "ahli", Path: "/pengguna/ahli", Title: "Ahli Homeroom", Icon: "fa-users",
		Role: user.RolePengguna, Links: penggunaLinks,
		Sections: []section{{
			Heading: "Senarai Ahli", Icon: "fa-users", Resource: "ahli", Scoped: true,
			Columns: []column{
				{"bilangan", "Bil"}, {"nama_ahli", "Nama"}, {"no_maktab", "No. Maktab"},
				{"jantina", "Jantina"}, {"kelas", "Kelas"}, {"jawatan_homeroom", "Jawatan"},
			},
			Fields: []field{
				{Name: "nama_ahli", Label: "Nama", Type: "text", Required: true},
				{Name: "no_maktab", Label: "No. maktab", Type: "text", Required: true},
				{Name: "jantina", Label: "Jantina", Type: "select", Options: []string{ahli.Lelaki, ahli.Perempuan}, Required: true},
				{Name: "kelas", Label: "Kelas", Type: "text", Required: true},
				{Name: "jawatan_homeroom", Label: "Jawatan homeroom", Type: "text"},
				{Name: "no_bilik_asrama", Label: "No. bilik asrama", Type: "text"},
				{Name: "unit_beruniform", Label: "Unit beruniform", Type: "text"},
				{Name: "jawatan_beruniform", Label: "Jawatan beruniform", Type: "text"},
				{Name: "jawatan_beruniform_lain", Label: "Jawatan beruniform (AJK KHAS)", Type: "text"},
				{Name: "kelab_persatuan", Label: "Kelab / persatuan", Type: "text"},
				{Name: "jawatan_kelab", Label: "Jawatan kelab", Type: "text"},
				{Name: "jawatan_kelab_lain", Label: "Jawatan kelab (AJK KHAS)", Type: "text"},
				{Name: "sukan_permainan", Label: "Sukan / permainan", Type: "text"},
				{Name: "jawatan_sukan", Label: "Jawatan sukan", Type: "text"},
				{Name: "jawatan_sukan_lain", Label: "Jawatan sukan (AJK KHAS)", Type: "text"},
				{Name: "sekretariat_skp", Label: "Sekretariat SKP", Type: "text"},
				{Name: "jawatan_skp", Label: "Jawatan SKP", Type: "text"},
				{Name: "jawatan_skp_lain", Label: "Jawatan SKP (AJK KHAS)", Type: "text"},
			},
		}},
	},
	{
		Name: "laporan-mingguan", Path: "/pengguna/laporan-mingguan", Title: "Laporan Mingguan", Icon: "fa-calendar-week",
		Role: user.RolePengguna, Links: penggunaLinks,
		Sections: []section{{
			Heading: "Laporan Mingguan", Icon: "fa-calendar-week", Resource: "laporan-mingguan", Scoped: true,
			Columns: []column{
				{"pertemuan_ke", "Pertemuan"}, {"tarikh", "Tarikh"}, {"hari", "Hari"},
				{"tema", "Tema"}, {"kehadiran", "Hadir"}, {"ketidakhadiran", "Tidak hadir"},
			},
			Fields: fields([]field{
				{Name: "tarikh", Label: "Tarikh", Type: "date", Required: true},
				{Name: "masa", Label: "Masa", Type: "time"},
				{Name: "tempat", Label: "Tempat", Type: "text"},
				{Name: "kehadiran", Label: "Kehadiran", Type: "number"},
				{Name: "ketidakhadiran", Label: "Tidak hadir", Type: "members"},
				{Name: "tema", Label: "Tema", Type: "text"},
				{Name: "tajuk", Label: "Tajuk", Type: "text"},
				{Name: "penerangan_aktiviti", Label: "Penerangan aktiviti", Type: "textarea"},
				{Name: "galeri_url", Label: "Pautan galeri", Type: "url"},
				{Name: "galeri_caption", Label: "Kapsyen galeri", Type: "text"},
				{Name: "refleksi_pelajar", Label: "Refleksi pelajar", Type: "textarea"},
				{Name: "refleksi_guru", Label: "Refleksi guru", Type: "textarea"},
			}, preparedByFields),
		}},
	},
	{
		Name: "pencapaian", Path: "/pengguna/pencapaian", Title: "Pencapaian Pelajar", Icon: "fa-trophy",
		Role: user.RolePengguna, Links: penggunaLinks,
		Sections: []section{{
			Heading: "Pencapaian", Icon: "fa-trophy", Resource: "pencapaian", Scoped: true,
			Columns: []column{
				{"nama_pelajar", "Pelajar"}, {"png", "PNG"}, {"nama_aktiviti", "Aktiviti"},
				{"peringkat", "Peringkat"}, {"pencapaian", "Pencapaian"},
			},
			Fields: fields([]field{
				{Name: "nama_pelajar", Label: "Nama pelajar", Type: "text", Required: true},
				{Name: "no_maktab", Label: "No. maktab", Type: "text"},
				{Name: "png", Label: "PNG", Type: "number"},
				{Name: "nama_aktiviti", Label: "Nama aktiviti", Type: "text", Required: true},
				{
					Name: "peringkat", Label: "Peringkat", Type: "select", Required: true,
					Options: []string{"daerah", "negeri", "kebangsaan", "antara_maktab"},
				},
				{Name: "pencapaian", Label: "Pencapaian", Type: "text"},
				{Name: "galeri_url", Label: "Pautan galeri", Type: "url"},
				{Name: "galeri_caption", Label: "Kapsyen galeri", Type: "text"},
			}, preparedByFields),
		}},
	},
	{
		Name: "aktiviti-tahunan", Path: "/pengguna/aktiviti-tahunan", Title: "Aktiviti Tahunan", Icon: "fa-calendar-alt",
		Role: user.RolePengguna, Links: penggunaLinks,
		Sections: []section{
			{
				Heading: "Aktiviti Biasa", Icon: "fa-calendar-alt", Resource: "aktiviti-biasa", Scoped: true,
				Columns: activityColumns,
				Fields: fields(activityFields, []field{
					{Name: "gambar1_url", Label: "Gambar 1", Type: "url"},
					{Name: "gambar1_caption", Label: "Kapsyen gambar 1", Type: "text"},
					{Name: "gambar2_url", Label: "Gambar 2", Type: "url"},
					{Name: "gambar2_caption", Label: "Kapsyen gambar 2", Type: "text"},
					{Name: "gambar3_url", Label: "Gambar 3", Type: "url"},
					{Name: "gambar3_caption", Label: "Kapsyen gambar 3", Type: "text"},
				}, preparedByFields),
			},
			{
				Heading: "Aktiviti Keusahawanan", Icon: "fa-store", Resource: "aktiviti-keusahawanan", Scoped: true,
				Columns: append(append([]column{}, activityColumns...), column{"keuntungan", "Keuntungan (RM)"}),
				Fields: fields(activityFields, []field{
					{Name: "keuntungan", Label: "Keuntungan (RM)", Type: "number"},
					{Name: "gambar_url", Label: "Gambar", Type: "url"},
					{Name: "gambar_caption", Label: "Kapsyen gambar", Type: "text"},
				}, preparedByFields),
			},
			{
				Heading: "Aktiviti Khidmat Masyarakat", Icon: "fa-hands-helping", Resource: "aktiviti-khidmat", Scoped: true,
				Columns: activityColumns,
				Fields: fields(activityFields, []field{
					{Name: "objektif", Label: "Objektif", Type: "textarea"},
					{Name: "impak", Label: "Impak", Type: "textarea"},
					{Name: "gambar_url", Label: "Gambar", Type: "url"},
					{Name: "gambar_caption", Label: "Kapsyen gambar", Type: "text"},
				}, preparedByFields),
			},
		},
	},
}

func registerPages(e *echo.Echo, conf *core.Config) {
	e.StaticFS("/static", echo.MustSubFS(appfs.FS, "static"))

	for _, p := range pages {
		p := p
		e.GET(p.Path, func(ctx echo.Context) error {
			return ctx.Render(http.StatusOK, "layout", pageData{
				AppName:      conf.AppName,
				Today:        core.FormatDateMS(time.Now()),
				Page:         p,
				JenisLaporan: laporan.AllJenis,
			})
		})
	}
}
