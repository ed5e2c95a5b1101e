package tests

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsmranau/ehomeroom/core/laporan"
)

func Test_laporanApi(t *testing.T) {
	env := setup(t)
	app, token := env.app, env.adminToken

	create := func(hrID int64, tarikh, jenis, tajuk string) int64 {
		t.Helper()
		res := mustCall(t, app, http.MethodPost, "/api/laporan", token, map[string]interface{}{
			"homeroom_id": hrID, "tarikh_laporan": tarikh, "jenis_laporan": jenis, "tajuk": tajuk,
			"perkara": "Perkara " + tajuk,
		})
		assert.Equal(t, "Laporan berjaya ditambah", res.Message)
		require.NotZero(t, res.ID)
		return res.ID
	}
	list := func(path string) []laporan.Report {
		t.Helper()
		var reports []laporan.Report
		decodeData(t, mustCall(t, app, http.MethodGet, path, token, nil), &reports)
		return reports
	}
	ids := func(reports []laporan.Report) []int64 {
		out := make([]int64, 0, len(reports))
		for _, r := range reports {
			out = append(out, r.ID)
		}
		return out
	}

	assert.Equal(t, []laporan.Report{}, list("/api/laporan"), "empty list")

	r1 := create(env.hr1.ID, "2024-01-01", "kehadiran", "Kehadiran Januari")
	r2 := create(env.hr1.ID, "2024-03-01", "disiplin", "Disiplin Mac")
	r3 := create(env.hr2.ID, "2024-02-01", "kehadiran", "Kehadiran Februari")

	t.Run("list is newest first", func(t *testing.T) {
		reports := list("/api/laporan")
		assert.Equal(t, []int64{r2, r3, r1}, ids(reports))
		assert.Equal(t, "Al-Farabi", reports[0].NamaHomeroom)
		assert.Equal(t, "Tingkatan 4", reports[0].Tingkatan)
		assert.Equal(t, "Pentadbir Sistem", reports[0].CreatedByName)
		assert.Equal(t, env.admin.ID, reports[0].CreatedBy)
		assert.Equal(t, laporan.StatusAktif, reports[0].Status)
	})

	t.Run("filters", func(t *testing.T) {
		assert.Equal(t, []int64{r2, r1}, ids(list(fmt.Sprintf("/api/laporan?homeroom_id=%d", env.hr1.ID))))
		assert.Equal(t, []int64{r3, r1}, ids(list("/api/laporan?jenis=kehadiran")))
		assert.Equal(t, []int64{r1}, ids(list(fmt.Sprintf("/api/laporan?homeroom_id=%d&jenis=kehadiran", env.hr1.ID))))
		assert.Empty(t, list("/api/laporan?jenis=akademik"))
	})

	t.Run("get", func(t *testing.T) {
		var rep laporan.Report
		decodeData(t, mustCall(t, app, http.MethodGet, fmt.Sprintf("/api/laporan/%d", r1), token, nil), &rep)
		assert.Equal(t, "Kehadiran Januari", rep.Tajuk)
		assert.Equal(t, "Perkara Kehadiran Januari", rep.Perkara.String)
		assert.Equal(t, "2024-01-01", rep.TarikhLaporan)
	})

	t.Run("statistik", func(t *testing.T) {
		var stats laporan.Stats
		decodeData(t, mustCall(t, app, http.MethodGet, "/api/statistik", token, nil), &stats)
		assert.Equal(t, laporan.Stats{Total: 3, ByJenis: []laporan.JenisCount{
			{JenisLaporan: "kehadiran", Count: 2},
			{JenisLaporan: "disiplin", Count: 1},
		}}, stats)

		decodeData(t, mustCall(t, app, http.MethodGet, fmt.Sprintf("/api/statistik?homeroom_id=%d", env.hr2.ID), env.guruToken, nil), &stats)
		assert.Equal(t, laporan.Stats{Total: 1, ByJenis: []laporan.JenisCount{{JenisLaporan: "kehadiran", Count: 1}}}, stats)
	})

	t.Run("update replaces the report", func(t *testing.T) {
		res := mustCall(t, app, http.MethodPut, fmt.Sprintf("/api/laporan/%d", r1), token, map[string]interface{}{
			"homeroom_id": env.hr2.ID, "tarikh_laporan": "2024-01-02", "jenis_laporan": "akademik", "tajuk": "Akademik",
		})
		assert.Equal(t, "Laporan berjaya dikemaskini", res.Message)

		var rep laporan.Report
		decodeData(t, mustCall(t, app, http.MethodGet, fmt.Sprintf("/api/laporan/%d", r1), token, nil), &rep)
		assert.Equal(t, env.hr2.ID, rep.HomeroomID)
		assert.Equal(t, "akademik", rep.JenisLaporan)
		assert.False(t, rep.Perkara.Valid)
		assert.Equal(t, env.admin.ID, rep.CreatedBy)
	})

	t.Run("delete archives", func(t *testing.T) {
		res := mustCall(t, app, http.MethodDelete, fmt.Sprintf("/api/laporan/%d", r2), token, nil)
		assert.Equal(t, "Laporan berjaya diarkibkan", res.Message)

		assert.NotContains(t, ids(list("/api/laporan")), r2)
		assert.Equal(t, []int64{r2}, ids(list("/api/laporan?status=arkib")))

		// still readable
		var rep laporan.Report
		decodeData(t, mustCall(t, app, http.MethodGet, fmt.Sprintf("/api/laporan/%d", r2), token, nil), &rep)
		assert.Equal(t, laporan.StatusArkib, rep.Status)

		var stats laporan.Stats
		decodeData(t, mustCall(t, app, http.MethodGet, "/api/statistik", token, nil), &stats)
		assert.EqualValues(t, 2, stats.Total)
	})

	notFound := marchallObj(t, apiErr{Message: "Laporan tidak dijumpai"})
	tests := []httpTest{
		{name: "get unknown", path: "/api/laporan/9999", token: token, wantCode: http.StatusNotFound, wantData: notFound},
		{name: "get non numeric id", path: "/api/laporan/abc", token: token, wantCode: http.StatusNotFound, wantData: notFound},
		{
			name: "update unknown", method: http.MethodPut, path: "/api/laporan/9999", token: token,
			body:     []byte(`{"homeroom_id": 1, "jenis_laporan": "am", "tajuk": "x"}`),
			wantCode: http.StatusNotFound, wantData: notFound,
		},
		{
			name: "archive unknown", method: http.MethodDelete, path: "/api/laporan/9999", token: token,
			wantCode: http.StatusNotFound, wantData: notFound,
		},
		{
			name: "invalid jenis", method: http.MethodPost, path: "/api/laporan", token: token,
			body:     []byte(`{"homeroom_id": 1, "jenis_laporan": "lain", "tajuk": "x"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"success": false, "message": "Data tidak sah", "errors": {
				"jenis_laporan": "jenis_laporan must be one of: kehadiran, disiplin, akademik, aktiviti, am"}}`),
		},
		{
			name: "missing tajuk", method: http.MethodPost, path: "/api/laporan", token: token,
			body:     []byte(`{"homeroom_id": "1", "jenis_laporan": "am", "tajuk": "  "}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"success": false, "message": "Data tidak sah", "errors": {"tajuk": "tajuk is required"}}`),
		},
		{
			name: "unknown homeroom", method: http.MethodPost, path: "/api/laporan", token: token,
			body:     []byte(`{"homeroom_id": 9999, "jenis_laporan": "am", "tajuk": "x"}`),
			wantCode: http.StatusInternalServerError, wantData: marchallObj(t, apiErr{Message: "Ralat sistem"}),
		},
	}
	runHTTPTests(t, app, tests)
}
