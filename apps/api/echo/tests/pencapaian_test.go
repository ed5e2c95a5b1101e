package tests

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsmranau/ehomeroom/core/pencapaian"
)

func Test_pencapaianApi(t *testing.T) {
	env := setup(t)
	app, token := env.app, env.guruToken

	res := mustCall(t, app, http.MethodPost, "/api/pencapaian", token, map[string]interface{}{
		"homeroom_id": fmt.Sprint(env.hr1.ID), "nama_pelajar": "Siti", "no_maktab": "M002", "png": "3.75",
		"nama_aktiviti": "Pidato", "peringkat": "Negeri", "pencapaian": "Johan",
	})
	assert.Equal(t, "Pencapaian berjaya ditambah", res.Message)
	id := res.ID
	require.NotZero(t, id)

	get := func() pencapaian.Achievement {
		t.Helper()
		var a pencapaian.Achievement
		decodeData(t, mustCall(t, app, http.MethodGet, fmt.Sprintf("/api/pencapaian/%d/%d", env.hr1.ID, id), token, nil), &a)
		return a
	}

	a := get()
	assert.InDelta(t, 3.75, a.PNG.Float64.Float64, 1e-9)
	assert.Equal(t, pencapaian.PeringkatNegeri, a.Peringkat)
	assert.Equal(t, "Johan", a.Pencapaian.String)

	var list []pencapaian.Achievement
	decodeData(t, mustCall(t, app, http.MethodGet, fmt.Sprintf("/api/pencapaian/%d", env.hr1.ID), token, nil), &list)
	require.Len(t, list, 1)
	decodeData(t, mustCall(t, app, http.MethodGet, fmt.Sprintf("/api/pencapaian/%d", env.hr2.ID), token, nil), &list)
	assert.Empty(t, list)

	mustCall(t, app, http.MethodPut, fmt.Sprintf("/api/pencapaian/%d", id), token, map[string]interface{}{
		"homeroom_id": env.hr1.ID, "nama_pelajar": "Siti", "nama_aktiviti": "Pidato", "peringkat": "kebangsaan",
	})
	a = get()
	assert.Equal(t, pencapaian.PeringkatKebangsaan, a.Peringkat)
	assert.False(t, a.PNG.Valid)
	assert.False(t, a.Pencapaian.Valid)

	res = mustCall(t, app, http.MethodDelete, fmt.Sprintf("/api/pencapaian/%d", id), token, nil)
	assert.Equal(t, "Pencapaian berjaya dipadam", res.Message)

	notFound := marchallObj(t, apiErr{Message: "Pencapaian tidak dijumpai"})
	tests := []httpTest{
		{name: "deleted", path: fmt.Sprintf("/api/pencapaian/%d/%d", env.hr1.ID, id), token: token, wantCode: http.StatusNotFound, wantData: notFound},
		{
			name: "png out of range", method: http.MethodPost, path: "/api/pencapaian", token: token,
			body: []byte(fmt.Sprintf(`{"homeroom_id": %d, "nama_pelajar": "A", "nama_aktiviti": "B", "peringkat": "daerah", "png": 4.5}`,
				env.hr1.ID)),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"success": false, "message": "Data tidak sah", "errors": {"png": "png must be between 0 and 4"}}`),
		},
		{
			name: "invalid png", method: http.MethodPost, path: "/api/pencapaian", token: token,
			body: []byte(fmt.Sprintf(`{"homeroom_id": %d, "nama_pelajar": "A", "nama_aktiviti": "B", "peringkat": "daerah", "png": "tinggi"}`,
				env.hr1.ID)),
			wantCode: http.StatusInternalServerError, wantData: marchallObj(t, apiErr{Message: "Ralat sistem"}),
		},
		{
			name: "NaN png", method: http.MethodPost, path: "/api/pencapaian", token: token,
			body: []byte(fmt.Sprintf(`{"homeroom_id": %d, "nama_pelajar": "A", "nama_aktiviti": "B", "peringkat": "daerah", "png": "NaN"}`,
				env.hr1.ID)),
			wantCode: http.StatusInternalServerError, wantData: marchallObj(t, apiErr{Message: "Ralat sistem"}),
		},
	}
	runHTTPTests(t, app, tests)
}
