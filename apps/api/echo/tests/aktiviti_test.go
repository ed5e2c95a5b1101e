package tests

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsmranau/ehomeroom/core/aktiviti"
)

func Test_aktivitiApi(t *testing.T) {
	env := setup(t)
	app, token := env.app, env.guruToken

	tests := []struct {
		kind  aktiviti.Kind
		extra map[string]interface{}
		check func(t *testing.T, a aktiviti.Activity)
	}{
		{
			kind:  aktiviti.KindBiasa,
			extra: map[string]interface{}{"gambar1_url": "https://foto.test/1", "keuntungan": 50},
			check: func(t *testing.T, a aktiviti.Activity) {
				require.NotNil(t, a.Gallery)
				assert.Equal(t, "https://foto.test/1", a.Gambar1URL.String)
				assert.Nil(t, a.Venture)
				assert.Nil(t, a.Photo)
			},
		},
		{
			kind:  aktiviti.KindKeusahawanan,
			extra: map[string]interface{}{"keuntungan": "120.50", "gambar_url": "https://foto.test/k", "objektif": "x"},
			check: func(t *testing.T, a aktiviti.Activity) {
				require.NotNil(t, a.Venture)
				assert.InDelta(t, 120.5, a.Keuntungan.Float64.Float64, 1e-9)
				require.NotNil(t, a.Photo)
				assert.Equal(t, "https://foto.test/k", a.GambarURL.String)
				assert.Nil(t, a.Outreach)
			},
		},
		{
			kind:  aktiviti.KindKhidmat,
			extra: map[string]interface{}{"objektif": "Membantu", "impak": "Tinggi"},
			check: func(t *testing.T, a aktiviti.Activity) {
				require.NotNil(t, a.Outreach)
				assert.Equal(t, "Membantu", a.Objektif.String)
				assert.Equal(t, "Tinggi", a.Impak.String)
				assert.Nil(t, a.Gallery)
			},
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			base := "/api/aktiviti-" + string(tt.kind)
			body := map[string]interface{}{
				"homeroom_id": env.hr1.ID, "tarikh": "2024-05-04", "nama_aktiviti": "Gotong-royong", "tempat": "Dewan",
			}
			for k, v := range tt.extra {
				body[k] = v
			}
			res := mustCall(t, app, http.MethodPost, base, token, body)
			assert.Equal(t, "Aktiviti berjaya ditambah", res.Message)
			id := res.ID

			var a aktiviti.Activity
			decodeData(t, mustCall(t, app, http.MethodGet, fmt.Sprintf("%s/%d/%d", base, env.hr1.ID, id), token, nil), &a)
			assert.Equal(t, "Sabtu", a.Hari.String)
			assert.Equal(t, "Gotong-royong", a.NamaAktiviti)
			tt.check(t, a)

			var list []aktiviti.Activity
			decodeData(t, mustCall(t, app, http.MethodGet, fmt.Sprintf("%s/%d", base, env.hr1.ID), token, nil), &list)
			require.Len(t, list, 1)

			mustCall(t, app, http.MethodPut, fmt.Sprintf("%s/%d", base, id), token, map[string]interface{}{
				"homeroom_id": env.hr1.ID, "tarikh": "2024-05-05", "nama_aktiviti": "Gotong-royong perdana",
			})
			decodeData(t, mustCall(t, app, http.MethodGet, fmt.Sprintf("%s/%d/%d", base, env.hr1.ID, id), token, nil), &a)
			assert.Equal(t, "Ahad", a.Hari.String)
			assert.False(t, a.Tempat.Valid)

			mustCall(t, app, http.MethodDelete, fmt.Sprintf("%s/%d", base, id), token, nil)
			code, res := call(t, app, http.MethodGet, fmt.Sprintf("%s/%d/%d", base, env.hr1.ID, id), token, nil)
			assert.Equal(t, http.StatusNotFound, code)
			assert.Equal(t, "Aktiviti tidak dijumpai", res.Message)
		})
	}

	t.Run("kinds are separate tables", func(t *testing.T) {
		mustCall(t, app, http.MethodPost, "/api/aktiviti-biasa", token, map[string]interface{}{
			"homeroom_id": env.hr1.ID, "tarikh": "2024-06-01", "nama_aktiviti": "Sukaneka",
		})
		var list []aktiviti.Activity
		decodeData(t, mustCall(t, app, http.MethodGet, fmt.Sprintf("/api/aktiviti-khidmat/%d", env.hr1.ID), token, nil), &list)
		assert.Empty(t, list)
	})

	t.Run("non-finite keuntungan is rejected", func(t *testing.T) {
		for _, v := range []string{"Infinity", "-Inf", "NaN"} {
			code, res := call(t, app, http.MethodPost, "/api/aktiviti-keusahawanan", token, map[string]interface{}{
				"homeroom_id": env.hr2.ID, "tarikh": "2024-06-01", "nama_aktiviti": "Jualan amal", "keuntungan": v,
			})
			assert.Equal(t, http.StatusInternalServerError, code, v)
			assert.False(t, res.Success)
		}

		// the homeroom's list still encodes
		var list []aktiviti.Activity
		decodeData(t, mustCall(t, app, http.MethodGet, fmt.Sprintf("/api/aktiviti-keusahawanan/%d", env.hr2.ID), token, nil), &list)
		assert.Empty(t, list)
	})
}
