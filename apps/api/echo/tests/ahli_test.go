package tests

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsmranau/ehomeroom/core/ahli"
)

func Test_ahliApi(t *testing.T) {
	env := setup(t)
	app, token := env.app, env.guruToken

	create := func(hrID int64, nama, noMaktab string) ahli.Member {
		t.Helper()
		res := mustCall(t, app, http.MethodPost, "/api/ahli", token, map[string]interface{}{
			"homeroom_id": hrID, "nama_ahli": nama, "no_maktab": noMaktab, "jantina": ahli.Lelaki, "kelas": "4 Bestari",
		})
		assert.Equal(t, "Ahli berjaya ditambah", res.Message)
		var m ahli.Member
		decodeData(t, res, &m)
		assert.Equal(t, res.ID, m.ID)
		return m
	}
	list := func(hrID int64) []ahli.Member {
		t.Helper()
		var members []ahli.Member
		decodeData(t, mustCall(t, app, http.MethodGet, fmt.Sprintf("/api/ahli/%d", hrID), token, nil), &members)
		return members
	}
	bilangans := func(members []ahli.Member) []int64 {
		out := make([]int64, 0, len(members))
		for _, m := range members {
			out = append(out, m.Bilangan)
		}
		return out
	}

	t.Run("bilangan is never reused", func(t *testing.T) {
		ali := create(env.hr1.ID, "Ali", "M001")
		siti := create(env.hr1.ID, "Siti", "M002")
		assert.EqualValues(t, 1, ali.Bilangan)
		assert.EqualValues(t, 2, siti.Bilangan)

		res := mustCall(t, app, http.MethodDelete, fmt.Sprintf("/api/ahli/%d", ali.ID), token, nil)
		assert.Equal(t, "Ahli berjaya dipadam", res.Message)
		members := list(env.hr1.ID)
		require.Len(t, members, 1)
		assert.Equal(t, "Siti", members[0].NamaAhli)
		assert.EqualValues(t, 2, members[0].Bilangan)

		ahmad := create(env.hr1.ID, "Ahmad", "M003")
		assert.EqualValues(t, 3, ahmad.Bilangan)
		assert.Equal(t, []int64{2, 3}, bilangans(list(env.hr1.ID)))
	})

	t.Run("concurrent creates get distinct numbers", func(t *testing.T) {
		const n = 8
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				body := marchallObj(t, map[string]interface{}{
					"homeroom_id": env.hr2.ID, "nama_ahli": fmt.Sprintf("Pelajar %d", i),
					"no_maktab": fmt.Sprintf("N%03d", i), "jantina": ahli.Perempuan, "kelas": "5 Cemerlang",
				})
				req, rec := newAuthRequest(http.MethodPost, "/api/ahli", token, body)
				app.ServeHTTP(rec, req)
				assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			}(i)
		}
		wg.Wait()
		assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8}, bilangans(list(env.hr2.ID)))
	})

	t.Run("get looks up by id only", func(t *testing.T) {
		m := list(env.hr1.ID)[0]
		var got ahli.Member
		decodeData(t, mustCall(t, app, http.MethodGet, fmt.Sprintf("/api/ahli/%d/%d", env.hr1.ID, m.ID), token, nil), &got)
		assert.Equal(t, m.NamaAhli, got.NamaAhli)

		// the homeroom segment is not matched against the record
		var other ahli.Member
		decodeData(t, mustCall(t, app, http.MethodGet, fmt.Sprintf("/api/ahli/%d/%d", env.hr2.ID, m.ID), token, nil), &other)
		assert.Equal(t, m.ID, other.ID)
		assert.Equal(t, env.hr1.ID, other.HomeroomID)

		code, res := call(t, app, http.MethodGet, fmt.Sprintf("/api/ahli/%d/9999", env.hr1.ID), token, nil)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "Ahli tidak dijumpai", res.Message)
	})

	t.Run("update replaces every field and keeps bilangan", func(t *testing.T) {
		m := list(env.hr1.ID)[0]
		res := mustCall(t, app, http.MethodPut, fmt.Sprintf("/api/ahli/%d", m.ID), token, map[string]interface{}{
			"homeroom_id": env.hr2.ID, "nama_ahli": "Siti Aminah", "no_maktab": "M002", "jantina": ahli.Perempuan,
			"kelas": "4 Cerdik", "jawatan_kelab": ahli.RoleAJKKhas, "jawatan_kelab_lain": "Juruacara",
			"jawatan_sukan": "Ahli", "jawatan_sukan_lain": "dibuang",
		})
		assert.Equal(t, "Ahli berjaya dikemaskini", res.Message)

		var got ahli.Member
		decodeData(t, mustCall(t, app, http.MethodGet, fmt.Sprintf("/api/ahli/%d/%d", env.hr1.ID, m.ID), token, nil), &got)
		assert.Equal(t, "Siti Aminah", got.NamaAhli)
		assert.Equal(t, m.Bilangan, got.Bilangan)
		assert.Equal(t, env.hr1.ID, got.HomeroomID, "homeroom_id is ignored on update")
		assert.Equal(t, "Juruacara", got.JawatanKelabLain.String)
		assert.False(t, got.JawatanSukanLain.Valid)
	})

	notFound := marchallObj(t, apiErr{Message: "Ahli tidak dijumpai"})
	tests := []httpTest{
		{
			name: "missing fields", method: http.MethodPost, path: "/api/ahli", token: token,
			body:     []byte(fmt.Sprintf(`{"homeroom_id": %d, "jantina": "Lelaki", "kelas": "4A", "no_maktab": "X1"}`, env.hr1.ID)),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"success": false, "message": "Data tidak sah", "errors": {"nama_ahli": "nama_ahli is required"}}`),
		},
		{name: "update unknown", method: http.MethodPut, path: "/api/ahli/9999", token: token,
			body:     []byte(fmt.Sprintf(`{"homeroom_id": %d, "nama_ahli": "X", "jantina": "Lelaki", "kelas": "4A", "no_maktab": "X1"}`, env.hr1.ID)),
			wantCode: http.StatusNotFound, wantData: notFound,
		},
		{name: "delete unknown", method: http.MethodDelete, path: "/api/ahli/9999", token: token, wantCode: http.StatusNotFound, wantData: notFound},
		{name: "get unknown", path: fmt.Sprintf("/api/ahli/%d/9999", env.hr1.ID), token: token, wantCode: http.StatusNotFound, wantData: notFound},
		{name: "empty homeroom", path: "/api/ahli/9999", token: token, wantCode: http.StatusOK, wantData: []byte(`{"success": true, "data": []}`)},
	}
	runHTTPTests(t, app, tests)
}
