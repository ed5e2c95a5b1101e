package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/mrsmranau/ehomeroom/apps/api/echo"
	"github.com/mrsmranau/ehomeroom/core/ahli"
	"github.com/mrsmranau/ehomeroom/storage/database/sqlx"
	"github.com/mrsmranau/ehomeroom/tests"
)

func listIDs(t *testing.T, app Server, path, token string) []int64 {
	t.Helper()
	var rows []struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(mustCall(t, app, http.MethodGet, path, token, nil).Data, &rows))
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}

func Test_listsAreRepeatable(t *testing.T) {
	env := setup(t)
	app, token := env.app, env.guruToken
	hrRepo := sqlxrepos.NewHomeroomRepository(env.db)

	// homerooms tied on tingkatan and name
	dup1 := testutil.CreateHomeroom(t, hrRepo, "Ibnu Sina", "Tingkatan 5", "")
	dup2 := testutil.CreateHomeroom(t, hrRepo, "Ibnu Sina", "Tingkatan 5", "")

	create := func(path, tok string, body map[string]interface{}) {
		t.Helper()
		body["homeroom_id"] = env.hr1.ID
		mustCall(t, app, http.MethodPost, path, tok, body)
	}
	for i := 0; i < 4; i++ {
		// same dates everywhere, so only the id tiebreakers separate the rows
		create("/api/laporan", env.adminToken, map[string]interface{}{
			"tarikh_laporan": "2024-03-01", "jenis_laporan": "kehadiran", "tajuk": fmt.Sprintf("Laporan %d", i),
		})
		create("/api/ahli", token, map[string]interface{}{
			"nama_ahli": fmt.Sprintf("Pelajar %d", i), "no_maktab": fmt.Sprintf("M%03d", i), "jantina": ahli.Lelaki, "kelas": "4 Cerdik",
		})
		create("/api/laporan-mingguan", token, map[string]interface{}{"tarikh": "2024-03-04"})
		create("/api/pencapaian", token, map[string]interface{}{
			"nama_pelajar": fmt.Sprintf("Pelajar %d", i), "nama_aktiviti": "Pidato", "peringkat": "daerah",
		})
		for _, kind := range []string{"biasa", "keusahawanan", "khidmat"} {
			create("/api/aktiviti-"+kind, token, map[string]interface{}{"tarikh": "2024-03-09", "nama_aktiviti": "Jualan amal"})
		}
	}

	desc := func(ids []int64) bool {
		return sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i] > ids[j] })
	}
	asc := func(ids []int64) bool {
		return sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}
	tests := []struct {
		name    string
		path    string
		wantLen int
		ordered func([]int64) bool
	}{
		{name: "homeroom", path: "/api/homeroom", wantLen: 4, ordered: asc},
		{name: "laporan", path: fmt.Sprintf("/api/laporan?homeroom_id=%d", env.hr1.ID), wantLen: 4, ordered: desc},
		{name: "ahli", path: fmt.Sprintf("/api/ahli/%d", env.hr1.ID), wantLen: 4, ordered: asc},
		{name: "laporan-mingguan", path: fmt.Sprintf("/api/laporan-mingguan/%d", env.hr1.ID), wantLen: 4, ordered: desc},
		{name: "pencapaian", path: fmt.Sprintf("/api/pencapaian/%d", env.hr1.ID), wantLen: 4, ordered: desc},
		{name: "aktiviti-biasa", path: fmt.Sprintf("/api/aktiviti-biasa/%d", env.hr1.ID), wantLen: 4, ordered: desc},
		{name: "aktiviti-keusahawanan", path: fmt.Sprintf("/api/aktiviti-keusahawanan/%d", env.hr1.ID), wantLen: 4, ordered: desc},
		{name: "aktiviti-khidmat", path: fmt.Sprintf("/api/aktiviti-khidmat/%d", env.hr1.ID), wantLen: 4, ordered: desc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := listIDs(t, app, tt.path, token)
			second := listIDs(t, app, tt.path, token)
			require.Len(t, first, tt.wantLen)
			assert.Equal(t, first, second)
			assert.True(t, tt.ordered(first), "unexpected order %v", first)
		})
	}

	t.Run("homeroom ties order by id", func(t *testing.T) {
		assert.Equal(t, []int64{env.hr1.ID, env.hr2.ID, dup1.ID, dup2.ID}, listIDs(t, app, "/api/homeroom", token))
	})
}
