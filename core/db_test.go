package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ID
		wantErr bool
	}{
		{name: "number", in: `{"id": 7}`, want: 7},
		{name: "numeric string", in: `{"id": "12"}`, want: 12},
		{name: "padded string", in: `{"id": " 3 "}`, want: 3},
		{name: "null", in: `{"id": null}`, want: 0},
		{name: "empty string", in: `{"id": ""}`, want: 0},
		{name: "garbage", in: `{"id": "abc"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				ID ID `json:"id"`
			}
			err := json.Unmarshal([]byte(tt.in), &v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.ID)
		})
	}
}

func TestOrderBy(t *testing.T) {
	got := OrderBy(DBOrdering{Field: "tarikh", Ascending: false}, DBOrdering{Field: "id", Ascending: true})
	assert.Equal(t, "tarikh DESC, id ASC", got)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("laporan")))
	assert.False(t, IsNotFound(NewValidationError(nil)))
	assert.False(t, IsNotFound(nil))
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantValid bool
		want      float64
		wantErr   bool
	}{
		{name: "number", in: `{"n": 3.75}`, wantValid: true, want: 3.75},
		{name: "numeric string", in: `{"n": "120.50"}`, wantValid: true, want: 120.5},
		{name: "zero", in: `{"n": 0}`, wantValid: true},
		{name: "null", in: `{"n": null}`},
		{name: "empty string", in: `{"n": ""}`},
		{name: "garbage", in: `{"n": "tiga"}`, wantErr: true},
		{name: "infinity", in: `{"n": "Infinity"}`, wantErr: true},
		{name: "negative inf", in: `{"n": "-Inf"}`, wantErr: true},
		{name: "nan", in: `{"n": "NaN"}`, wantErr: true},
		{name: "overflow", in: `{"n": "1e400"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				N Number `json:"n"`
			}
			err := json.Unmarshal([]byte(tt.in), &v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, v.N.Valid)
			assert.Equal(t, tt.want, v.N.Float64.Float64)
		})
	}

	out, err := json.Marshal(struct {
		N Number `json:"n"`
	}{NumberFrom(2.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n": 2.5}`, string(out))
}
