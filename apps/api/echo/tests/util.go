package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	. "github.com/mrsmranau/ehomeroom/apps/api/echo"
	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/user"
)

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

// envelope mirrors the API reply; Data is decoded by the caller.
type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Message string            `json:"message"`
	ID      int64             `json:"id"`
	Errors  map[string]string `json:"errors"`
	User    *user.Profile     `json:"user"`
	Token   string            `json:"token"`
}

// apiErr is the body of every failed request without field errors.
type apiErr struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, conf *core.Config, usr user.User) string {
	t.Helper()
	token, err := GenerateToken(conf, NewClaims(conf, usr))
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app Server, cases []httpTest) {
	t.Helper()
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, rec := newAuthRequest(method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

// call sends body (marshalled unless already []byte) and decodes the envelope of the reply.
func call(t *testing.T, app Server, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()
	var data []byte
	switch b := body.(type) {
	case nil:
	case []byte:
		data = b
	default:
		data = marchallObj(t, b)
	}
	req, rec := newAuthRequest(method, path, token, data)
	app.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decoding %q: %v", method, path, rec.Body.String(), err)
	}
	return rec.Code, env
}

// mustCall is call for requests expected to succeed with a 200.
func mustCall(t *testing.T, app Server, method, path, token string, body interface{}) envelope {
	t.Helper()
	code, env := call(t, app, method, path, token, body)
	if code != http.StatusOK || !env.Success {
		t.Fatalf("%s %s: code = %d; success = %v; message = %q; errors = %v",
			method, path, code, env.Success, env.Message, env.Errors)
	}
	return env
}

func decodeData(t *testing.T, env envelope, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dest); err != nil {
		t.Fatalf("decoding data %s: %v", string(env.Data), err)
	}
}
