package emulator

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/studytrack/internal/app"
	"github.com/MKhiriev/studytrack/internal/config"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/MKhiriev/studytrack/models"
)

func newTestServer(t *testing.T, apiKey string) (*Handler, *httptest.Server) {
	t.Helper()
	h := NewHandler(config.EmulatorConfig{SignKey: "test-sign-key", APIKey: apiKey}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return h, srv
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeResp[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func signUp(t *testing.T, srv *httptest.Server, email string) models.AuthResponse {
	t.Helper()
	resp := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signUp", "", models.AuthRequest{
		Email: email, Password: "secret1", DisplayName: "ann",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeResp[models.AuthResponse](t, resp)
}

func TestAuth_SignUpSignIn(t *testing.T) {
	_, srv := newTestServer(t, "")

	created := signUp(t, srv, "Ann@studytrack.app")
	assert.NotEmpty(t, created.UID)
	assert.Equal(t, "ann@studytrack.app", created.Email)
	assert.NotEmpty(t, created.IDToken)

	resp := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signUp", "", models.AuthRequest{
		Email: "ann@studytrack.app", Password: "secret1",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, app.CodeEmailInUse, decodeResp[utils.ErrorBody](t, resp).Error.Code)

	resp = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signUp", "", models.AuthRequest{
		Email: "bob@studytrack.app", Password: "123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, app.CodeWeakPassword, decodeResp[utils.ErrorBody](t, resp).Error.Code)

	resp = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signIn", "", models.AuthRequest{
		Email: "ann@studytrack.app", Password: "wrong-pass",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, app.CodeInvalidCredential, decodeResp[utils.ErrorBody](t, resp).Error.Code)

	resp = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signIn", "", models.AuthRequest{
		Email: "ANN@studytrack.app", Password: "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created.UID, decodeResp[models.AuthResponse](t, resp).UID)
}

func TestAuth_TokenRequiredAndRevoked(t *testing.T) {
	_, srv := newTestServer(t, "")

	resp := doJSON(t, http.MethodGet, srv.URL+"/v1/documents/users/u1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/v1/documents/users/u1", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	user := signUp(t, srv, "ann@studytrack.app")
	resp = doJSON(t, http.MethodGet, srv.URL+"/v1/documents/users/u1", user.IDToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signOut", user.IDToken, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/v1/documents/users/u1", user.IDToken, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDocuments_RoundTrip(t *testing.T) {
	_, srv := newTestServer(t, "")
	token := signUp(t, srv, "ann@studytrack.app").IDToken
	url := srv.URL + "/v1/documents/users/u1"

	resp := doJSON(t, http.MethodPut, url, token, models.DocumentWrite{
		Fields: map[string]any{"username": "ann", "user": map[string]any{"xp": 10, "level": 1}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPatch, url, token, models.DocumentWrite{
		Fields: map[string]any{"user": map[string]any{"xp": 25}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, url, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc := decodeResp[models.Document](t, resp)
	assert.Equal(t, "u1", doc.ID)
	assert.JSONEq(t, `"ann"`, string(doc.Fields["username"]))
	assert.JSONEq(t, `{"xp":25,"level":1}`, string(doc.Fields["user"]))

	resp = doJSON(t, http.MethodDelete, url, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = doJSON(t, http.MethodGet, url, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodPut, srv.URL+"/v1/documents/users", token, models.DocumentWrite{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCollections_QueryAndAdd(t *testing.T) {
	_, srv := newTestServer(t, "")
	token := signUp(t, srv, "ann@studytrack.app").IDToken
	base := srv.URL + "/v1/collections/studyGroups/g1/messages"

	for _, m := range []struct {
		text   string
		sentAt int64
	}{{"first", 100}, {"third", 300}, {"second", 200}} {
		resp := doJSON(t, http.MethodPost, base, token, models.DocumentWrite{
			Fields: map[string]any{"text": m.text, "sentAt": m.sentAt},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, http.MethodGet, base+"?orderBy=sentAt&direction=desc&limit=2", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeResp[models.DocumentList](t, resp)
	require.Len(t, list.Documents, 2)
	assert.JSONEq(t, `"third"`, string(list.Documents[0].Fields["text"]))
	assert.JSONEq(t, `"second"`, string(list.Documents[1].Fields["text"]))

	resp = doJSON(t, http.MethodGet, base+"?where=text==first", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeResp[models.DocumentList](t, resp).Documents, 1)

	resp = doJSON(t, http.MethodGet, base+"?direction=sideways", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/v1/collections/empty", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeResp[models.DocumentList](t, resp).Documents)
}

func TestBatch(t *testing.T) {
	_, srv := newTestServer(t, "")
	token := signUp(t, srv, "ann@studytrack.app").IDToken

	resp := doJSON(t, http.MethodPost, srv.URL+"/v1/batch", token, models.BatchRequest{Writes: []models.BatchWrite{
		{Op: models.WriteSet, Path: "studyGroups/g1", Fields: map[string]any{"name": "physics"}},
		{Op: models.WriteSet, Path: "studyGroups/g1/members/u1", Fields: map[string]any{"role": "owner"}},
	}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/v1/batch", token, models.BatchRequest{Writes: []models.BatchWrite{
		{Op: models.WriteDelete, Path: "studyGroups/g1"},
		{Op: models.WriteDelete, Path: "studyGroups"},
	}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/v1/documents/studyGroups/g1", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddleware_APIKeyAndFaults(t *testing.T) {
	h, srv := newTestServer(t, "app-key")

	resp := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signIn", "", models.AuthRequest{})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	h.FailNext(http.StatusServiceUnavailable, app.CodeUnavailable, 2)

	for i := 0; i < 2; i++ {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/auth/signIn", bytes.NewReader([]byte(`{}`)))
		require.NoError(t, err)
		req.Header.Set(utils.APIKeyHeader, "app-key")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, app.CodeUnavailable, decodeResp[utils.ErrorBody](t, resp).Error.Code)
		_ = resp.Body.Close()
	}

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/auth/signIn", bytes.NewReader([]byte(`{}`)))
	require.NoError(t, err)
	req.Header.Set(utils.APIKeyHeader, "app-key")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Equal(t, 2, h.InjectedFaults())
	assert.Equal(t, int64(3), h.Requests())
	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))
}
