package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  any
		status   int
		wantBody string
	}{
		{name: "map", payload: map[string]string{"uid": "u1"}, status: http.StatusOK, wantBody: `{"uid":"u1"}`},
		{name: "created document", payload: struct {
			Name   string         `json:"name"`
			Fields map[string]int `json:"fields"`
		}{Name: "users/u1", Fields: map[string]int{"xp": 40}}, status: http.StatusCreated, wantBody: `{"name":"users/u1","fields":{"xp":40}}`},
		{name: "slice", payload: []int{1, 2}, status: http.StatusOK, wantBody: `[1,2]`},
		{name: "nil", payload: nil, status: http.StatusNotFound, wantBody: `null`},
		{name: "empty struct", payload: struct{}{}, status: http.StatusOK, wantBody: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.payload, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_UnencodablePayload(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]any{"fn": func() {}}, http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteError_Envelope(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusServiceUnavailable, "unavailable", "try later")

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrorDetail{Code: "unavailable", Message: "try later"}, body.Error)
}
