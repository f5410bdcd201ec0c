package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON encodes payload and writes it with status. A payload that cannot
// be encoded turns into a plain 500 and the encoding error is returned.
func WriteJSON(w http.ResponseWriter, payload any, status int) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "response encoding failed", http.StatusInternalServerError)
		return 0, fmt.Errorf("encode response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return w.Write(body)
}

// ErrorBody is the error envelope written by [WriteError].
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteError writes {"error":{"code":..,"message":..}} with statusCode.
func WriteError(w http.ResponseWriter, statusCode int, code, message string) {
	_, _ = WriteJSON(w, ErrorBody{Error: ErrorDetail{Code: code, Message: message}}, statusCode)
}
