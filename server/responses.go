package server

import (
	"encoding/json"
	"net/http"
)

// apiResponse is the JSON envelope every endpoint returns.
type apiResponse struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorInfo `json:"error,omitempty"`
}

// errorInfo carries a stable machine-readable code alongside the
// human-readable message.
type errorInfo struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error codes surfaced to clients.
const (
	codeValidation   = "VALIDATION_ERROR"
	codeTypeMismatch = "TYPE_MISMATCH"
	codeUnparseable  = "UNPARSEABLE"
	codeConflict     = "CONFLICT"
	codeNotFound     = "NOT_FOUND"
	codeInternal     = "INTERNAL_ERROR"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondErrorWithDetails(w, status, code, message, nil)
}

func respondErrorWithDetails(w http.ResponseWriter, status int, code, message string, details map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{
		Success: false,
		Error: &errorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
