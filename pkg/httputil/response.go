// Package httputil provides shared HTTP helpers for consistent responses.
package httputil

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrCodeNotAcceptable is the error code of a 406 response.
const ErrCodeNotAcceptable = "not_acceptable"

// WriteJSON writes a JSON response with the given status code.
// It sets the Content-Type header to application/json.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes a JSON error response with the given status code.
// The error response includes an error code and a human-readable message.
func WriteError(w http.ResponseWriter, status int, errCode, message string) {
	WriteJSON(w, status, map[string]string{
		"error":   errCode,
		"message": message,
	})
}

// WriteErrorWithDetails writes a JSON error response with additional details.
func WriteErrorWithDetails(w http.ResponseWriter, status int, errCode, message string, details any) {
	WriteJSON(w, status, map[string]any{
		"error":   errCode,
		"message": message,
		"details": details,
	})
}

// WriteNotAcceptable writes a 406 Not Acceptable response listing the media
// types the server could have produced.
func WriteNotAcceptable(w http.ResponseWriter, offers []string) {
	if offers == nil {
		offers = []string{}
	}
	WriteErrorWithDetails(w, http.StatusNotAcceptable, ErrCodeNotAcceptable,
		"None of the available representations is acceptable",
		map[string]any{"available": offers})
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, errCode, message string) {
	WriteError(w, http.StatusInternalServerError, errCode, message)
}

// AddVary appends field to the Vary header unless it is already listed.
func AddVary(h http.Header, field string) {
	for _, v := range h.Values("Vary") {
		for _, f := range strings.Split(v, ",") {
			f = strings.TrimSpace(f)
			if f == "*" || strings.EqualFold(f, field) {
				return
			}
		}
	}
	h.Add("Vary", field)
}
