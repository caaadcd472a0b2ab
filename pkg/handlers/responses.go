package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody mirrors the problem document huma returns for its own routes
type ErrorBody struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// ErrorResponse sends a problem JSON response
func ErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	body := ErrorBody{
		Title:  http.StatusText(statusCode),
		Status: statusCode,
		Detail: message,
	}
	writeJSON(w, "application/problem+json", body, statusCode)
}

func writeJSON(w http.ResponseWriter, contentType string, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// NotFoundHandler answers unknown paths with a problem document
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, "no route for "+r.URL.Path, http.StatusNotFound)
	}
}

// MethodNotAllowedHandler answers unsupported methods with a problem document
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, r.Method+" is not supported for "+r.URL.Path, http.StatusMethodNotAllowed)
	}
}
