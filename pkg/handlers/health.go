package handlers

import (
	"io"
	"log/slog"
	"net/http"
)

// HealthBody is the liveness response text
const HealthBody = "Healthy"

// HealthHandler reports process liveness. It never touches the catalog,
// so it stays green while data is still loading or failed to load.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)

		if _, err := io.WriteString(w, HealthBody); err != nil {
			slog.Debug("Failed to write health response", "error", err)
		}
	}
}
