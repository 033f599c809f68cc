package handlers

import (
	"context"
	"net/http"
	"time"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// NewHealthHandler runs every check and answers 503 when one of them fails.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func NewHealthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		body := map[string]string{"status": statusOK}
		status := http.StatusOK
		for name, check := range checks {
			if err := check(ctx); err != nil {
				body[name] = err.Error()
				body["status"] = statusError
				status = http.StatusServiceUnavailable
				continue
			}
			body[name] = statusOK
		}

		writeJSON(w, status, body)
	}
}
