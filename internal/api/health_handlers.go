package api

import (
	"context"
	"net/http"
	"time"

	"github.com/vytor/jeeprep/internal/logger"
)

const readinessTimeout = 2 * time.Second

// handleHealth returns a liveness probe - always returns 200 OK.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady returns 200 when the store answers a ping, 503 otherwise.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if s.Health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		if err := s.Health.Ping(ctx); err != nil {
			log.Warn("readiness check failed - storage: %v", err)
			writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "storage unavailable"})
			return
		}
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}
