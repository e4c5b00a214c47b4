package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vytor/jeeprep/internal/errors"
	"github.com/vytor/jeeprep/internal/logger"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	resp, err := s.StatsService.UserStats(r.Context(), userIDParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleUnifiedStats(w http.ResponseWriter, r *http.Request) {
	resp, err := s.StatsService.UnifiedStats(r.Context(), userIDParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleProblemStats(w http.ResponseWriter, r *http.Request) {
	ps, err := s.StatsService.ProblemStats(r.Context(), problemIDParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, ps)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	limit := defaultLeaderboardLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLeaderboardLimit {
			handleError(w, r, errors.NewValidationError("limit", "must be between 1 and "+strconv.Itoa(maxLeaderboardLimit)))
			return
		}
		limit = n
	}
	log.Debug("leaderboard requested: limit=%d", limit)

	board, err := s.StatsService.Leaderboard(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, board)
}
