package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/stats"
)

type submitRequest struct {
	ProblemID models.ProblemID `json:"problemId" validate:"required,notblank"`
	Answer    string           `json:"answer" validate:"required,notblank,max=64"`
	UserID    string           `json:"userId" validate:"max=128"`
}

type submitAnswerRequest struct {
	Answer string `json:"answer" validate:"required,notblank,max=64"`
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := s.SubmissionService.ListSubmissions(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, subs)
}

// handleSubmit checks an answer and appends it to the submission log.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = s.DefaultUserID
	}
	log.Debug("submit: user_id=%s, problem_id=%s", userID, req.ProblemID)

	sub, err := s.SubmissionService.Submit(r.Context(), userID, req.ProblemID, req.Answer)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, models.SubmitResult{IsCorrect: sub.IsCorrect})
}

// handleSubmitAnswer records an answer for the user in the path and returns
// their refreshed stats.
func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "id"))
	problemID := problemIDParam(r, "problemId")

	var req submitAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	sub, err := s.SubmissionService.Submit(r.Context(), userID, problemID, req.Answer)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp, err := s.StatsService.UserStats(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.SubmitAnswerResponse{
		Success: true,
		Answer:  stats.AnswerRecordOf(*sub),
		Stats:   resp.Stats,
	})
}
