package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/jeeprep/internal/errors"
	"github.com/vytor/jeeprep/internal/models"
)

func problemIDParam(r *http.Request, name string) models.ProblemID {
	return models.ProblemID(strings.TrimSpace(chi.URLParam(r, name)))
}

// parseProblemFilter reads ?topic= (name or slug) and ?difficulty=.
func parseProblemFilter(r *http.Request) (models.ProblemFilter, error) {
	var filter models.ProblemFilter
	q := r.URL.Query()

	if topic := strings.TrimSpace(q.Get("topic")); topic != "" {
		filter.TopicSlug = models.TopicSlug(topic)
	}
	if raw := strings.TrimSpace(q.Get("difficulty")); raw != "" {
		difficulty, ok := models.ParseDifficulty(raw)
		if !ok {
			return filter, errors.NewValidationError("difficulty", "must be Easy, Medium or Hard")
		}
		filter.Difficulty = difficulty
	}
	return filter, nil
}

func (s *Server) handleListProblems(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProblemFilter(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	problems, err := s.ProblemService.ListProblems(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, problems)
}

func (s *Server) handleGetProblem(w http.ResponseWriter, r *http.Request) {
	problem, err := s.ProblemService.GetProblem(r.Context(), problemIDParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, problem)
}

func (s *Server) handleListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := s.ProblemService.ListTopics(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, topics)
}

func (s *Server) handleProblemSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := s.SubmissionService.ListProblemSubmissions(r.Context(), problemIDParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, subs)
}
