package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/jeeprep/internal/errors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	if s.Metrics != nil {
		r.Use(s.metricsMiddleware)
		r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errors.NewNotFoundError("route", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, &errors.AppError{
			Code:    errors.ErrCodeBadRequest,
			Message: "method not allowed: " + r.Method,
			Status:  http.StatusMethodNotAllowed,
		})
	})

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Get("/problems", s.handleListProblems)
	r.Get("/problems/{id}", s.handleGetProblem)
	r.Get("/problems/{id}/submissions", s.handleProblemSubmissions)
	r.Get("/problems/{id}/reviews", s.handleProblemReviews)
	r.Get("/topics", s.handleListTopics)

	r.Get("/submissions", s.handleListSubmissions)
	r.Post("/submit", s.handleSubmit)

	r.Route("/users/{id}", func(r chi.Router) {
		r.Get("/", s.handleGetUser)
		r.Put("/", s.handleUpdateUser)
		r.Get("/stats", s.handleUserStats)
		r.Get("/answers", s.handleUserAnswers)
		r.Post("/submit_answer/{problemId}", s.handleSubmitAnswer)
		r.Post("/submit_review/{problemId}", s.handleSubmitReview)
	})
	r.Get("/user_answer/{userId}/{problemId}", s.handleUserAnswer)

	r.Get("/problem_stats/{id}", s.handleProblemStats)
	r.Get("/api/unified-stats/{id}", s.handleUnifiedStats)
	r.Get("/leaderboard", s.handleLeaderboard)

	return r
}
