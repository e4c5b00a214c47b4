package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type updateUserRequest struct {
	Name  string `json:"name" validate:"max=100"`
	Email string `json:"email" validate:"omitempty,email"`
}

func userIDParam(r *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(r, name))
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.UserService.GetUser(r.Context(), userIDParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, user)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	user, err := s.UserService.UpdateUser(r.Context(), userIDParam(r, "id"), req.Name, req.Email)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, user)
}

func (s *Server) handleUserAnswers(w http.ResponseWriter, r *http.Request) {
	answers, err := s.SubmissionService.UserAnswers(r.Context(), userIDParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, answers)
}

// handleUserAnswer returns the latest answer, or {} when the user never answered.
func (s *Server) handleUserAnswer(w http.ResponseWriter, r *http.Request) {
	rec, err := s.SubmissionService.UserAnswer(r.Context(), userIDParam(r, "userId"), problemIDParam(r, "problemId"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	if rec == nil {
		writeJSON(w, r, http.StatusOK, struct{}{})
		return
	}
	writeJSON(w, r, http.StatusOK, rec)
}
