package api

import "net/http"

type submitReviewRequest struct {
	Review string `json:"review" validate:"required,notblank,max=2000"`
}

func (s *Server) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	var req submitReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	review, err := s.ReviewService.SubmitReview(r.Context(), userIDParam(r, "id"), problemIDParam(r, "problemId"), req.Review)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, review)
}

func (s *Server) handleProblemReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.ReviewService.ListReviews(r.Context(), problemIDParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, reviews)
}
