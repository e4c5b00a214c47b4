package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/jeeprep/internal/errors"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/repository"
	"github.com/vytor/jeeprep/internal/stats"
)

// ReviewService handles free-text reviews users leave on problems
type ReviewService interface {
	SubmitReview(ctx context.Context, userID string, problemID models.ProblemID, content string) (*models.Review, error)
	ListReviews(ctx context.Context, problemID models.ProblemID) ([]models.Review, error)
}

type reviewService struct {
	problemRepo    repository.ProblemRepository
	submissionRepo repository.SubmissionRepository
	userRepo       repository.UserRepository
	reviewRepo     repository.ReviewRepository
	now            Clock
}

// NewReviewService creates a new ReviewService
func NewReviewService(store *repository.Store) ReviewService {
	return &reviewService{
		problemRepo:    store.Problems,
		submissionRepo: store.Submissions,
		userRepo:       store.Users,
		reviewRepo:     store.Reviews,
		now:            time.Now,
	}
}

// SubmitReview stores a review together with the reviewer's latest answer to the problem, if any.
func (s *reviewService) SubmitReview(ctx context.Context, userID string, problemID models.ProblemID, content string) (*models.Review, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting review: user_id=%s, problem_id=%s", userID, problemID)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.NewValidationError("userId", "cannot be empty")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.NewValidationError("review", "cannot be empty")
	}
	if _, err := s.problemRepo.Get(ctx, problemID); err != nil {
		return nil, storageError("problem lookup", "problem", problemID, err)
	}
	if _, err := s.userRepo.Ensure(ctx, userID); err != nil {
		log.Error("failed to ensure user: %v", err)
		return nil, errors.NewStorageError("user upsert", err)
	}

	review := models.Review{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProblemID: problemID,
		Content:   content,
		Timestamp: s.now().UTC(),
	}

	subs, err := s.submissionRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list user submissions: %v", err)
		return nil, errors.NewStorageError("submission listing", err)
	}
	if last, ok := stats.LatestAnswers(subs)[problemID]; ok {
		review.Answer = last.Answer
		review.IsCorrect = last.IsCorrect
	}

	saved, err := s.reviewRepo.Append(ctx, review)
	if err != nil {
		log.Error("failed to append review: %v", err)
		return nil, errors.NewStorageError("review append", err)
	}
	return &saved, nil
}

func (s *reviewService) ListReviews(ctx context.Context, problemID models.ProblemID) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	if _, err := s.problemRepo.Get(ctx, problemID); err != nil {
		return nil, storageError("problem lookup", "problem", problemID, err)
	}
	reviews, err := s.reviewRepo.ListByProblem(ctx, problemID)
	if err != nil {
		log.Error("failed to list reviews: %v", err)
		return nil, errors.NewStorageError("review listing", err)
	}
	return reviews, nil
}
