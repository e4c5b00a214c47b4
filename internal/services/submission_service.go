package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/jeeprep/internal/cache"
	"github.com/vytor/jeeprep/internal/errors"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/repository"
	"github.com/vytor/jeeprep/internal/stats"
)

// SubmissionService records answers and reads the submission log
type SubmissionService interface {
	Submit(ctx context.Context, userID string, problemID models.ProblemID, answer string) (*models.Submission, error)
	ListSubmissions(ctx context.Context) ([]models.Submission, error)
	ListProblemSubmissions(ctx context.Context, problemID models.ProblemID) ([]models.Submission, error)
	UserAnswers(ctx context.Context, userID string) (map[models.ProblemID]models.AnswerRecord, error)
	// UserAnswer returns nil when the user never answered the problem.
	UserAnswer(ctx context.Context, userID string, problemID models.ProblemID) (*models.AnswerRecord, error)
}

type submissionService struct {
	problemRepo    repository.ProblemRepository
	submissionRepo repository.SubmissionRepository
	userRepo       repository.UserRepository
	leaderboard    cache.LeaderboardCache
	observer       Observer
	now            Clock
}

// SubmissionOption customises a SubmissionService.
type SubmissionOption func(*submissionService)

func WithSubmissionClock(now Clock) SubmissionOption {
	return func(s *submissionService) { s.now = now }
}

func WithSubmissionObserver(o Observer) SubmissionOption {
	return func(s *submissionService) { s.observer = o }
}

// NewSubmissionService creates a new SubmissionService. A nil cache disables
// leaderboard invalidation.
func NewSubmissionService(store *repository.Store, leaderboard cache.LeaderboardCache, opts ...SubmissionOption) SubmissionService {
	if leaderboard == nil {
		leaderboard = cache.Nop{}
	}
	s := &submissionService{
		problemRepo:    store.Problems,
		submissionRepo: store.Submissions,
		userRepo:       store.Users,
		leaderboard:    leaderboard,
		observer:       nopObserver{},
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *submissionService) Submit(ctx context.Context, userID string, problemID models.ProblemID, answer string) (*models.Submission, error) {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"user_id":    userID,
		"problem_id": problemID,
	})
	log.Debug("submitting answer")

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.NewValidationError("userId", "cannot be empty")
	}
	if problemID == "" {
		return nil, errors.NewValidationError("problemId", "cannot be empty")
	}
	answer = models.NormalizeAnswer(answer)
	if answer == "" {
		return nil, errors.NewValidationError("answer", "cannot be empty")
	}

	problem, err := s.problemRepo.Get(ctx, problemID)
	if err != nil {
		if !errors.IsNotFound(err) {
			log.Error("failed to load problem: %v", err)
		}
		return nil, storageError("problem lookup", "problem", problemID, err)
	}

	if _, err := s.userRepo.Ensure(ctx, userID); err != nil {
		log.Error("failed to ensure user: %v", err)
		return nil, errors.NewStorageError("user upsert", err)
	}

	submission, err := s.submissionRepo.Append(ctx, models.Submission{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProblemID: problem.ID,
		Answer:    answer,
		IsCorrect: problem.Check(answer),
		Timestamp: s.now().UTC(),
	})
	if err != nil {
		log.Error("failed to append submission: %v", err)
		return nil, errors.NewStorageError("submission append", err)
	}

	s.observer.ObserveSubmission(submission.IsCorrect)
	if err := s.leaderboard.Invalidate(ctx); err != nil {
		log.Warn("failed to invalidate leaderboard cache: %v", err)
	}

	log.Info("submission recorded: id=%s, correct=%t", submission.ID, submission.IsCorrect)
	return &submission, nil
}

func (s *submissionService) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing submissions")

	subs, err := s.submissionRepo.ListAll(ctx)
	if err != nil {
		log.Error("failed to list submissions: %v", err)
		return nil, errors.NewStorageError("submission listing", err)
	}
	return subs, nil
}

func (s *submissionService) ListProblemSubmissions(ctx context.Context, problemID models.ProblemID) ([]models.Submission, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing submissions: problem_id=%s", problemID)

	if _, err := s.problemRepo.Get(ctx, problemID); err != nil {
		return nil, storageError("problem lookup", "problem", problemID, err)
	}

	subs, err := s.submissionRepo.ListByProblem(ctx, problemID)
	if err != nil {
		log.Error("failed to list problem submissions: %v", err)
		return nil, errors.NewStorageError("submission listing", err)
	}
	return subs, nil
}

func (s *submissionService) UserAnswers(ctx context.Context, userID string) (map[models.ProblemID]models.AnswerRecord, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing answers: user_id=%s", userID)

	subs, err := s.submissionRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list user submissions: %v", err)
		return nil, errors.NewStorageError("submission listing", err)
	}
	return stats.LatestAnswers(subs), nil
}

func (s *submissionService) UserAnswer(ctx context.Context, userID string, problemID models.ProblemID) (*models.AnswerRecord, error) {
	answers, err := s.UserAnswers(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec, ok := answers[problemID]; ok {
		return &rec, nil
	}
	return nil, nil
}
