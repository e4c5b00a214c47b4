package services

import (
	"context"
	"strconv"
	"time"

	"github.com/vytor/jeeprep/internal/cache"
	"github.com/vytor/jeeprep/internal/errors"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/repository"
	"github.com/vytor/jeeprep/internal/stats"
	"golang.org/x/sync/singleflight"
)

// StatsService derives user, problem and leaderboard statistics on read
type StatsService interface {
	UserStats(ctx context.Context, userID string) (*models.UserStatsResponse, error)
	ProblemStats(ctx context.Context, problemID models.ProblemID) (*models.ProblemStats, error)
	UnifiedStats(ctx context.Context, userID string) (*models.UnifiedStats, error)
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

type statsService struct {
	problemRepo    repository.ProblemRepository
	submissionRepo repository.SubmissionRepository
	userRepo       repository.UserRepository
	reviewRepo     repository.ReviewRepository
	leaderboard    cache.LeaderboardCache
	observer       Observer
	loc            *time.Location
	now            Clock
	group          singleflight.Group
}

// StatsOption customises a StatsService.
type StatsOption func(*statsService)

// WithLocation sets the time zone whose calendar days define streaks.
func WithLocation(loc *time.Location) StatsOption {
	return func(s *statsService) { s.loc = loc }
}

func WithStatsClock(now Clock) StatsOption {
	return func(s *statsService) { s.now = now }
}

func WithStatsObserver(o Observer) StatsOption {
	return func(s *statsService) { s.observer = o }
}

// NewStatsService creates a new StatsService
func NewStatsService(store *repository.Store, leaderboard cache.LeaderboardCache, opts ...StatsOption) StatsService {
	if leaderboard == nil {
		leaderboard = cache.Nop{}
	}
	s := &statsService{
		problemRepo:    store.Problems,
		submissionRepo: store.Submissions,
		userRepo:       store.Users,
		reviewRepo:     store.Reviews,
		leaderboard:    leaderboard,
		observer:       nopObserver{},
		loc:            time.UTC,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *statsService) requireUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		if !errors.IsNotFound(err) {
			logger.FromContext(ctx).Error("failed to get user: %v", err)
		}
		return nil, storageError("user lookup", "user", userID, err)
	}
	return user, nil
}

func (s *statsService) allSubmissions(ctx context.Context) ([]models.Submission, error) {
	all, err := s.submissionRepo.ListAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list submissions: %v", err)
		return nil, errors.NewStorageError("submission listing", err)
	}
	return all, nil
}

func (s *statsService) UserStats(ctx context.Context, userID string) (*models.UserStatsResponse, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing user stats: user_id=%s", userID)

	if _, err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	all, err := s.allSubmissions(ctx)
	if err != nil {
		return nil, err
	}

	us := stats.ComputeUser(userID, all, s.now(), s.loc)
	return &models.UserStatsResponse{
		Stats:        us,
		Achievements: stats.Achievements(us),
	}, nil
}

func (s *statsService) ProblemStats(ctx context.Context, problemID models.ProblemID) (*models.ProblemStats, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing problem stats: problem_id=%s", problemID)

	if _, err := s.problemRepo.Get(ctx, problemID); err != nil {
		if !errors.IsNotFound(err) {
			log.Error("failed to get problem: %v", err)
		}
		return nil, storageError("problem lookup", "problem", problemID, err)
	}

	subs, err := s.submissionRepo.ListByProblem(ctx, problemID)
	if err != nil {
		log.Error("failed to list problem submissions: %v", err)
		return nil, errors.NewStorageError("submission listing", err)
	}
	reviews, err := s.reviewRepo.ListByProblem(ctx, problemID)
	if err != nil {
		log.Error("failed to list problem reviews: %v", err)
		return nil, errors.NewStorageError("review listing", err)
	}

	ps := stats.ForProblem(subs, len(reviews))
	return &ps, nil
}

func (s *statsService) UnifiedStats(ctx context.Context, userID string) (*models.UnifiedStats, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing unified stats: user_id=%s", userID)

	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	all, err := s.allSubmissions(ctx)
	if err != nil {
		return nil, err
	}
	problems, err := s.problemRepo.List(ctx, models.ProblemFilter{})
	if err != nil {
		log.Error("failed to list problems: %v", err)
		return nil, errors.NewStorageError("problem listing", err)
	}

	byID := make(map[models.ProblemID]models.Problem, len(problems))
	for _, p := range problems {
		byID[p.ID] = p
	}

	u := stats.Unified(*user, all, byID, s.now(), s.loc)
	return &u, nil
}

// Leaderboard serves the cached board for the current generation, computing
// it at most once per generation across concurrent callers.
func (s *statsService) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting leaderboard: limit=%d", limit)

	board, err := s.fullLeaderboard(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(board) > limit {
		board = board[:limit]
	}
	return board, nil
}

func (s *statsService) fullLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("leaderboard")

	version, err := s.leaderboard.Version(ctx)
	if err != nil {
		log.Warn("cache version unavailable, computing directly: %v", err)
		return s.computeLeaderboard(ctx)
	}
	if board, ok, err := s.leaderboard.Get(ctx, version); err != nil {
		log.Warn("cache read failed: %v", err)
	} else if ok {
		s.observer.ObserveCache(true)
		return board, nil
	}
	s.observer.ObserveCache(false)

	// The shared computation outlives any single caller's cancellation.
	shared := context.WithoutCancel(ctx)
	key := strconv.FormatInt(version, 10)
	result, err, _ := s.group.Do(key, func() (any, error) {
		board, err := s.computeLeaderboard(shared)
		if err != nil {
			return nil, err
		}
		if err := s.leaderboard.Set(shared, version, board); err != nil {
			log.Warn("cache write failed: %v", err)
		}
		return board, nil
	})
	if err != nil {
		return nil, err
	}
	// Callers may slice the result; hand each one its own copy.
	computed := result.([]models.LeaderboardEntry)
	board := make([]models.LeaderboardEntry, len(computed))
	copy(board, computed)
	return board, nil
}

func (s *statsService) computeLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	all, err := s.allSubmissions(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list users: %v", err)
		return nil, errors.NewStorageError("user listing", err)
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return stats.Leaderboard(all, names, s.now(), 0), nil
}
