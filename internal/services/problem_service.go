package services

import (
	"context"
	"fmt"

	"github.com/vytor/jeeprep/internal/errors"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/repository"
)

// ProblemService handles problem catalogue reads and seeding
type ProblemService interface {
	ListProblems(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error)
	GetProblem(ctx context.Context, id models.ProblemID) (*models.Problem, error)
	ListTopics(ctx context.Context) ([]models.Topic, error)
	ImportProblems(ctx context.Context, problems []models.Problem) (int, error)
}

type problemService struct {
	problemRepo repository.ProblemRepository
}

// NewProblemService creates a new ProblemService
func NewProblemService(problemRepo repository.ProblemRepository) ProblemService {
	return &problemService{problemRepo: problemRepo}
}

func (s *problemService) ListProblems(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing problems: topic=%s, difficulty=%s", filter.TopicSlug, filter.Difficulty)

	problems, err := s.problemRepo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list problems: %v", err)
		return nil, errors.NewStorageError("problem listing", err)
	}
	return problems, nil
}

func (s *problemService) GetProblem(ctx context.Context, id models.ProblemID) (*models.Problem, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting problem: id=%s", id)

	if id == "" {
		return nil, errors.NewValidationError("problemId", "cannot be empty")
	}

	problem, err := s.problemRepo.Get(ctx, id)
	if err != nil {
		if !errors.IsNotFound(err) {
			log.Error("failed to get problem: %v", err)
		}
		return nil, storageError("problem lookup", "problem", id, err)
	}
	return problem, nil
}

func (s *problemService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	log := logger.FromContext(ctx)

	topics, err := s.problemRepo.Topics(ctx)
	if err != nil {
		log.Error("failed to list topics: %v", err)
		return nil, errors.NewStorageError("topic listing", err)
	}
	return topics, nil
}

func (s *problemService) ImportProblems(ctx context.Context, problems []models.Problem) (int, error) {
	log := logger.FromContext(ctx)
	log.Info("importing %d problems", len(problems))

	seen := make(map[models.ProblemID]bool, len(problems))
	for i, p := range problems {
		if err := p.Validate(); err != nil {
			return 0, errors.NewValidationError(fmt.Sprintf("problems[%d]", i), err.Error())
		}
		if seen[p.ID] {
			return 0, errors.NewValidationError(fmt.Sprintf("problems[%d]", i), fmt.Sprintf("duplicate id %s", p.ID))
		}
		seen[p.ID] = true
	}

	added, err := s.problemRepo.Import(ctx, problems)
	if err != nil {
		log.Error("failed to import problems: %v", err)
		return 0, errors.NewStorageError("problem import", err)
	}
	return added, nil
}
