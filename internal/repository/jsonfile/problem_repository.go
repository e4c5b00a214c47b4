package jsonfile

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vytor/jeeprep/internal/errors"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
)

type problemRepository struct {
	files *files
}

// load reads the whole catalogue. A missing problems file is an error.
func (r *problemRepository) load() ([]models.Problem, error) {
	data, err := os.ReadFile(r.files.path(ProblemsFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ProblemsFile, err)
	}
	problems, err := models.DecodeProblems(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", ProblemsFile, err)
	}
	return problems, nil
}

func (r *problemRepository) List(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_file")

	all, err := r.load()
	if err != nil {
		log.Error("failed to read problems: %v", err)
		return nil, err
	}

	problems := make([]models.Problem, 0, len(all))
	for _, p := range all {
		if filter.Matches(p) {
			problems = append(problems, p)
		}
	}
	models.SortProblems(problems)
	log.Debug("found %d problems", len(problems))
	return problems, nil
}

func (r *problemRepository) Get(ctx context.Context, id models.ProblemID) (*models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_file")

	all, err := r.load()
	if err != nil {
		log.Error("failed to read problems: %v", err)
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	log.Debug("problem not found: id=%s", id)
	return nil, errors.ErrNotFound
}

func (r *problemRepository) Topics(ctx context.Context) ([]models.Topic, error) {
	all, err := r.load()
	if err != nil {
		logger.FromContext(ctx).WithPrefix("problem_file").Error("failed to read problems: %v", err)
		return nil, err
	}
	return models.BuildTopics(all), nil
}

func (r *problemRepository) Import(ctx context.Context, problems []models.Problem) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_file")

	r.files.mu.Lock()
	defer r.files.mu.Unlock()

	existing, err := r.load()
	if stderrors.Is(err, fs.ErrNotExist) {
		existing = nil
	} else if err != nil {
		log.Error("failed to read problems: %v", err)
		return 0, err
	}
	seen := make(map[models.ProblemID]bool, len(existing))
	for _, p := range existing {
		seen[p.ID] = true
	}

	added := 0
	for _, p := range problems {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		existing = append(existing, p)
		added++
	}
	if added == 0 {
		return 0, nil
	}

	models.SortProblems(existing)
	if err := r.files.writeJSON(ProblemsFile, existing); err != nil {
		log.Error("failed to write problems: %v", err)
		return 0, err
	}
	log.Info("imported %d of %d problems", added, len(problems))
	return added, nil
}
