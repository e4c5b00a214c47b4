package jsonfile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
)

type submissionRepository struct {
	files *files
}

func (r *submissionRepository) Append(ctx context.Context, s models.Submission) (models.Submission, error) {
	log := logger.FromContext(ctx).WithPrefix("submission_file")

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now()
	}
	s.Timestamp = s.Timestamp.UTC()

	r.files.mu.Lock()
	defer r.files.mu.Unlock()

	if err := r.files.appendLine(SubmissionsFile, s); err != nil {
		log.Error("failed to append submission: %v", err)
		return models.Submission{}, err
	}
	log.Debug("appended submission: id=%s", s.ID)
	return s, nil
}

func (r *submissionRepository) ListAll(ctx context.Context) ([]models.Submission, error) {
	return r.list(ctx, func(models.Submission) bool { return true })
}

func (r *submissionRepository) ListByUser(ctx context.Context, userID string) ([]models.Submission, error) {
	return r.list(ctx, func(s models.Submission) bool { return s.UserID == userID })
}

func (r *submissionRepository) ListByProblem(ctx context.Context, problemID models.ProblemID) ([]models.Submission, error) {
	return r.list(ctx, func(s models.Submission) bool { return s.ProblemID == problemID })
}

func (r *submissionRepository) list(ctx context.Context, keep func(models.Submission) bool) ([]models.Submission, error) {
	log := logger.FromContext(ctx).WithPrefix("submission_file")

	all, err := readLines[models.Submission](r.files, SubmissionsFile)
	if err != nil {
		log.Error("failed to read submissions: %v", err)
		return nil, err
	}

	out := []models.Submission{}
	for _, s := range all {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out, nil
}
