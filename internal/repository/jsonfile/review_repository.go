package jsonfile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
)

type reviewRepository struct {
	files *files
}

func (r *reviewRepository) Append(ctx context.Context, rv models.Review) (models.Review, error) {
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	if rv.Timestamp.IsZero() {
		rv.Timestamp = time.Now()
	}
	rv.Timestamp = rv.Timestamp.UTC()

	r.files.mu.Lock()
	defer r.files.mu.Unlock()

	if err := r.files.appendLine(ReviewsFile, rv); err != nil {
		logger.FromContext(ctx).WithPrefix("review_file").Error("failed to append review: %v", err)
		return models.Review{}, err
	}
	return rv, nil
}

func (r *reviewRepository) ListByProblem(ctx context.Context, problemID models.ProblemID) ([]models.Review, error) {
	all, err := readLines[models.Review](r.files, ReviewsFile)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("review_file").Error("failed to read reviews: %v", err)
		return nil, err
	}
	out := []models.Review{}
	for _, rv := range all {
		if rv.ProblemID == problemID {
			out = append(out, rv)
		}
	}
	return out, nil
}
