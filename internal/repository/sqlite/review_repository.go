package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new ReviewRepository implementation
func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Append(ctx context.Context, rv models.Review) (models.Review, error) {
	log := logger.FromContext(ctx).WithPrefix("review_repo")

	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	if rv.Timestamp.IsZero() {
		rv.Timestamp = time.Now()
	}
	rv.Timestamp = rv.Timestamp.UTC()
	log.Debug("appending review: id=%s, user=%s, problem=%s", rv.ID, rv.UserID, rv.ProblemID)

	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		if err := ensureUser(ctx, tx, rv.UserID, rv.Timestamp); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
INSERT INTO reviews (id, user_id, problem_id, content, answer, is_correct, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, rv.ID, rv.UserID, string(rv.ProblemID), rv.Content, rv.Answer, rv.IsCorrect, formatTime(rv.Timestamp))
		return err
	})
	if err != nil {
		log.Error("failed to append review: %v", err)
		return models.Review{}, err
	}
	return rv, nil
}

func (r *reviewRepository) ListByProblem(ctx context.Context, problemID models.ProblemID) ([]models.Review, error) {
	log := logger.FromContext(ctx).WithPrefix("review_repo")
	log.Debug("listing reviews: problem=%s", problemID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, problem_id, content, answer, is_correct, created_at
FROM reviews
WHERE problem_id = ?
ORDER BY seq ASC
`, string(problemID))
	if err != nil {
		log.Error("failed to list reviews: %v", err)
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var (
			rv  models.Review
			pid string
			at  string
		)
		if err := rows.Scan(&rv.ID, &rv.UserID, &pid, &rv.Content, &rv.Answer, &rv.IsCorrect, &at); err != nil {
			log.Error("failed to scan review row: %v", err)
			return nil, err
		}
		rv.ProblemID = models.ProblemID(pid)
		if rv.Timestamp, err = parseTime(at); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
