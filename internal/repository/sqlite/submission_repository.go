package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/repository"
)

type submissionRepository struct {
	db *sql.DB
}

// NewSubmissionRepository creates a new SubmissionRepository implementation
func NewSubmissionRepository(db *sql.DB) repository.SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Append(ctx context.Context, s models.Submission) (models.Submission, error) {
	log := logger.FromContext(ctx).WithPrefix("submission_repo")

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now()
	}
	s.Timestamp = s.Timestamp.UTC()
	log.Debug("appending submission: id=%s, user=%s, problem=%s", s.ID, s.UserID, s.ProblemID)

	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		if err := ensureUser(ctx, tx, s.UserID, s.Timestamp); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
INSERT INTO submissions (id, user_id, problem_id, answer, is_correct, submitted_at)
VALUES (?, ?, ?, ?, ?, ?)
`, s.ID, s.UserID, string(s.ProblemID), s.Answer, s.IsCorrect, formatTime(s.Timestamp))
		return err
	})
	if err != nil {
		log.Error("failed to append submission: %v", err)
		return models.Submission{}, err
	}
	return s, nil
}

func (r *submissionRepository) ListAll(ctx context.Context) ([]models.Submission, error) {
	return r.list(ctx, nil)
}

func (r *submissionRepository) ListByUser(ctx context.Context, userID string) ([]models.Submission, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

func (r *submissionRepository) ListByProblem(ctx context.Context, problemID models.ProblemID) ([]models.Submission, error) {
	return r.list(ctx, squirrel.Eq{"problem_id": string(problemID)})
}

// list returns submissions in append order.
func (r *submissionRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]models.Submission, error) {
	log := logger.FromContext(ctx).WithPrefix("submission_repo")

	query := sqlBuilder.Select("id", "user_id", "problem_id", "answer", "is_correct", "submitted_at").
		From("submissions").
		OrderBy("seq ASC")
	if where != nil {
		query = query.Where(where)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	log.Debug("listing submissions: args=%v", args)

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list submissions: %v", err)
		return nil, err
	}
	defer rows.Close()

	submissions := []models.Submission{}
	for rows.Next() {
		var (
			s         models.Submission
			problemID string
			at        string
		)
		if err := rows.Scan(&s.ID, &s.UserID, &problemID, &s.Answer, &s.IsCorrect, &at); err != nil {
			log.Error("failed to scan submission row: %v", err)
			return nil, err
		}
		s.ProblemID = models.ProblemID(problemID)
		if s.Timestamp, err = parseTime(at); err != nil {
			log.Error("bad submission timestamp %q: %v", at, err)
			return nil, err
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("found %d submissions", len(submissions))
	return submissions, nil
}
