package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/jeeprep/internal/errors"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/repository"
)

var problemColumns = []string{
	"id", "title", "description", "topic", "difficulty", "options", "correct_answer", "hints",
}

type problemRepository struct {
	db *sql.DB
}

// NewProblemRepository creates a new ProblemRepository implementation
func NewProblemRepository(db *sql.DB) repository.ProblemRepository {
	return &problemRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProblem(row rowScanner) (models.Problem, error) {
	var (
		p                    models.Problem
		id, difficulty       string
		optionsRaw, hintsRaw string
	)
	if err := row.Scan(&id, &p.Title, &p.Description, &p.Topic, &difficulty, &optionsRaw, &p.CorrectAnswer, &hintsRaw); err != nil {
		return p, err
	}
	p.ID = models.ProblemID(id)
	p.Difficulty = models.Difficulty(difficulty)
	if err := json.Unmarshal([]byte(optionsRaw), &p.Options); err != nil {
		return p, err
	}
	if err := json.Unmarshal([]byte(hintsRaw), &p.Hints); err != nil {
		return p, err
	}
	if len(p.Hints) == 0 {
		p.Hints = nil
	}
	return p, nil
}

func (r *problemRepository) List(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("listing problems: topic=%s, difficulty=%s", filter.TopicSlug, filter.Difficulty)

	query := sqlBuilder.Select(problemColumns...).From("problems")
	if filter.TopicSlug != "" {
		query = query.Where(squirrel.Eq{"topic_slug": filter.TopicSlug})
	}
	if filter.Difficulty != "" {
		query = query.Where(squirrel.Eq{"difficulty": string(filter.Difficulty)})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build problem query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list problems: %v", err)
		return nil, err
	}
	defer rows.Close()

	problems := []models.Problem{}
	for rows.Next() {
		p, err := scanProblem(rows)
		if err != nil {
			log.Error("failed to scan problem row: %v", err)
			return nil, err
		}
		problems = append(problems, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	models.SortProblems(problems)
	log.Debug("found %d problems", len(problems))
	return problems, nil
}

func (r *problemRepository) Get(ctx context.Context, id models.ProblemID) (*models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("getting problem: id=%s", id)

	sqlStr, args, err := sqlBuilder.Select(problemColumns...).From("problems").
		Where(squirrel.Eq{"id": string(id)}).ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanProblem(r.db.QueryRowContext(ctx, sqlStr, args...))
	if stderrors.Is(err, sql.ErrNoRows) {
		log.Debug("problem not found: id=%s", id)
		return nil, errors.ErrNotFound
	}
	if err != nil {
		log.Error("failed to get problem: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *problemRepository) Topics(ctx context.Context) ([]models.Topic, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("listing topics")

	rows, err := r.db.QueryContext(ctx, `
SELECT topic, topic_slug, COUNT(*)
FROM problems
WHERE topic <> ''
GROUP BY topic, topic_slug
ORDER BY topic ASC
`)
	if err != nil {
		log.Error("failed to list topics: %v", err)
		return nil, err
	}
	defer rows.Close()

	topics := []models.Topic{}
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.Name, &t.Slug, &t.ProblemCount); err != nil {
			log.Error("failed to scan topic row: %v", err)
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func (r *problemRepository) Import(ctx context.Context, problems []models.Problem) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("importing %d problems", len(problems))

	added := 0
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO problems (id, title, description, topic, topic_slug, difficulty, options, correct_answer, hints)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO NOTHING
`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, p := range problems {
			options, err := json.Marshal(p.Options)
			if err != nil {
				return err
			}
			hints := []byte("[]")
			if len(p.Hints) > 0 {
				if hints, err = json.Marshal(p.Hints); err != nil {
					return err
				}
			}
			res, err := stmt.ExecContext(ctx,
				string(p.ID), p.Title, p.Description, p.Topic, models.TopicSlug(p.Topic),
				string(p.Difficulty), string(options), p.CorrectAnswer, string(hints))
			if err != nil {
				log.Error("failed to insert problem %s: %v", p.ID, err)
				return err
			}
			if n, _ := res.RowsAffected(); n > 0 {
				added++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info("imported %d of %d problems", added, len(problems))
	return added, nil
}
