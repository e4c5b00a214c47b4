package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/vytor/jeeprep/internal/errors"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/repository"
)

type userRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewUserRepository creates a new UserRepository implementation
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db, now: time.Now}
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		u  models.User
		at string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &at); err != nil {
		return nil, err
	}
	joined, err := parseTime(at)
	if err != nil {
		return nil, err
	}
	u.JoinedDate = joined
	return &u, nil
}

func (r *userRepository) Get(ctx context.Context, id string) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("getting user: id=%s", id)

	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT id, name, email, joined_at FROM users WHERE id = ?`, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		log.Debug("user not found: id=%s", id)
		return nil, errors.ErrNotFound
	}
	if err != nil {
		log.Error("failed to get user: %v", err)
		return nil, err
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("listing users")

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email, joined_at FROM users ORDER BY id ASC`)
	if err != nil {
		log.Error("failed to list users: %v", err)
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			log.Error("failed to scan user row: %v", err)
			return nil, err
		}
		users = append(users, *u)
	}
	log.Debug("found %d users", len(users))
	return users, rows.Err()
}

func (r *userRepository) Ensure(ctx context.Context, id string) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("ensuring user: id=%s", id)

	if err := ensureUser(ctx, r.db, id, r.now()); err != nil {
		log.Error("failed to ensure user: %v", err)
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *userRepository) Update(ctx context.Context, user models.User) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("updating user: id=%s", user.ID)

	res, err := r.db.ExecContext(ctx, `UPDATE users SET name = ?, email = ? WHERE id = ?`, user.Name, user.Email, user.ID)
	if err != nil {
		log.Error("failed to update user: %v", err)
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, errors.ErrNotFound
	}
	return r.Get(ctx, user.ID)
}
