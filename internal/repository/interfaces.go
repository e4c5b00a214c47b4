package repository

import (
	"context"

	"github.com/vytor/jeeprep/internal/models"
)

// Every implementation returns errors.ErrNotFound (internal/errors) for missing
// records and wraps any other failure unchanged; services decide the HTTP mapping.

// ProblemRepository handles problem data access. Problems are immutable once stored.
type ProblemRepository interface {
	List(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error)
	Get(ctx context.Context, id models.ProblemID) (*models.Problem, error)
	Topics(ctx context.Context) ([]models.Topic, error)
	// Import stores problems whose ids are not present yet and returns how many were added.
	Import(ctx context.Context, problems []models.Problem) (int, error)
}

// SubmissionRepository is the append-only submission log.
type SubmissionRepository interface {
	Append(ctx context.Context, submission models.Submission) (models.Submission, error)
	ListAll(ctx context.Context) ([]models.Submission, error)
	ListByUser(ctx context.Context, userID string) ([]models.Submission, error)
	ListByProblem(ctx context.Context, problemID models.ProblemID) ([]models.Submission, error)
}

// UserRepository handles user profile data access
type UserRepository interface {
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// Ensure creates the user if it does not exist and returns the stored record.
	Ensure(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user models.User) (*models.User, error)
}

// ReviewRepository handles problem review data access
type ReviewRepository interface {
	Append(ctx context.Context, review models.Review) (models.Review, error)
	ListByProblem(ctx context.Context, problemID models.ProblemID) ([]models.Review, error)
}

// Pinger is implemented by stores that can report liveness for readiness probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store bundles the repositories of one storage driver.
type Store struct {
	Problems    ProblemRepository
	Submissions SubmissionRepository
	Users       UserRepository
	Reviews     ReviewRepository
	Health      Pinger
	Close       func() error
}
