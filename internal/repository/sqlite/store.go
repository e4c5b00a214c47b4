package sqlite

import (
	"github.com/vytor/jeeprep/internal/db"
	"github.com/vytor/jeeprep/internal/repository"
)

// NewStore wires every sqlite repository onto one opened database.
func NewStore(database *db.DB) *repository.Store {
	return &repository.Store{
		Problems:    NewProblemRepository(database.DB),
		Submissions: NewSubmissionRepository(database.DB),
		Users:       NewUserRepository(database.DB),
		Reviews:     NewReviewRepository(database.DB),
		Health:      database,
		Close:       database.Close,
	}
}
