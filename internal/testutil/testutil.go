package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/vytor/jeeprep/internal/db"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// A single connection is kept open so every query sees the same in-memory database.
func NewTestDB(t *testing.T) *sql.DB {
	sqlDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(context.Background(), sqlDB, logger.Discard()))
	return sqlDB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// SampleProblems returns three valid problems, one per difficulty.
func SampleProblems() []models.Problem {
	return []models.Problem{
		{
			ID:          "1",
			Title:       "Projectile Motion",
			Description: "Which quantity stays constant during flight?",
			Topic:       "Physics",
			Difficulty:  models.DifficultyEasy,
			Options: []models.Option{
				{ID: "A", Text: "Vertical velocity"},
				{ID: "B", Text: "Horizontal velocity"},
			},
			CorrectAnswer: "B",
			Hints:         []string{"Ignore air resistance"},
		},
		{
			ID:         "2",
			Title:      "Chemical Equilibrium",
			Topic:      "Chemistry",
			Difficulty: models.DifficultyMedium,
			Options: []models.Option{
				{ID: "A", Text: "Zero"},
				{ID: "C", Text: "Equal"},
			},
			CorrectAnswer: "C",
		},
		{
			ID:         "10",
			Title:      "Definite Integrals",
			Topic:      "Mathematics",
			Difficulty: models.DifficultyHard,
			Options: []models.Option{
				{ID: "A", Text: "0"},
				{ID: "D", Text: "pi/4"},
			},
			CorrectAnswer: "D",
		},
	}
}
