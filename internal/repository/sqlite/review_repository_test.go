package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/repository/sqlite"
	"github.com/vytor/jeeprep/internal/testutil"
)

func TestReviewRepository_AppendAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	ctx := context.Background()

	_, err := sqlite.NewProblemRepository(db).Import(ctx, testutil.SampleProblems())
	require.NoError(t, err)

	repo := sqlite.NewReviewRepository(db)
	saved, err := repo.Append(ctx, models.Review{
		UserID:    "user1",
		ProblemID: "2",
		Content:   "Remember Le Chatelier",
		Answer:    "C",
		IsCorrect: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.Timestamp.IsZero())

	reviews, err := repo.ListByProblem(ctx, "2")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Remember Le Chatelier", reviews[0].Content)
	assert.True(t, reviews[0].IsCorrect)

	empty, err := repo.ListByProblem(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
