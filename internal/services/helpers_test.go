package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vytor/jeeprep/internal/repository"
	"github.com/vytor/jeeprep/internal/repository/sqlite"
	"github.com/vytor/jeeprep/internal/testutil"
	"github.com/vytor/jeeprep/internal/testutil/mocks"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// newSQLiteStore returns a store over an in-memory database seeded with the sample problems.
func newSQLiteStore(t *testing.T) *repository.Store {
	t.Helper()
	db := testutil.NewTestDB(t)
	t.Cleanup(func() { testutil.MustClose(t, db) })

	store := &repository.Store{
		Problems:    sqlite.NewProblemRepository(db),
		Submissions: sqlite.NewSubmissionRepository(db),
		Users:       sqlite.NewUserRepository(db),
		Reviews:     sqlite.NewReviewRepository(db),
		Close:       db.Close,
	}
	_, err := store.Problems.Import(context.Background(), testutil.SampleProblems())
	require.NoError(t, err)
	return store
}

type mockStore struct {
	problems    *mocks.MockProblemRepository
	submissions *mocks.MockSubmissionRepository
	users       *mocks.MockUserRepository
	reviews     *mocks.MockReviewRepository
}

func newMockStore() (*mockStore, *repository.Store) {
	m := &mockStore{
		problems:    new(mocks.MockProblemRepository),
		submissions: new(mocks.MockSubmissionRepository),
		users:       new(mocks.MockUserRepository),
		reviews:     new(mocks.MockReviewRepository),
	}
	return m, &repository.Store{
		Problems:    m.problems,
		Submissions: m.submissions,
		Users:       m.users,
		Reviews:     m.reviews,
	}
}

func (m *mockStore) assertExpectations(t *testing.T) {
	m.problems.AssertExpectations(t)
	m.submissions.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.reviews.AssertExpectations(t)
}
