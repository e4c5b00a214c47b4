package services_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/jeeprep/internal/errors"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/services"
	"github.com/vytor/jeeprep/internal/testutil/mocks"
)

type countingObserver struct {
	mu      sync.Mutex
	correct int
	wrong   int
}

func (o *countingObserver) ObserveSubmission(correct bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if correct {
		o.correct++
	} else {
		o.wrong++
	}
}

func (o *countingObserver) ObserveCache(bool) {}

var problemOne = &models.Problem{ID: "1", Title: "Projectile Motion", Difficulty: models.DifficultyEasy, CorrectAnswer: "B"}

func TestSubmit_CaseInsensitiveAndTrimmed(t *testing.T) {
	m, store := newMockStore()
	lb := new(mocks.MockLeaderboardCache)
	obs := &countingObserver{}
	ctx := context.Background()

	m.problems.On("Get", ctx, models.ProblemID("1")).Return(problemOne, nil)
	m.users.On("Ensure", ctx, "user1").Return(&models.User{ID: "user1"}, nil)
	m.submissions.On("Append", ctx, mock.MatchedBy(func(s models.Submission) bool {
		return s.UserID == "user1" && s.ProblemID == "1" && s.Answer == "b" && s.IsCorrect &&
			s.ID != "" && s.Timestamp.Equal(fixedNow)
	})).Return(models.Submission{ID: "abc", UserID: "user1", ProblemID: "1", Answer: "b", IsCorrect: true, Timestamp: fixedNow}, nil)
	lb.On("Invalidate", ctx).Return(nil)

	svc := services.NewSubmissionService(store, lb,
		services.WithSubmissionClock(fixedClock),
		services.WithSubmissionObserver(obs))

	sub, err := svc.Submit(ctx, "user1", "1", "  b ")
	require.NoError(t, err)
	assert.True(t, sub.IsCorrect)
	assert.Equal(t, 1, obs.correct)

	m.assertExpectations(t)
	lb.AssertExpectations(t)
}

func TestSubmit_UnknownProblemAppendsNothing(t *testing.T) {
	m, store := newMockStore()
	ctx := context.Background()
	m.problems.On("Get", ctx, models.ProblemID("999")).Return(nil, errors.ErrNotFound)

	svc := services.NewSubmissionService(store, nil)
	_, err := svc.Submit(ctx, "user1", "999", "A")

	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
	m.submissions.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	m.users.AssertNotCalled(t, "Ensure", mock.Anything, mock.Anything)
}

func TestSubmit_Validation(t *testing.T) {
	m, store := newMockStore()
	svc := services.NewSubmissionService(store, nil)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "user1", "1", "   ")
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	_, err = svc.Submit(ctx, "", "1", "A")
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	_, err = svc.Submit(ctx, "user1", "", "A")
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	m.problems.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestSubmit_StorageFailures(t *testing.T) {
	ctx := context.Background()
	boom := stderrors.New("disk full")

	t.Run("problem store", func(t *testing.T) {
		m, store := newMockStore()
		m.problems.On("Get", ctx, models.ProblemID("1")).Return(nil, boom)

		_, err := services.NewSubmissionService(store, nil).Submit(ctx, "user1", "1", "B")
		assert.True(t, errors.HasCode(err, errors.ErrCodeStorage))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("append", func(t *testing.T) {
		m, store := newMockStore()
		lb := new(mocks.MockLeaderboardCache)
		m.problems.On("Get", ctx, models.ProblemID("1")).Return(problemOne, nil)
		m.users.On("Ensure", ctx, "user1").Return(&models.User{ID: "user1"}, nil)
		m.submissions.On("Append", ctx, mock.Anything).Return(models.Submission{}, boom)

		_, err := services.NewSubmissionService(store, lb).Submit(ctx, "user1", "1", "B")
		assert.True(t, errors.HasCode(err, errors.ErrCodeStorage))
		assert.Equal(t, 500, errors.As(err).Status)
		lb.AssertNotCalled(t, "Invalidate", mock.Anything)
	})
}

func TestSubmit_CacheFailureDoesNotFailSubmission(t *testing.T) {
	m, store := newMockStore()
	lb := new(mocks.MockLeaderboardCache)
	ctx := context.Background()

	m.problems.On("Get", ctx, models.ProblemID("1")).Return(problemOne, nil)
	m.users.On("Ensure", ctx, "user1").Return(&models.User{ID: "user1"}, nil)
	m.submissions.On("Append", ctx, mock.Anything).Return(models.Submission{ID: "x", IsCorrect: false}, nil)
	lb.On("Invalidate", ctx).Return(stderrors.New("redis down"))

	sub, err := services.NewSubmissionService(store, lb).Submit(ctx, "user1", "1", "A")
	require.NoError(t, err)
	assert.False(t, sub.IsCorrect)
}

func TestSubmit_ConcurrentSubmissionsAllRecorded(t *testing.T) {
	store := newSQLiteStore(t)
	svc := services.NewSubmissionService(store, nil)
	ctx := context.Background()
	const n = 30

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Submit(ctx, fmt.Sprintf("user%d", i%4), "1", "B")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := svc.ListSubmissions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n)

	ids := make(map[string]bool, n)
	for _, s := range all {
		ids[s.ID] = true
	}
	assert.Len(t, ids, n, "submission ids must be unique")
}

func TestUserAnswers(t *testing.T) {
	store := newSQLiteStore(t)
	svc := services.NewSubmissionService(store, nil)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "user1", "1", "A")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "user1", "1", "B")
	require.NoError(t, err)

	answers, err := svc.UserAnswers(ctx, "user1")
	require.NoError(t, err)
	require.Contains(t, answers, models.ProblemID("1"))
	assert.Equal(t, "B", answers["1"].Answer)
	assert.True(t, answers["1"].IsCorrect)

	rec, err := svc.UserAnswer(ctx, "user1", "2")
	require.NoError(t, err)
	assert.Nil(t, rec)

	_, err = svc.ListProblemSubmissions(ctx, "999")
	assert.True(t, errors.IsNotFound(err))
}
