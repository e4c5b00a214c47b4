package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/jeeprep/internal/errors"
	"github.com/vytor/jeeprep/internal/services"
)

func TestReviewService(t *testing.T) {
	store := newSQLiteStore(t)
	subs := services.NewSubmissionService(store, nil)
	svc := services.NewReviewService(store)
	ctx := context.Background()

	_, err := subs.Submit(ctx, "user1", "2", "c")
	require.NoError(t, err)

	review, err := svc.SubmitReview(ctx, "user1", "2", "  Shifts right on heating ")
	require.NoError(t, err)
	assert.Equal(t, "Shifts right on heating", review.Content)
	assert.Equal(t, "c", review.Answer)
	assert.True(t, review.IsCorrect)

	noAnswer, err := svc.SubmitReview(ctx, "user2", "2", "no idea")
	require.NoError(t, err)
	assert.Empty(t, noAnswer.Answer)

	reviews, err := svc.ListReviews(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	_, err = svc.SubmitReview(ctx, "user1", "2", " ")
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	before, err := store.Users.List(ctx)
	require.NoError(t, err)
	_, err = svc.SubmitReview(ctx, "  ", "2", "nice")
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
	after, err := store.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))

	_, err = svc.SubmitReview(ctx, "user1", "999", "x")
	assert.True(t, errors.IsNotFound(err))

	_, err = svc.ListReviews(ctx, "999")
	assert.True(t, errors.IsNotFound(err))
}
