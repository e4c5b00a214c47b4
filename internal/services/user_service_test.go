package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/jeeprep/internal/errors"
	"github.com/vytor/jeeprep/internal/services"
)

func TestUserService(t *testing.T) {
	store := newSQLiteStore(t)
	svc := services.NewUserService(store.Users)
	ctx := context.Background()

	_, err := svc.GetUser(ctx, "user1")
	assert.True(t, errors.IsNotFound(err))

	_, err = svc.EnsureUser(ctx, "  ")
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	created, err := svc.EnsureUser(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, "user1", created.ID)

	updated, err := svc.UpdateUser(ctx, "user1", " Asha ", "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Asha", updated.Name)

	_, err = svc.UpdateUser(ctx, "ghost", "x", "")
	assert.True(t, errors.IsNotFound(err))
}
