package service

import (
	"context"
	"testing"

	"github.com/ibimina/chatter-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	authed, err := svcs.Auth.Register(ctx, &models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "s3cret-enough",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, authed.AccessToken)
	assert.Equal(t, "bearer", authed.TokenType)
	assert.Equal(t, "alice@example.com", authed.Email)
	assert.NotEmpty(t, authed.Username)

	user := store.Users[authed.ID]
	require.NotNil(t, user)
	assert.NotEqual(t, "s3cret-enough", user.PasswordHash)
	assert.True(t, user.IsActive)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	req := &models.RegisterRequest{Email: "alice@example.com", Password: "s3cret-enough"}
	_, err := svcs.Auth.Register(ctx, req)
	require.NoError(t, err)

	_, err = svcs.Auth.Register(ctx, req)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegisterValidation(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.Auth.Register(ctx, &models.RegisterRequest{Email: "not-an-email", Password: "s3cret-enough"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svcs.Auth.Register(ctx, &models.RegisterRequest{Email: "alice@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLogin(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	registered, err := svcs.Auth.Register(ctx, &models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "s3cret-enough",
	})
	require.NoError(t, err)

	authed, err := svcs.Auth.Login(ctx, &models.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret-enough",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, authed.ID)
	assert.NotEmpty(t, authed.AccessToken)

	// Wrong password and unknown email are indistinguishable.
	_, err = svcs.Auth.Login(ctx, &models.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPermissionDenied)
	_, err = svcs.Auth.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "s3cret-enough"})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
