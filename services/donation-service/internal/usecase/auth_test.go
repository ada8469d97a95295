package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/model"
)

func TestRegister(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	user := deps.register(t, "D", "d@x.com", model.UserTypeDonor)
	assert.False(t, user.ID.IsZero())
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())

	t.Run("duplicate email", func(t *testing.T) {
		_, err := deps.auth.Register(ctx, RegisterParams{
			Name:     "Impostor",
			Email:    "d@x.com",
			Password: "other",
			UserType: model.UserTypeReceiver,
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)

		existing, err := deps.auth.GetUser(ctx, user.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "D", existing.Name)
		assert.Equal(t, model.UserTypeDonor, existing.UserType)
	})

	t.Run("unknown user type", func(t *testing.T) {
		_, err := deps.auth.Register(ctx, RegisterParams{
			Name:     "Admin",
			Email:    "a@x.com",
			Password: "password123",
			UserType: "admin",
		})
		assert.ErrorIs(t, err, ErrInvalidUserType)
	})
}

func TestLogin(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()
	user := deps.register(t, "R", "r@x.com", model.UserTypeReceiver)

	result, err := deps.auth.Login(ctx, LoginParams{Email: "r@x.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)

	claims, err := deps.jwtAuth.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)

	_, wrongPasswordErr := deps.auth.Login(ctx, LoginParams{Email: "r@x.com", Password: "nope"})
	_, unknownEmailErr := deps.auth.Login(ctx, LoginParams{Email: "ghost@x.com", Password: "password123"})

	assert.ErrorIs(t, wrongPasswordErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmailErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPasswordErr.Error(), unknownEmailErr.Error())
}

func TestGetUser_NotFound(t *testing.T) {
	deps := newTestDeps(t)

	for _, id := range []string{"", "garbage", "665f1c2e9b1e8a0012345678"} {
		_, err := deps.auth.GetUser(context.Background(), id)
		assert.ErrorIs(t, err, ErrUserNotFound, "id %q", id)
	}
}
