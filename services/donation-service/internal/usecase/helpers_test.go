package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/model"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/repository"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/repository/inmemory"
	"github.com/vasapolrittideah/food-share-api/shared/auth"
	"github.com/vasapolrittideah/food-share-api/shared/validator"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

type testDeps struct {
	userRepo     repository.UserRepository
	donationRepo repository.DonationRepository
	jwtAuth      *auth.JWTAuthenticator
	auth         AuthUsecase
	donations    DonationUsecase
	stats        StatsUsecase
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	jwtAuth, err := auth.NewJWTAuthenticator(testSecret)
	require.NoError(t, err)

	v, err := validator.New()
	require.NoError(t, err)

	userRepo := inmemory.NewUserRepository()
	donationRepo := inmemory.NewDonationRepository()

	return &testDeps{
		userRepo:     userRepo,
		donationRepo: donationRepo,
		jwtAuth:      jwtAuth,
		auth:         NewAuthUsecase(userRepo, jwtAuth),
		donations:    NewDonationUsecase(userRepo, donationRepo, v),
		stats:        NewStatsUsecase(userRepo, donationRepo),
	}
}

func (d *testDeps) register(t *testing.T, name, email string, userType model.UserType) *model.User {
	t.Helper()

	user, err := d.auth.Register(context.Background(), RegisterParams{
		Name:     name,
		Email:    email,
		Password: "password123",
		Phone:    "555-0100",
		Address:  "1 Main St",
		UserType: userType,
	})
	require.NoError(t, err)

	return user
}

func breadParams() CreateDonationParams {
	return CreateDonationParams{
		FoodName:      "Bread",
		Quantity:      "5 loaves",
		Category:      "Bakery",
		PickupAddress: "1 Main St",
		ExpiryTime:    "2025-01-01T18:00",
	}
}
