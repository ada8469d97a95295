package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/config"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/model"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/usecase"
)

const seedPassword = "password123"

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with a demo donor, receiver and donations",
	Action: func(cCtx *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger := newLogger(cfg)

		ctx := cCtx.Context

		svc, err := newService(ctx, cfg, logger, false)
		if err != nil {
			return err
		}
		defer svc.close(context.Background())

		created, err := seed(ctx, svc.deps.AuthUsecase, svc.deps.DonationUsecase)
		if err != nil {
			return err
		}

		logger.Info().Int("donations", created).Msg("seed completed")

		return nil
	},
}

var seedUsers = []usecase.RegisterParams{
	{
		Name:     "Demo Bakery",
		Email:    "donor@example.com",
		Password: seedPassword,
		Phone:    "555-0101",
		Address:  "12 Baker Street",
		UserType: model.UserTypeDonor,
	},
	{
		Name:     "Demo Shelter",
		Email:    "receiver@example.com",
		Password: seedPassword,
		Phone:    "555-0202",
		Address:  "8 Harbor Road",
		UserType: model.UserTypeReceiver,
	},
}

var seedDonations = []usecase.CreateDonationParams{
	{
		FoodName:      "Sourdough bread",
		Quantity:      "12 loaves",
		Category:      "Bakery",
		Description:   "Baked this morning",
		PickupAddress: "12 Baker Street",
		ExpiryTime:    "2030-01-01T18:00",
	},
	{
		FoodName:      "Vegetable soup",
		Quantity:      "5 litres",
		Category:      "Prepared meals",
		PickupAddress: "12 Baker Street",
		ExpiryTime:    "2030-01-01T20:00",
	},
	{
		FoodName:      "Apples",
		Quantity:      "2 crates",
		Category:      "Produce",
		PickupAddress: "12 Baker Street",
		ExpiryTime:    "2030-01-03T12:00",
	},
}

// seed registers the demo accounts and, only when the donor account is new, posts the demo
// donations. Running it twice leaves the data unchanged. It returns the number of donations created.
func seed(ctx context.Context, authUsecase usecase.AuthUsecase, donationUsecase usecase.DonationUsecase) (int, error) {
	var donorID string
	donorCreated := false

	for _, params := range seedUsers {
		user, err := authUsecase.Register(ctx, params)
		switch {
		case errors.Is(err, usecase.ErrUserAlreadyExists):
			continue
		case err != nil:
			return 0, fmt.Errorf("failed to seed user %s: %w", params.Email, err)
		}

		if user.UserType == model.UserTypeDonor {
			donorID = user.ID.Hex()
			donorCreated = true
		}
	}

	if !donorCreated {
		return 0, nil
	}

	for _, params := range seedDonations {
		if _, err := donationUsecase.CreateDonation(ctx, donorID, params); err != nil {
			return 0, fmt.Errorf("failed to seed donation %s: %w", params.FoodName, err)
		}
	}

	return len(seedDonations), nil
}
