package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/config"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/handler"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/repository"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/repository/inmemory"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/usecase"
	"github.com/vasapolrittideah/food-share-api/shared/auth"
	"github.com/vasapolrittideah/food-share-api/shared/database"
	"github.com/vasapolrittideah/food-share-api/shared/logger"
	"github.com/vasapolrittideah/food-share-api/shared/validator"
)

const serviceName = "donation-service"

// service is the wired object graph shared by the serve and seed commands.
type service struct {
	cfg    *config.DonationServiceConfig
	logger *zerolog.Logger
	client *mongo.Client

	deps handler.Dependencies
}

func newLogger(cfg *config.DonationServiceConfig) *zerolog.Logger {
	return logger.New(logger.Options{
		Level:   cfg.Log.Level,
		Pretty:  cfg.Log.Pretty,
		Service: serviceName,
	})
}

// newService connects the repositories and builds the use cases. With inMemory set
// nothing is persisted and MongoDB is never contacted.
func newService(ctx context.Context, cfg *config.DonationServiceConfig, logger *zerolog.Logger, inMemory bool) (*service, error) {
	jwtAuth, err := auth.NewJWTAuthenticator(cfg.Token.Secret)
	if err != nil {
		return nil, fmt.Errorf("create jwt authenticator: %w", err)
	}

	v, err := validator.New()
	if err != nil {
		return nil, fmt.Errorf("create validator: %w", err)
	}

	svc := &service{cfg: cfg, logger: logger}

	var (
		userRepo     repository.UserRepository
		donationRepo repository.DonationRepository
		pinger       handler.DatabasePinger
	)

	if inMemory {
		logger.Warn().Msg("using in-memory repositories, data is lost on exit")

		userRepo = inmemory.NewUserRepository()
		donationRepo = inmemory.NewDonationRepository()
		pinger = alwaysUp{}
	} else {
		client, db, err := database.ConnectMongo(ctx, database.MongoConfig{
			URI:            cfg.Mongo.URI,
			Database:       cfg.Mongo.Database,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
		})
		if err != nil {
			return nil, err
		}

		logger.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

		svc.client = client
		userRepo = repository.NewUserMongoRepository(ctx, logger, db)
		donationRepo = repository.NewDonationMongoRepository(ctx, logger, db)
		pinger = client
	}

	svc.deps = handler.Dependencies{
		AuthUsecase:     usecase.NewAuthUsecase(userRepo, jwtAuth),
		DonationUsecase: usecase.NewDonationUsecase(userRepo, donationRepo, v),
		StatsUsecase:    usecase.NewStatsUsecase(userRepo, donationRepo),
		JWTAuth:         jwtAuth,
		Validator:       v,
		DB:              pinger,
		Logger:          logger,
	}

	return svc, nil
}

func (s *service) close(ctx context.Context) {
	if s.client == nil {
		return
	}

	if err := s.client.Disconnect(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to disconnect from mongodb")
	}
}

type alwaysUp struct{}

func (alwaysUp) Ping(context.Context, *readpref.ReadPref) error { return nil }
