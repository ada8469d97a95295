package handler

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/usecase"
	"github.com/vasapolrittideah/food-share-api/shared/auth"
	"github.com/vasapolrittideah/food-share-api/shared/validator"
)

// DatabasePinger reports whether the backing database is reachable. *mongo.Client satisfies it.
type DatabasePinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type donationHTTPHandler struct {
	authUsecase     usecase.AuthUsecase
	donationUsecase usecase.DonationUsecase
	statsUsecase    usecase.StatsUsecase
	jwtAuth         *auth.JWTAuthenticator
	validator       *validator.Validator
	db              DatabasePinger
	logger          *zerolog.Logger
}

// Dependencies groups what the HTTP layer needs from the rest of the service.
type Dependencies struct {
	AuthUsecase     usecase.AuthUsecase
	DonationUsecase usecase.DonationUsecase
	StatsUsecase    usecase.StatsUsecase
	JWTAuth         *auth.JWTAuthenticator
	Validator       *validator.Validator
	DB              DatabasePinger
	Logger          *zerolog.Logger
}

func newDonationHTTPHandler(deps Dependencies) *donationHTTPHandler {
	return &donationHTTPHandler{
		authUsecase:     deps.AuthUsecase,
		donationUsecase: deps.DonationUsecase,
		statsUsecase:    deps.StatsUsecase,
		jwtAuth:         deps.JWTAuth,
		validator:       deps.Validator,
		db:              deps.DB,
		logger:          deps.Logger,
	}
}
