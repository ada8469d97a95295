package usecase

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/repository"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrDonationNotFound = errors.New("donation not found")
)

// isNotFound reports whether a repository error means the document does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, repository.ErrInvalidID)
}
