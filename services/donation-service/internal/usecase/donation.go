package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/model"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/repository"
	"github.com/vasapolrittideah/food-share-api/shared/validator"
)

// DonationUsecase defines the donation lifecycle: donors post food, receivers claim it.
type DonationUsecase interface {
	CreateDonation(ctx context.Context, donorID string, params CreateDonationParams) (*model.Donation, error)
	ClaimDonation(ctx context.Context, receiverID, donationID string) (*model.Donation, error)
	ListAvailableDonations(ctx context.Context) ([]*model.Donation, error)
	ListDonorDonations(ctx context.Context, donorID string) ([]*model.Donation, error)
	ListClaimedDonations(ctx context.Context, receiverID string) ([]*model.Donation, error)
}

// CreateDonationParams is the food a donor posts.
type CreateDonationParams struct {
	FoodName      string `validate:"required,notblank,max=200"`
	Quantity      string `validate:"required,notblank,max=100"`
	Category      string `validate:"required,notblank,max=100"`
	Description   string `validate:"max=2000"`
	PickupAddress string `validate:"required,notblank,max=500"`
	ExpiryTime    string `validate:"required,notblank,max=100"`
}

var (
	ErrNotDonor             = errors.New("only donors can perform this action")
	ErrNotReceiver          = errors.New("only receivers can perform this action")
	ErrInvalidDonation      = errors.New("invalid donation")
	ErrDonationNotAvailable = errors.New("donation is no longer available")
)

type donationUsecase struct {
	userRepo     repository.UserRepository
	donationRepo repository.DonationRepository
	validator    *validator.Validator
}

func NewDonationUsecase(
	userRepo repository.UserRepository,
	donationRepo repository.DonationRepository,
	validator *validator.Validator,
) DonationUsecase {
	return &donationUsecase{
		userRepo:     userRepo,
		donationRepo: donationRepo,
		validator:    validator,
	}
}

// CreateDonation posts a new available donation on behalf of donorID.
// The role is checked before the payload so a receiver is always refused with ErrNotDonor.
func (u *donationUsecase) CreateDonation(
	ctx context.Context,
	donorID string,
	params CreateDonationParams,
) (*model.Donation, error) {
	donor, err := u.requireUser(ctx, donorID, model.UserTypeDonor)
	if err != nil {
		return nil, err
	}

	if err := u.validator.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDonation, err.Error())
	}

	donation, err := u.donationRepo.CreateDonation(ctx, &model.Donation{
		DonorID:       donor.ID,
		DonorName:     donor.Name,
		DonorPhone:    donor.Phone,
		FoodName:      params.FoodName,
		Quantity:      params.Quantity,
		Category:      params.Category,
		Description:   params.Description,
		PickupAddress: params.PickupAddress,
		ExpiryTime:    params.ExpiryTime,
		Status:        model.DonationStatusAvailable,
	})
	if err != nil {
		return nil, fmt.Errorf("create donation: %w", err)
	}

	return donation, nil
}

// ClaimDonation hands an available donation to receiverID. The status change is a single
// conditional write, so of two concurrent claims only one succeeds; the other gets
// ErrDonationNotAvailable.
func (u *donationUsecase) ClaimDonation(ctx context.Context, receiverID, donationID string) (*model.Donation, error) {
	receiver, err := u.requireUser(ctx, receiverID, model.UserTypeReceiver)
	if err != nil {
		return nil, err
	}

	donation, err := u.donationRepo.GetDonation(ctx, donationID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDonationNotFound
		}

		return nil, fmt.Errorf("get donation: %w", err)
	}

	if donation.Status != model.DonationStatusAvailable {
		return nil, ErrDonationNotAvailable
	}

	claimed, err := u.donationRepo.ClaimDonation(ctx, donationID, repository.ClaimDonationParams{
		ReceiverID:    receiver.ID,
		ReceiverName:  receiver.Name,
		ReceiverPhone: receiver.Phone,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDonationNotAvailable
		}

		return nil, fmt.Errorf("claim donation: %w", err)
	}

	return claimed, nil
}

func (u *donationUsecase) ListAvailableDonations(ctx context.Context) ([]*model.Donation, error) {
	status := model.DonationStatusAvailable

	return u.listDonations(ctx, repository.FilterDonationsParams{Status: &status})
}

func (u *donationUsecase) ListDonorDonations(ctx context.Context, donorID string) ([]*model.Donation, error) {
	donor, err := u.requireUser(ctx, donorID, model.UserTypeDonor)
	if err != nil {
		return nil, err
	}

	return u.listDonations(ctx, repository.FilterDonationsParams{DonorID: &donor.ID})
}

func (u *donationUsecase) ListClaimedDonations(ctx context.Context, receiverID string) ([]*model.Donation, error) {
	receiver, err := u.requireUser(ctx, receiverID, model.UserTypeReceiver)
	if err != nil {
		return nil, err
	}

	return u.listDonations(ctx, repository.FilterDonationsParams{ReceiverID: &receiver.ID})
}

func (u *donationUsecase) listDonations(
	ctx context.Context,
	params repository.FilterDonationsParams,
) ([]*model.Donation, error) {
	donations, err := u.donationRepo.ListDonations(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}

	return donations, nil
}

// requireUser loads the acting user and checks it has the given role.
func (u *donationUsecase) requireUser(ctx context.Context, id string, userType model.UserType) (*model.User, error) {
	user, err := u.userRepo.GetUser(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}

		return nil, fmt.Errorf("get user: %w", err)
	}

	if user.UserType != userType {
		if userType == model.UserTypeDonor {
			return nil, ErrNotDonor
		}

		return nil, ErrNotReceiver
	}

	return user, nil
}
