// Package inmemory provides process-local implementations of the repository interfaces.
// They follow the Mongo repositories' contract, including the errors they return, and
// back the test suites and `serve --in-memory`.
package inmemory

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/model"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/repository"
)

const duplicateKeyCode = 11000

type userRepository struct {
	mu      sync.RWMutex
	byID    map[bson.ObjectID]model.User
	byEmail map[string]bson.ObjectID
}

// NewUserRepository returns an empty in-memory UserRepository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		byID:    make(map[bson.ObjectID]model.User),
		byEmail: make(map[string]bson.ObjectID),
	}
}

func (r *userRepository) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return nil, mongo.WriteException{
			WriteErrors: []mongo.WriteError{{
				Code:    duplicateKeyCode,
				Message: fmt.Sprintf("E11000 duplicate key error collection: users index: email_1 dup key: { email: %q }", user.Email),
			}},
		}
	}

	user.ID = bson.NewObjectID()
	user.CreatedAt = time.Now().UTC()

	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID

	return user, nil
}

func (r *userRepository) GetUser(_ context.Context, id string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[objectID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	user := r.byID[id]

	return &user, nil
}

func (r *userRepository) CountUsers(_ context.Context, params repository.FilterUsersParams) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, user := range r.byID {
		if params.UserType != nil && user.UserType != *params.UserType {
			continue
		}
		n++
	}

	return n, nil
}

type donationRepository struct {
	mu   sync.RWMutex
	byID map[bson.ObjectID]model.Donation
}

// NewDonationRepository returns an empty in-memory DonationRepository.
func NewDonationRepository() repository.DonationRepository {
	return &donationRepository{byID: make(map[bson.ObjectID]model.Donation)}
}

func (r *donationRepository) CreateDonation(_ context.Context, donation *model.Donation) (*model.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	donation.ID = bson.NewObjectID()
	donation.CreatedAt = time.Now().UTC()

	r.byID[donation.ID] = cloneDonation(*donation)

	return donation, nil
}

func (r *donationRepository) GetDonation(_ context.Context, id string) (*model.Donation, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	donation, ok := r.byID[objectID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	donation = cloneDonation(donation)

	return &donation, nil
}

func (r *donationRepository) ClaimDonation(
	_ context.Context,
	id string,
	params repository.ClaimDonationParams,
) (*model.Donation, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	donation, ok := r.byID[objectID]
	if !ok || donation.Status != model.DonationStatusAvailable {
		return nil, mongo.ErrNoDocuments
	}

	receiverID := params.ReceiverID
	donation.Status = model.DonationStatusClaimed
	donation.ReceiverID = &receiverID
	donation.ReceiverName = params.ReceiverName
	donation.ReceiverPhone = params.ReceiverPhone

	r.byID[objectID] = donation
	donation = cloneDonation(donation)

	return &donation, nil
}

func (r *donationRepository) ListDonations(
	_ context.Context,
	params repository.FilterDonationsParams,
) ([]*model.Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	donations := []*model.Donation{}
	for _, donation := range r.byID {
		if !matches(donation, params) {
			continue
		}
		d := cloneDonation(donation)
		donations = append(donations, &d)
	}

	sort.Slice(donations, func(i, j int) bool {
		if !donations[i].CreatedAt.Equal(donations[j].CreatedAt) {
			return donations[i].CreatedAt.After(donations[j].CreatedAt)
		}
		return bytes.Compare(donations[i].ID[:], donations[j].ID[:]) > 0
	})

	if params.Limit > 0 && int64(len(donations)) > params.Limit {
		donations = donations[:params.Limit]
	}

	return donations, nil
}

func (r *donationRepository) CountDonations(_ context.Context, params repository.FilterDonationsParams) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, donation := range r.byID {
		if matches(donation, params) {
			n++
		}
	}

	return n, nil
}

func matches(d model.Donation, params repository.FilterDonationsParams) bool {
	if params.Status != nil && d.Status != *params.Status {
		return false
	}
	if params.DonorID != nil && d.DonorID != *params.DonorID {
		return false
	}
	if params.ReceiverID != nil && (d.ReceiverID == nil || *d.ReceiverID != *params.ReceiverID) {
		return false
	}

	return true
}

// cloneDonation detaches the receiver id pointer from the stored copy.
func cloneDonation(d model.Donation) model.Donation {
	if d.ReceiverID != nil {
		id := *d.ReceiverID
		d.ReceiverID = &id
	}

	return d
}
