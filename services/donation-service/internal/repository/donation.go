package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/model"
)

// DonationRepository defines the interface for donation-related database operations.
type DonationRepository interface {
	CreateDonation(ctx context.Context, donation *model.Donation) (*model.Donation, error)
	GetDonation(ctx context.Context, id string) (*model.Donation, error)
	ClaimDonation(ctx context.Context, id string, params ClaimDonationParams) (*model.Donation, error)
	ListDonations(ctx context.Context, params FilterDonationsParams) ([]*model.Donation, error)
	CountDonations(ctx context.Context, params FilterDonationsParams) (int64, error)
}

// ClaimDonationParams carries the receiver identity stamped onto a claimed donation.
type ClaimDonationParams struct {
	ReceiverID    bson.ObjectID
	ReceiverName  string
	ReceiverPhone string
}

// FilterDonationsParams narrows ListDonations and CountDonations. Nil fields do not filter.
// Results are always ordered newest first; a zero Limit means no limit.
type FilterDonationsParams struct {
	Status     *model.DonationStatus
	DonorID    *bson.ObjectID
	ReceiverID *bson.ObjectID
	Limit      int64
}

func (p FilterDonationsParams) filter() bson.M {
	filter := bson.M{}
	if p.Status != nil {
		filter["status"] = *p.Status
	}
	if p.DonorID != nil {
		filter["donor_id"] = *p.DonorID
	}
	if p.ReceiverID != nil {
		filter["receiver_id"] = *p.ReceiverID
	}

	return filter
}

const donationCollection = "donations"

type donationMongoRepository struct {
	db *mongo.Database
}

func NewDonationMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) DonationRepository {
	collection := db.Collection(donationCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "donor_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "receiver_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create donation indexes")
	}

	return &donationMongoRepository{db: db}
}

func (r *donationMongoRepository) CreateDonation(
	ctx context.Context,
	donation *model.Donation,
) (*model.Donation, error) {
	donation.CreatedAt = time.Now().UTC()

	result, err := r.db.Collection(donationCollection).InsertOne(ctx, donation)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		donation.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return donation, nil
}

func (r *donationMongoRepository) GetDonation(ctx context.Context, id string) (*model.Donation, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var donation model.Donation
	if err := r.db.Collection(donationCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&donation); err != nil {
		return nil, err
	}

	return &donation, nil
}

// ClaimDonation moves an available donation to claimed in a single conditional update.
// It returns mongo.ErrNoDocuments when the donation does not exist or is no longer available.
func (r *donationMongoRepository) ClaimDonation(
	ctx context.Context,
	id string,
	params ClaimDonationParams,
) (*model.Donation, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(donationCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID, "status": model.DonationStatusAvailable},
		bson.M{"$set": bson.M{
			"status":         model.DonationStatusClaimed,
			"receiver_id":    params.ReceiverID,
			"receiver_name":  params.ReceiverName,
			"receiver_phone": params.ReceiverPhone,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var donation model.Donation
	if err := result.Decode(&donation); err != nil {
		return nil, err
	}

	return &donation, nil
}

func (r *donationMongoRepository) ListDonations(
	ctx context.Context,
	params FilterDonationsParams,
) ([]*model.Donation, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if params.Limit > 0 {
		findOptions.SetLimit(params.Limit)
	}

	cursor, err := r.db.Collection(donationCollection).Find(ctx, params.filter(), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	donations := []*model.Donation{}
	for cursor.Next(ctx) {
		var donation model.Donation
		if err := cursor.Decode(&donation); err != nil {
			return nil, err
		}
		donations = append(donations, &donation)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return donations, nil
}

func (r *donationMongoRepository) CountDonations(ctx context.Context, params FilterDonationsParams) (int64, error) {
	return r.db.Collection(donationCollection).CountDocuments(ctx, params.filter())
}
