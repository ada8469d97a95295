package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DonationStatus is the lifecycle state of a donation.
type DonationStatus string

const (
	DonationStatusAvailable DonationStatus = "available"
	DonationStatusClaimed   DonationStatus = "claimed"
	// DonationStatusCompleted is reserved; nothing transitions into it yet.
	DonationStatusCompleted DonationStatus = "completed"
)

// Donation represents surplus food posted by a donor.
// Donor and receiver identity fields are copied onto the record when the donation is
// created and claimed respectively.
type Donation struct {
	ID            bson.ObjectID  `bson:"_id,omitempty"`
	DonorID       bson.ObjectID  `bson:"donor_id"`
	DonorName     string         `bson:"donor_name"`
	DonorPhone    string         `bson:"donor_phone"`
	FoodName      string         `bson:"food_name"`
	Quantity      string         `bson:"quantity"`
	Category      string         `bson:"category"`
	Description   string         `bson:"description,omitempty"`
	PickupAddress string         `bson:"pickup_address"`
	ExpiryTime    string         `bson:"expiry_time"`
	Status        DonationStatus `bson:"status"`
	ReceiverID    *bson.ObjectID `bson:"receiver_id,omitempty"`
	ReceiverName  string         `bson:"receiver_name,omitempty"`
	ReceiverPhone string         `bson:"receiver_phone,omitempty"`
	CreatedAt     time.Time      `bson:"created_at"`
}
