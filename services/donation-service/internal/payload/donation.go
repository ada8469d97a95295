package payload

import (
	"time"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/model"
)

type Donation struct {
	ID            string    `json:"_id"`
	DonorID       string    `json:"donorId"`
	DonorName     string    `json:"donorName"`
	DonorPhone    string    `json:"donorPhone"`
	FoodName      string    `json:"foodName"`
	Quantity      string    `json:"quantity"`
	Category      string    `json:"category"`
	Description   string    `json:"description,omitempty"`
	PickupAddress string    `json:"pickupAddress"`
	ExpiryTime    string    `json:"expiryTime"`
	Status        string    `json:"status"`
	ReceiverID    string    `json:"receiverId,omitempty"`
	ReceiverName  string    `json:"receiverName,omitempty"`
	ReceiverPhone string    `json:"receiverPhone,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DonationResponse answers the create and claim endpoints.
type DonationResponse struct {
	Message  string   `json:"message"`
	Donation Donation `json:"donation"`
}

func NewDonation(d *model.Donation) Donation {
	out := Donation{
		ID:            d.ID.Hex(),
		DonorID:       d.DonorID.Hex(),
		DonorName:     d.DonorName,
		DonorPhone:    d.DonorPhone,
		FoodName:      d.FoodName,
		Quantity:      d.Quantity,
		Category:      d.Category,
		Description:   d.Description,
		PickupAddress: d.PickupAddress,
		ExpiryTime:    d.ExpiryTime,
		Status:        string(d.Status),
		ReceiverName:  d.ReceiverName,
		ReceiverPhone: d.ReceiverPhone,
		CreatedAt:     d.CreatedAt,
	}
	if d.ReceiverID != nil {
		out.ReceiverID = d.ReceiverID.Hex()
	}

	return out
}

func NewDonations(donations []*model.Donation) []Donation {
	out := make([]Donation, 0, len(donations))
	for _, d := range donations {
		out = append(out, NewDonation(d))
	}

	return out
}

type CreateDonationRequest struct {
	FoodName      string `json:"foodName"      validate:"required,notblank,max=200"`
	Quantity      string `json:"quantity"      validate:"required,notblank,max=100"`
	Category      string `json:"category"      validate:"required,notblank,max=100"`
	Description   string `json:"description"   validate:"max=2000"`
	PickupAddress string `json:"pickupAddress" validate:"required,notblank,max=500"`
	ExpiryTime    string `json:"expiryTime"    validate:"required,notblank,max=100"`
}
