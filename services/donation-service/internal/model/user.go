package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserType is the role a user registered with.
type UserType string

const (
	UserTypeDonor    UserType = "donor"
	UserTypeReceiver UserType = "receiver"
)

// User represents a registered donor or receiver account.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Name         string        `bson:"name"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password_hash"`
	Phone        string        `bson:"phone"`
	Address      string        `bson:"address"`
	UserType     UserType      `bson:"user_type"`
	CreatedAt    time.Time     `bson:"created_at"`
}
