package payload

import (
	"time"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/model"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,notblank,max=100"`
	Email    string `json:"email"    validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=128"`
	Phone    string `json:"phone"    validate:"required,notblank,max=30"`
	UserType string `json:"userType" validate:"required,oneof=donor receiver"`
	Address  string `json:"address"  validate:"required,notblank,max=500"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// User is the public view of an account; the password hash never leaves the service.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	UserType  string    `json:"userType"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUser(u *model.User) User {
	return User{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		UserType:  string(u.UserType),
		CreatedAt: u.CreatedAt,
	}
}
