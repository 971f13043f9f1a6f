package dto

import (
	"time"

	"github.com/pulsecheck/pulsecheck/internal/model"
)

// SignUpRequest represents the request body for creating an account.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the API representation of a user.
// The password hash is deliberately absent; the persisted representation
// never crosses the API boundary.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a user model to its API representation.
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// TokenResponse carries the signed token issued at login.
type TokenResponse struct {
	Token string `json:"token"`
}
