package dto

import (
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
)

// PreferencesRequest completes onboarding with the chosen preferences
type PreferencesRequest struct {
	Currency string `json:"currency" binding:"required"`
	Locale   string `json:"locale" binding:"required"`
}

// UserResponse represents the local user
type UserResponse struct {
	ID                  string    `json:"id"`
	Currency            string    `json:"currency"`
	Locale              string    `json:"locale"`
	OnboardingCompleted bool      `json:"onboardingCompleted"`
	CreatedAt           time.Time `json:"createdAt"`
}

// NewUserResponse converts a user entity for the wire
func NewUserResponse(u entity.User) UserResponse {
	return UserResponse{
		ID:                  u.ID,
		Currency:            string(u.Currency),
		Locale:              string(u.Locale),
		OnboardingCompleted: u.OnboardingCompleted,
		CreatedAt:           u.CreatedAt,
	}
}

// CategoryRequest represents the API request for a custom category
type CategoryRequest struct {
	Name  string  `json:"name" binding:"required"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}
