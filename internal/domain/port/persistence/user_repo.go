package persistence

import (
	"context"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
)

// UserRepository defines methods to interact with the local user row.
// Only the first row is meaningful; the seed routine guarantees it exists.
type UserRepository interface {
	// GetFirst retrieves the oldest user row
	// Returns (nil, nil) when the table is empty
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	GetFirst(ctx context.Context) (*entity.User, error)

	// GetByID retrieves a user by ID
	// Returns (nil, nil) when no row matches
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// Create inserts a user and returns the stored row
	//
	// Possible errors:
	// - ErrConstraintViolation: If the id already exists
	// - ErrIntegrity: If the row cannot be read back
	Create(ctx context.Context, user entity.User) (*entity.User, error)

	// UpdatePreferences changes currency and locale of a user
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	UpdatePreferences(ctx context.Context, id string, currency entity.Currency, locale entity.Locale) (*entity.User, error)

	// CompleteOnboarding sets onboarding_completed
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	CompleteOnboarding(ctx context.Context, id string) (*entity.User, error)
}
