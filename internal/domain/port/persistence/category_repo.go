package persistence

import (
	"context"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
)

// CategoryRepository defines methods to interact with category data
type CategoryRepository interface {
	// List returns all categories ordered by creation time ascending
	List(ctx context.Context) ([]entity.Category, error)

	// GetByID retrieves a category by ID
	// Returns (nil, nil) when no row matches
	GetByID(ctx context.Context, id string) (*entity.Category, error)

	// GetByName returns the oldest category with the given name, or (nil, nil)
	GetByName(ctx context.Context, name string) (*entity.Category, error)

	// ListNames returns the set of existing category names
	ListNames(ctx context.Context) (map[string]struct{}, error)

	// Create inserts a category and returns the stored row
	//
	// Possible errors:
	// - ErrIntegrity: If the row cannot be read back
	Create(ctx context.Context, category entity.NewCategory) (*entity.Category, error)
}
