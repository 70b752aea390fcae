package repository

import (
	"context"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CategoryRepository implements CategoryRepository interface using GORM
type CategoryRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	idGenerator     coreport.IDGenerator
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(db *gorm.DB, timeProvider coreport.TimeProvider, idGenerator coreport.IDGenerator, logger coreport.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:              db,
		timeProvider:    timeProvider,
		idGenerator:     idGenerator,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func categoryToEntity(m *model.Category) entity.Category {
	return entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Icon:      m.Icon,
		Color:     m.Color,
		IsCustom:  m.IsCustom,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func (r *CategoryRepository) handleDatabaseError(operation string, err error, categoryID string) error {
	return handleDatabaseError(r.logger, r.errorClassifier, operation, "category", err, map[string]any{
		"category_id": categoryID,
	})
}

// List returns all categories ordered by creation time ascending
func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	var models []model.Category
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing categories", err, "")
	}

	categories := make([]entity.Category, 0, len(models))
	for i := range models {
		categories = append(categories, categoryToEntity(&models[i]))
	}
	return categories, nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return r.findOne("getting category", id, r.db.WithContext(ctx).Where("id = ?", id))
}

// GetByName returns the oldest category with the given name
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	query := r.db.WithContext(ctx).Where("name = ?", name).Order("created_at ASC, id ASC")
	return r.findOne("getting category by name", "", query)
}

func (r *CategoryRepository) findOne(operation, id string, query *gorm.DB) (*entity.Category, error) {
	var categoryModel model.Category
	result := query.Limit(1).Find(&categoryModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError(operation, result.Error, id)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	category := categoryToEntity(&categoryModel)
	return &category, nil
}

// ListNames returns the set of existing category names
func (r *CategoryRepository) ListNames(ctx context.Context) (map[string]struct{}, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Pluck("name", &names).Error; err != nil {
		return nil, r.handleDatabaseError("listing category names", err, "")
	}

	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set, nil
}

// Create inserts a category and returns the stored row
func (r *CategoryRepository) Create(ctx context.Context, category entity.NewCategory) (*entity.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	categoryModel := model.Category{
		ID:        r.idGenerator.NewID(),
		Name:      category.Name,
		Icon:      optionalString(category.Icon),
		Color:     optionalString(category.Color),
		IsCustom:  category.IsCustom,
		CreatedAt: r.timeProvider.Now(),
	}

	if err := r.db.WithContext(ctx).Create(&categoryModel).Error; err != nil {
		return nil, r.handleDatabaseError("creating category", err, categoryModel.ID)
	}

	created, err := r.GetByID(ctx, categoryModel.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, errs.ErrIntegrity
	}

	r.logger.Debug("Category created", map[string]any{
		"category_id": created.ID,
		"name":        created.Name,
		"is_custom":   created.IsCustom,
	})
	return created, nil
}
