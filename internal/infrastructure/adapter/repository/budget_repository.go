package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// BudgetRepository implements BudgetRepository interface using GORM
type BudgetRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	idGenerator     coreport.IDGenerator
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBudgetRepository creates a new BudgetRepository instance
func NewBudgetRepository(db *gorm.DB, timeProvider coreport.TimeProvider, idGenerator coreport.IDGenerator, logger coreport.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:              db,
		timeProvider:    timeProvider,
		idGenerator:     idGenerator,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func budgetToEntity(m *model.Budget) entity.Budget {
	return entity.Budget{
		ID:           m.ID,
		CategoryID:   m.CategoryID,
		MonthlyLimit: m.MonthlyLimit,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func (r *BudgetRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	return handleDatabaseError(r.logger, r.errorClassifier, operation, "budget", err, fields)
}

// List returns all budgets ordered by creation time ascending
func (r *BudgetRepository) List(ctx context.Context) ([]entity.Budget, error) {
	var models []model.Budget
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing budgets", err, nil)
	}

	budgets := make([]entity.Budget, 0, len(models))
	for i := range models {
		budgets = append(budgets, budgetToEntity(&models[i]))
	}
	return budgets, nil
}

// GetByID retrieves a budget by ID
func (r *BudgetRepository) GetByID(ctx context.Context, id string) (*entity.Budget, error) {
	var budgetModel model.Budget
	result := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&budgetModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting budget", result.Error, map[string]any{"budget_id": id})
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	budget := budgetToEntity(&budgetModel)
	return &budget, nil
}

// GetByCategoryID returns the budget of a category
func (r *BudgetRepository) GetByCategoryID(ctx context.Context, categoryID string) (*entity.Budget, error) {
	var budgetModel model.Budget
	result := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Limit(1).Find(&budgetModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting budget by category", result.Error, map[string]any{"category_id": categoryID})
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	budget := budgetToEntity(&budgetModel)
	return &budget, nil
}

// Create inserts a budget and returns the stored row. A second budget for
// the same category fails on the unique index, reported as ErrDuplicateBudget.
func (r *BudgetRepository) Create(ctx context.Context, budget entity.NewBudget) (*entity.Budget, error) {
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	budgetModel := model.Budget{
		ID:           r.idGenerator.NewID(),
		CategoryID:   budget.CategoryID,
		MonthlyLimit: budget.MonthlyLimit,
		CreatedAt:    r.timeProvider.Now(),
	}

	if err := r.db.WithContext(ctx).Create(&budgetModel).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate budget for category", map[string]any{
				"category_id": budget.CategoryID,
			})
			return nil, errs.NewConstraintError("budget", errs.ConstraintUnique,
				fmt.Errorf("%w: %w", errs.ErrDuplicateBudget, err))
		}
		return nil, r.handleDatabaseError("creating budget", err, map[string]any{"category_id": budget.CategoryID})
	}

	created, err := r.GetByID(ctx, budgetModel.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, errs.ErrIntegrity
	}

	r.logger.Info("Budget created successfully", map[string]any{
		"budget_id":     created.ID,
		"category_id":   created.CategoryID,
		"monthly_limit": entity.FormatAmount(created.MonthlyLimit),
	})
	return created, nil
}

// UpdateLimit changes the monthly limit of a budget
func (r *BudgetRepository) UpdateLimit(ctx context.Context, id string, limit float64) (*entity.Budget, error) {
	if err := entity.ValidateLimit(limit); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Model(&model.Budget{}).
		Where("id = ?", id).
		Update("monthly_limit", limit)
	if result.Error != nil {
		return nil, r.handleDatabaseError("updating budget limit", result.Error, map[string]any{"budget_id": id})
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrBudgetNotFound
	}

	budget, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, errs.ErrBudgetNotFound
	}
	return budget, nil
}
