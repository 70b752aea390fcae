package repository

import (
	"context"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:                  userModel.ID,
		CreatedAt:           userModel.CreatedAt.UTC(),
		Currency:            entity.Currency(userModel.Currency),
		Locale:              entity.Locale(userModel.Locale),
		OnboardingCompleted: userModel.OnboardingCompleted,
	}
}

func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	return handleDatabaseError(r.logger, r.errorClassifier, operation, "user", err, map[string]any{
		"user_id": userID,
	})
}

// GetFirst retrieves the oldest user row
func (r *UserRepository) GetFirst(ctx context.Context) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Limit(1).Find(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting first user", result.Error, "")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.modelToEntity(&userModel), nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	result := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.modelToEntity(&userModel), nil
}

// Create inserts a user and returns the stored row
func (r *UserRepository) Create(ctx context.Context, user entity.User) (*entity.User, error) {
	if err := entity.ValidatePreferences(string(user.Currency), string(user.Locale)); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, errs.ErrInvalidRequest
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.timeProvider.Now()
	}

	userModel := model.User{
		ID:                  user.ID,
		CreatedAt:           user.CreatedAt.UTC(),
		Currency:            string(user.Currency),
		Locale:              string(user.Locale),
		OnboardingCompleted: user.OnboardingCompleted,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("creating user", err, user.ID)
	}

	created, err := r.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, errs.ErrIntegrity
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id":  created.ID,
		"currency": created.Currency,
		"locale":   created.Locale,
	})
	return created, nil
}

// UpdatePreferences changes currency and locale of a user
func (r *UserRepository) UpdatePreferences(ctx context.Context, id string, currency entity.Currency, locale entity.Locale) (*entity.User, error) {
	if err := entity.ValidatePreferences(string(currency), string(locale)); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"currency": string(currency),
			"locale":   string(locale),
		})
	return r.afterUpdate(ctx, "updating user preferences", id, result)
}

// CompleteOnboarding sets onboarding_completed
func (r *UserRepository) CompleteOnboarding(ctx context.Context, id string) (*entity.User, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("onboarding_completed", true)
	return r.afterUpdate(ctx, "completing onboarding", id, result)
}

func (r *UserRepository) afterUpdate(ctx context.Context, operation, id string, result *gorm.DB) (*entity.User, error) {
	if result.Error != nil {
		return nil, r.handleDatabaseError(operation, result.Error, id)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": id,
		})
		return nil, errs.ErrUserNotFound
	}

	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.ErrUserNotFound
	}
	return user, nil
}
