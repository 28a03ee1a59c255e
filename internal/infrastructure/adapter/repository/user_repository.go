package repository

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/model"
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
func (r *UserRepository) modelToEntity(m *model.User) *entity.User {
	user := &entity.User{
		ID:                   m.ID,
		Name:                 m.Name,
		Role:                 entity.Role(m.Role),
		NegativeBalanceLimit: m.NegativeBalanceLimit,
		PayForFamilyMembers:  m.PayForFamilyMembers,
		CreatedAt:            m.CreatedAt,
	}
	if m.Email != nil {
		user.Email = *m.Email
	}
	user.SetBalance(m.Balance, r.timeProvider)
	user.UpdatedAt = m.UpdatedAt
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	mapped := r.errorClassifier.Map(err, errs.ErrUserNotFound, errs.ErrDuplicateUser)
	if errs.IsNotFoundError(mapped) {
		r.logger.Debug("User not found", map[string]any{"user_id": userID, "operation": operation})
		return mapped
	}
	r.logger.Error("Database error when "+operation, map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
	return mapped
}

func (r *UserRepository) get(ctx context.Context, id uint64, lock bool) (*entity.User, error) {
	db := r.db.WithContext(ctx)
	if lock {
		db = forUpdate(db)
	}

	var userModel model.User
	if err := db.First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, id)
	}
	return r.modelToEntity(&userModel), nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a user with a row lock
func (r *UserRepository) GetForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	return r.get(ctx, id, true)
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("finding user by email", err, 0)
	}
	return r.modelToEntity(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Name:                 user.Name,
		Role:                 string(user.Role),
		Balance:              user.Balance(),
		NegativeBalanceLimit: user.NegativeBalanceLimit,
		PayForFamilyMembers:  user.PayForFamilyMembers,
		CreatedAt:            user.CreatedAt,
		UpdatedAt:            user.UpdatedAt,
	}
	if user.Email != "" {
		email := user.Email
		userModel.Email = &email
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("creating user", err, 0)
	}
	user.ID = userModel.ID

	r.logger.Debug("User created successfully", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// UpdateBalance writes the user's balance
func (r *UserRepository) UpdateBalance(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"balance":    user.Balance(),
			"updated_at": user.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating balance", result.Error, user.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// SetPayForFamily stores the pay_for_family_members preference
func (r *UserRepository) SetPayForFamily(ctx context.Context, userID uint64, enabled bool) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"pay_for_family_members": enabled,
			"updated_at":             r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating family preference", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}
