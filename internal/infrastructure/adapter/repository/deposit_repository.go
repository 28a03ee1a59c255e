package repository

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// DepositRepository implements DepositRepository interface using GORM
type DepositRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewDepositRepository creates a new DepositRepository instance
func NewDepositRepository(db *gorm.DB, logger coreport.Logger) *DepositRepository {
	return &DepositRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *DepositRepository) modelToEntity(m *model.Deposit) *entity.Deposit {
	return &entity.Deposit{
		ID:         m.ID,
		UserID:     m.UserID,
		Amount:     m.Amount,
		Status:     entity.DepositStatus(m.Status),
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
		RefundedBy: m.RefundedBy,
		RefundedAt: m.RefundedAt,
	}
}

func (r *DepositRepository) mapError(err error) error {
	return r.errorClassifier.Map(err, errs.ErrDepositNotFound, errs.ErrDepositExists)
}

// Create inserts a new deposit
func (r *DepositRepository) Create(ctx context.Context, deposit *entity.Deposit) error {
	depositModel := model.Deposit{
		UserID:    deposit.UserID,
		Amount:    deposit.Amount,
		Status:    string(deposit.Status),
		CreatedBy: deposit.CreatedBy,
		CreatedAt: deposit.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&depositModel).Error; err != nil {
		return r.mapError(err)
	}
	deposit.ID = depositModel.ID

	r.logger.Debug("Deposit created", map[string]any{
		"deposit_id": deposit.ID,
		"user_id":    deposit.UserID,
	})
	return nil
}

// GetForUpdate retrieves a deposit and locks its row
func (r *DepositRepository) GetForUpdate(ctx context.Context, id uint64) (*entity.Deposit, error) {
	var depositModel model.Deposit
	if err := forUpdate(r.db.WithContext(ctx)).First(&depositModel, id).Error; err != nil {
		return nil, r.mapError(err)
	}
	return r.modelToEntity(&depositModel), nil
}

// Update writes the status and refund fields
func (r *DepositRepository) Update(ctx context.Context, deposit *entity.Deposit) error {
	result := r.db.WithContext(ctx).Model(&model.Deposit{}).
		Where("id = ?", deposit.ID).
		Updates(map[string]interface{}{
			"status":      string(deposit.Status),
			"refunded_by": deposit.RefundedBy,
			"refunded_at": deposit.RefundedAt,
		})
	if result.Error != nil {
		return r.mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrDepositNotFound
	}
	return nil
}

// HasActive reports whether the user holds an active deposit
func (r *DepositRepository) HasActive(ctx context.Context, userID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Deposit{}).
		Where("user_id = ? AND status = ?", userID, string(entity.DepositActive)).
		Count(&count).Error
	if err != nil {
		return false, r.mapError(err)
	}
	return count > 0, nil
}

// ActiveHolders returns the subset of userIDs holding an active deposit
func (r *DepositRepository) ActiveHolders(ctx context.Context, userIDs []uint64) (map[uint64]bool, error) {
	holders := make(map[uint64]bool)
	if len(userIDs) == 0 {
		return holders, nil
	}

	var ids []uint64
	err := r.db.WithContext(ctx).Model(&model.Deposit{}).
		Where("user_id IN ? AND status = ?", userIDs, string(entity.DepositActive)).
		Distinct().
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, r.mapError(err)
	}
	for _, id := range ids {
		holders[id] = true
	}
	return holders, nil
}

// CountActiveInGroup counts members of the group holding an active deposit
func (r *DepositRepository) CountActiveInGroup(ctx context.Context, groupID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Deposit{}).
		Joins("JOIN group_members ON group_members.user_id = deposits.user_id").
		Where("group_members.group_id = ? AND deposits.status = ?", groupID, string(entity.DepositActive)).
		Distinct("deposits.user_id").
		Count(&count).Error
	if err != nil {
		return 0, r.mapError(err)
	}
	return count, nil
}

// ListByUser returns the user's deposits, newest first
func (r *DepositRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Deposit, error) {
	var models []model.Deposit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, r.mapError(err)
	}

	deposits := make([]*entity.Deposit, 0, len(models))
	for i := range models {
		deposits = append(deposits, r.modelToEntity(&models[i]))
	}
	return deposits, nil
}
