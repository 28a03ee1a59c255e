package repository

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// FamilyPermissionRepository implements FamilyPermissionRepository interface using GORM
type FamilyPermissionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewFamilyPermissionRepository creates a new FamilyPermissionRepository instance
func NewFamilyPermissionRepository(db *gorm.DB, logger coreport.Logger) *FamilyPermissionRepository {
	return &FamilyPermissionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *FamilyPermissionRepository) modelToEntity(m *model.FamilyPermission) *entity.FamilyPermission {
	return &entity.FamilyPermission{
		ID:          m.ID,
		RequesterID: m.RequesterID,
		TargetID:    m.TargetID,
		Status:      entity.PermissionStatus(m.Status),
		CanPay:      m.CanPay,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *FamilyPermissionRepository) mapError(err error) error {
	return r.errorClassifier.Map(err, errs.ErrPermissionNotFound, errs.ErrPermissionExists)
}

// FindByPair returns the row for requester -> target
func (r *FamilyPermissionRepository) FindByPair(ctx context.Context, requesterID, targetID uint64) (*entity.FamilyPermission, error) {
	var permissionModel model.FamilyPermission
	err := r.db.WithContext(ctx).
		Where("requester_id = ? AND target_id = ?", requesterID, targetID).
		First(&permissionModel).Error
	if err != nil {
		return nil, r.mapError(err)
	}
	return r.modelToEntity(&permissionModel), nil
}

// GetForUpdate retrieves a permission by ID and locks its row
func (r *FamilyPermissionRepository) GetForUpdate(ctx context.Context, id uint64) (*entity.FamilyPermission, error) {
	var permissionModel model.FamilyPermission
	if err := forUpdate(r.db.WithContext(ctx)).First(&permissionModel, id).Error; err != nil {
		return nil, r.mapError(err)
	}
	return r.modelToEntity(&permissionModel), nil
}

// IsAccepted reports whether an accepted requester -> target edge exists
func (r *FamilyPermissionRepository) IsAccepted(ctx context.Context, requesterID, targetID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FamilyPermission{}).
		Where("requester_id = ? AND target_id = ? AND status = ?",
			requesterID, targetID, string(entity.PermissionAccepted)).
		Count(&count).Error
	if err != nil {
		return false, r.mapError(err)
	}
	return count > 0, nil
}

// Create inserts a new permission
func (r *FamilyPermissionRepository) Create(ctx context.Context, permission *entity.FamilyPermission) error {
	permissionModel := model.FamilyPermission{
		RequesterID: permission.RequesterID,
		TargetID:    permission.TargetID,
		Status:      string(permission.Status),
		CanPay:      permission.CanPay,
		CreatedAt:   permission.CreatedAt,
		UpdatedAt:   permission.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&permissionModel).Error; err != nil {
		return r.mapError(err)
	}
	permission.ID = permissionModel.ID

	r.logger.Debug("Family permission created", map[string]any{
		"permission_id": permission.ID,
		"requester_id":  permission.RequesterID,
		"target_id":     permission.TargetID,
	})
	return nil
}

// Update writes status and can_pay
func (r *FamilyPermissionRepository) Update(ctx context.Context, permission *entity.FamilyPermission) error {
	result := r.db.WithContext(ctx).Model(&model.FamilyPermission{}).
		Where("id = ?", permission.ID).
		Updates(map[string]interface{}{
			"status":     string(permission.Status),
			"can_pay":    permission.CanPay,
			"updated_at": permission.UpdatedAt,
		})
	if result.Error != nil {
		return r.mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPermissionNotFound
	}
	return nil
}

// ListByUser returns rows where the user is requester or target
func (r *FamilyPermissionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.FamilyPermission, error) {
	var models []model.FamilyPermission
	err := r.db.WithContext(ctx).
		Where("requester_id = ? OR target_id = ?", userID, userID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, r.mapError(err)
	}

	permissions := make([]*entity.FamilyPermission, 0, len(models))
	for i := range models {
		permissions = append(permissions, r.modelToEntity(&models[i]))
	}
	return permissions, nil
}
