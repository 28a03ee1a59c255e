package repository

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// RegistrationRepository implements RegistrationRepository interface using GORM
type RegistrationRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRegistrationRepository creates a new RegistrationRepository instance
func NewRegistrationRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *RegistrationRepository {
	return &RegistrationRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *RegistrationRepository) modelToEntity(m *model.Registration) *entity.Registration {
	return &entity.Registration{
		ID:           m.ID,
		EventID:      m.EventID,
		UserID:       m.UserID,
		Status:       entity.RegistrationStatus(m.Status),
		RegisteredBy: m.RegisteredBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *RegistrationRepository) toEntities(models []model.Registration) []*entity.Registration {
	registrations := make([]*entity.Registration, 0, len(models))
	for i := range models {
		registrations = append(registrations, r.modelToEntity(&models[i]))
	}
	return registrations
}

func (r *RegistrationRepository) mapError(err error) error {
	return r.errorClassifier.Map(err, errs.ErrRegistrationNotFound, errs.ErrAlreadyRegistered)
}

// FindByEventAndUser returns the single row for the pair, in any status
func (r *RegistrationRepository) FindByEventAndUser(ctx context.Context, eventID, userID uint64) (*entity.Registration, error) {
	var registrationModel model.Registration
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&registrationModel).Error
	if err != nil {
		return nil, r.mapError(err)
	}
	return r.modelToEntity(&registrationModel), nil
}

// Create inserts a new registration
func (r *RegistrationRepository) Create(ctx context.Context, registration *entity.Registration) error {
	registrationModel := model.Registration{
		EventID:      registration.EventID,
		UserID:       registration.UserID,
		Status:       string(registration.Status),
		RegisteredBy: registration.RegisteredBy,
		CreatedAt:    registration.CreatedAt,
		UpdatedAt:    registration.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&registrationModel).Error; err != nil {
		return r.mapError(err)
	}
	registration.ID = registrationModel.ID

	r.logger.Debug("Registration created", map[string]any{
		"registration_id": registration.ID,
		"event_id":        registration.EventID,
		"user_id":         registration.UserID,
		"status":          registration.Status,
	})
	return nil
}

// Update writes status, registered_by and created_at of an existing row
func (r *RegistrationRepository) Update(ctx context.Context, registration *entity.Registration) error {
	result := r.db.WithContext(ctx).Model(&model.Registration{}).
		Where("id = ?", registration.ID).
		Updates(map[string]interface{}{
			"status":        string(registration.Status),
			"registered_by": registration.RegisteredBy,
			"created_at":    registration.CreatedAt,
			"updated_at":    r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrRegistrationNotFound
	}
	return nil
}

// SetStatus moves a batch of rows to status in one statement
func (r *RegistrationRepository) SetStatus(ctx context.Context, ids []uint64, status entity.RegistrationStatus) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Model(&model.Registration{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": r.timeProvider.Now(),
		}).Error
	if err != nil {
		return r.mapError(err)
	}

	r.logger.Debug("Registrations moved", map[string]any{
		"count":  len(ids),
		"status": status,
	})
	return nil
}

// ListByStatus returns the event's rows with the given status, oldest first
func (r *RegistrationRepository) ListByStatus(ctx context.Context, eventID uint64, status entity.RegistrationStatus) ([]*entity.Registration, error) {
	var models []model.Registration
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND status = ?", eventID, string(status)).
		Order("created_at ASC").
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, r.mapError(err)
	}
	return r.toEntities(models), nil
}

// CountByStatus counts the event's rows with the given status
func (r *RegistrationRepository) CountByStatus(ctx context.Context, eventID uint64, status entity.RegistrationStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Registration{}).
		Where("event_id = ? AND status = ?", eventID, string(status)).
		Count(&count).Error
	if err != nil {
		return 0, r.mapError(err)
	}
	return count, nil
}

// ListChargeable returns registered rows in insertion order, at most limit rows
func (r *RegistrationRepository) ListChargeable(ctx context.Context, eventID uint64, limit int) ([]*entity.Registration, error) {
	if limit <= 0 {
		return nil, nil
	}
	var models []model.Registration
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND status = ?", eventID, string(entity.RegistrationRegistered)).
		Order("id ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, r.mapError(err)
	}
	return r.toEntities(models), nil
}
