package repository

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// EventRepository implements EventRepository interface using GORM
type EventRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewEventRepository creates a new EventRepository instance
func NewEventRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *EventRepository {
	return &EventRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *EventRepository) modelToEntity(m *model.Event) *entity.Event {
	return &entity.Event{
		ID:                      m.ID,
		Title:                   m.Title,
		GroupID:                 m.GroupID,
		StartsAt:                m.StartsAt,
		MaxPlayers:              m.MaxPlayers,
		PricePerPerson:          m.PricePerPerson,
		Status:                  entity.EventStatus(m.Status),
		RegistrationCutoffHours: m.RegistrationCutoffHours,
		NegativeBalanceLimit:    m.NegativeBalanceLimit,
		CreatedBy:               m.CreatedBy,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
}

func (r *EventRepository) mapError(err error) error {
	return r.errorClassifier.Map(err, errs.ErrEventNotFound, errs.ErrAlreadyExists)
}

// GetByID retrieves an event without locking
func (r *EventRepository) GetByID(ctx context.Context, id uint64) (*entity.Event, error) {
	var eventModel model.Event
	if err := r.db.WithContext(ctx).First(&eventModel, id).Error; err != nil {
		return nil, r.mapError(err)
	}
	return r.modelToEntity(&eventModel), nil
}

// GetForUpdate retrieves an event and locks its row
func (r *EventRepository) GetForUpdate(ctx context.Context, id uint64) (*entity.Event, error) {
	var eventModel model.Event
	if err := forUpdate(r.db.WithContext(ctx)).First(&eventModel, id).Error; err != nil {
		return nil, r.mapError(err)
	}
	return r.modelToEntity(&eventModel), nil
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventModel := model.Event{
		Title:                   event.Title,
		GroupID:                 event.GroupID,
		StartsAt:                event.StartsAt,
		MaxPlayers:              event.MaxPlayers,
		PricePerPerson:          event.PricePerPerson,
		Status:                  string(event.Status),
		RegistrationCutoffHours: event.RegistrationCutoffHours,
		NegativeBalanceLimit:    event.NegativeBalanceLimit,
		CreatedBy:               event.CreatedBy,
		CreatedAt:               event.CreatedAt,
		UpdatedAt:               event.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&eventModel).Error; err != nil {
		r.logger.Error("Failed to create event", map[string]any{
			"title": event.Title,
			"error": err.Error(),
		})
		return r.mapError(err)
	}
	event.ID = eventModel.ID

	r.logger.Debug("Event created successfully", map[string]any{"event_id": event.ID})
	return nil
}

func (r *EventRepository) update(ctx context.Context, id uint64, fields map[string]interface{}) error {
	fields["updated_at"] = r.timeProvider.Now()
	result := r.db.WithContext(ctx).Model(&model.Event{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return r.mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrEventNotFound
	}
	return nil
}

// UpdateStatus sets the event status
func (r *EventRepository) UpdateStatus(ctx context.Context, id uint64, status entity.EventStatus) error {
	return r.update(ctx, id, map[string]interface{}{"status": string(status)})
}

// UpdateMaxPlayers sets the event capacity
func (r *EventRepository) UpdateMaxPlayers(ctx context.Context, id uint64, maxPlayers int) error {
	return r.update(ctx, id, map[string]interface{}{"max_players": maxPlayers})
}
