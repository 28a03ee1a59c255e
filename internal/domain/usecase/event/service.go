package event

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/authz"
)

// Service implements event administration
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new event Service
func NewService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) usecase.EventUseCase {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateEvent opens a new event
func (s *Service) CreateEvent(ctx context.Context, actor entity.Actor, req usecase.CreateEventRequest) (*entity.Event, error) {
	if err := authz.RequireAdmin(actor); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	event := &entity.Event{
		Title:                   strings.TrimSpace(req.Title),
		GroupID:                 req.GroupID,
		StartsAt:                req.StartsAt,
		MaxPlayers:              req.MaxPlayers,
		PricePerPerson:          req.PricePerPerson,
		Status:                  entity.EventOpen,
		RegistrationCutoffHours: req.RegistrationCutoffHours,
		NegativeBalanceLimit:    req.NegativeBalanceLimit,
		CreatedBy:               actor.ID,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}
	if !event.StartsAt.After(now) {
		return nil, errs.ErrEventStarted
	}

	if event.GroupID != nil {
		if _, err := s.uow.GetGroupRepository(ctx).GetByID(ctx, *event.GroupID); err != nil {
			return nil, err
		}
	}
	if err := s.uow.GetEventRepository(ctx).Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("Event created", map[string]any{
		"event_id":    event.ID,
		"title":       event.Title,
		"starts_at":   event.StartsAt,
		"max_players": event.MaxPlayers,
		"price":       entity.FormatCents(event.PricePerPerson),
		"actor_id":    actor.ID,
	})
	return event, nil
}

// GetEvent retrieves an event
func (s *Service) GetEvent(ctx context.Context, eventID uint64) (*entity.Event, error) {
	return s.uow.GetEventRepository(ctx).GetByID(ctx, eventID)
}

// CancelEvent moves an open event to canceled; settled events cannot be canceled
func (s *Service) CancelEvent(ctx context.Context, actor entity.Actor, eventID uint64) (*entity.Event, error) {
	if err := authz.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var event *entity.Event
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		events := s.uow.GetEventRepository(ctx)
		e, err := events.GetForUpdate(ctx, eventID)
		if err != nil {
			return err
		}
		if err := e.StatusError(); err != nil {
			return err
		}
		if err := events.UpdateStatus(ctx, eventID, entity.EventCanceled); err != nil {
			return err
		}
		e.Status = entity.EventCanceled
		event = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Event canceled", map[string]any{
		"event_id": eventID,
		"actor_id": actor.ID,
	})
	return event, nil
}
