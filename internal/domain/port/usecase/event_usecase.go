package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// CreateEventRequest carries the admin-supplied fields of a new event
type CreateEventRequest struct {
	Title                   string
	GroupID                 *uint64
	StartsAt                time.Time
	MaxPlayers              int
	PricePerPerson          int64
	RegistrationCutoffHours int
	NegativeBalanceLimit    int64
}

// EventUseCase defines event administration
type EventUseCase interface {
	CreateEvent(ctx context.Context, actor entity.Actor, req CreateEventRequest) (*entity.Event, error)
	GetEvent(ctx context.Context, eventID uint64) (*entity.Event, error)
	CancelEvent(ctx context.Context, actor entity.Actor, eventID uint64) (*entity.Event, error)
}
