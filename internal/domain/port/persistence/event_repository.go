package persistence

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// EventRepository defines event data operations
type EventRepository interface {
	// GetByID retrieves an event without locking
	//
	// Possible errors:
	// - ErrEventNotFound: If the event doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Event, error)

	// GetForUpdate retrieves an event and locks its row. Every roster change
	// locks the event first, which serialises registrations per event.
	GetForUpdate(ctx context.Context, id uint64) (*entity.Event, error)

	// Create inserts a new event and sets its ID
	Create(ctx context.Context, event *entity.Event) error

	// UpdateStatus sets the event status
	UpdateStatus(ctx context.Context, id uint64, status entity.EventStatus) error

	// UpdateMaxPlayers sets the event capacity
	UpdateMaxPlayers(ctx context.Context, id uint64, maxPlayers int) error
}
