package persistence

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// RegistrationRepository defines registration data operations.
// Lists are ordered by created_at ascending, then id ascending.
type RegistrationRepository interface {
	// FindByEventAndUser returns the single row for the pair, in any status
	//
	// Possible errors:
	// - ErrRegistrationNotFound: If the user never registered for the event
	FindByEventAndUser(ctx context.Context, eventID, userID uint64) (*entity.Registration, error)

	// Create inserts a new registration and sets its ID
	Create(ctx context.Context, registration *entity.Registration) error

	// Update writes status, registered_by and created_at of an existing row
	Update(ctx context.Context, registration *entity.Registration) error

	// SetStatus moves a batch of rows to status in one statement
	SetStatus(ctx context.Context, ids []uint64, status entity.RegistrationStatus) error

	// ListByStatus returns the event's rows with the given status, oldest first
	ListByStatus(ctx context.Context, eventID uint64, status entity.RegistrationStatus) ([]*entity.Registration, error)

	// CountByStatus counts the event's rows with the given status
	CountByStatus(ctx context.Context, eventID uint64, status entity.RegistrationStatus) (int64, error)

	// ListChargeable returns registered rows in insertion order (id ascending), at most limit rows
	ListChargeable(ctx context.Context, eventID uint64, limit int) ([]*entity.Registration, error)
}
