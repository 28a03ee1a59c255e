package persistence

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// DepositRepository defines deposit data operations
type DepositRepository interface {
	// Create inserts a new deposit and sets its ID
	Create(ctx context.Context, deposit *entity.Deposit) error

	// GetForUpdate retrieves a deposit and locks its row
	//
	// Possible errors:
	// - ErrDepositNotFound: If the deposit doesn't exist
	GetForUpdate(ctx context.Context, id uint64) (*entity.Deposit, error)

	// Update writes the status and refund fields
	Update(ctx context.Context, deposit *entity.Deposit) error

	// HasActive reports whether the user holds an active deposit
	HasActive(ctx context.Context, userID uint64) (bool, error)

	// ActiveHolders returns the subset of userIDs holding an active deposit
	ActiveHolders(ctx context.Context, userIDs []uint64) (map[uint64]bool, error)

	// CountActiveInGroup counts members of the group holding an active deposit
	CountActiveInGroup(ctx context.Context, groupID uint64) (int64, error)

	// ListByUser returns the user's deposits, newest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Deposit, error)
}
