package persistence

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// TransactionRepository defines ledger log operations. The log is append-only
// except for UpdateAmount, which serves the admin correction path.
type TransactionRepository interface {
	// Create appends a ledger entry and sets its ID
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetForUpdate retrieves a ledger entry and locks its row
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the entry doesn't exist
	GetForUpdate(ctx context.Context, id uint64) (*entity.Transaction, error)

	// UpdateAmount rewrites the amount of an entry
	UpdateAmount(ctx context.Context, id uint64, amount int64) error

	// ListByUser returns the user's entries, newest first, at most limit rows
	ListByUser(ctx context.Context, userID uint64, limit int) ([]*entity.Transaction, error)

	// SumByUser returns the sum of the user's entry amounts
	SumByUser(ctx context.Context, userID uint64) (int64, error)
}
