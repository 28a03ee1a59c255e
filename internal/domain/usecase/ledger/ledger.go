package ledger

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/persistence"
)

// Posting describes one balance movement and the ledger entry recording it
type Posting struct {
	UserID      uint64
	Delta       int64
	Type        entity.TransactionType
	Description string
	ReferenceID string
	ActorID     *uint64
}

// Ledger is the balance primitive every money-moving operation goes through.
// It must run on a context produced by UnitOfWork.Begin or Execute so the
// balance write and its log entry commit together.
type Ledger struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLedger creates a new Ledger
func NewLedger(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Ledger {
	return &Ledger{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AdjustBalance locks the user row, applies the delta and appends exactly one
// transaction whose amount equals the delta. The resulting sign is not checked.
func (l *Ledger) AdjustBalance(ctx context.Context, p Posting) (int64, *entity.Transaction, error) {
	user, err := l.uow.GetUserRepository(ctx).GetForUpdate(ctx, p.UserID)
	if err != nil {
		return 0, nil, err
	}
	return l.Post(ctx, user, p)
}

// Post is AdjustBalance for a user the caller already locked with GetForUpdate
func (l *Ledger) Post(ctx context.Context, user *entity.User, p Posting) (int64, *entity.Transaction, error) {
	if user.ID != p.UserID {
		return 0, nil, fmt.Errorf("%w: posting for user %d applied to user %d", errs.ErrInternalServer, p.UserID, user.ID)
	}
	if !p.Type.IsValid() {
		return 0, nil, fmt.Errorf("%w: unknown transaction type %q", errs.ErrInvalidRequest, p.Type)
	}

	newBalance := user.ApplyDelta(p.Delta, l.timeProvider)
	if err := l.uow.GetUserRepository(ctx).UpdateBalance(ctx, user); err != nil {
		return 0, nil, err
	}

	txn := &entity.Transaction{
		UserID:      p.UserID,
		Amount:      p.Delta,
		Type:        p.Type,
		Description: p.Description,
		ReferenceID: p.ReferenceID,
		CreatedBy:   p.ActorID,
		CreatedAt:   l.timeProvider.Now(),
	}
	if err := l.uow.GetTransactionRepository(ctx).Create(ctx, txn); err != nil {
		return 0, nil, err
	}

	l.logger.Debug("Balance adjusted", map[string]any{
		"user_id":        p.UserID,
		"delta":          entity.FormatCents(p.Delta),
		"type":           string(p.Type),
		"new_balance":    entity.FormatCents(newBalance),
		"transaction_id": txn.ID,
	})

	return newBalance, txn, nil
}
