package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/authz"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// Service implements the wallet operations built on the Ledger
type Service struct {
	uow          persistence.UnitOfWork
	ledger       *Ledger
	authorizer   *authz.Authorizer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new ledger Service
func NewService(
	uow persistence.UnitOfWork,
	ledger *Ledger,
	authorizer *authz.Authorizer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.LedgerUseCase {
	return &Service{
		uow:          uow,
		ledger:       ledger,
		authorizer:   authorizer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// TopUp credits amount cents to the user's wallet
func (s *Service) TopUp(ctx context.Context, actor entity.Actor, userID uint64, amount int64) (*entity.Transaction, error) {
	if err := authz.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: top-up must be positive", errs.ErrInvalidAmount)
	}

	var txn *entity.Transaction
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		_, txn, err = s.ledger.AdjustBalance(ctx, Posting{
			UserID:      userID,
			Delta:       amount,
			Type:        entity.TxTopUp,
			Description: "Wallet top-up",
			ActorID:     &actor.ID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Wallet topped up", map[string]any{
		"user_id":  userID,
		"amount":   entity.FormatCents(amount),
		"actor_id": actor.ID,
	})
	return txn, nil
}

// AdminAdjust posts a signed manual adjustment
func (s *Service) AdminAdjust(ctx context.Context, actor entity.Actor, userID uint64, delta int64, description string) (*entity.Transaction, error) {
	if err := authz.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if delta == 0 {
		return nil, fmt.Errorf("%w: adjustment cannot be zero", errs.ErrInvalidAmount)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		description = "Admin adjustment"
	}

	var txn *entity.Transaction
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		_, txn, err = s.ledger.AdjustBalance(ctx, Posting{
			UserID:      userID,
			Delta:       delta,
			Type:        entity.TxAdminAdjustment,
			Description: description,
			ActorID:     &actor.ID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Admin adjustment posted", map[string]any{
		"user_id":  userID,
		"delta":    entity.FormatCents(delta),
		"actor_id": actor.ID,
	})
	return txn, nil
}

// CorrectTransaction rewrites an entry's amount and applies the difference to
// the owner's balance in the same unit, so balance == sum(amounts) still holds.
// No new ledger row is written.
func (s *Service) CorrectTransaction(ctx context.Context, actor entity.Actor, transactionID uint64, newAmount int64) (*entity.Transaction, error) {
	if err := authz.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var corrected *entity.Transaction
	var delta int64
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		txRepo := s.uow.GetTransactionRepository(ctx)
		txn, err := txRepo.GetForUpdate(ctx, transactionID)
		if err != nil {
			return err
		}

		delta = newAmount - txn.Amount
		if delta == 0 {
			corrected = txn
			return nil
		}

		users := s.uow.GetUserRepository(ctx)
		user, err := users.GetForUpdate(ctx, txn.UserID)
		if err != nil {
			return err
		}
		user.ApplyDelta(delta, s.timeProvider)
		if err := users.UpdateBalance(ctx, user); err != nil {
			return err
		}
		if err := txRepo.UpdateAmount(ctx, txn.ID, newAmount); err != nil {
			return err
		}

		txn.Amount = newAmount
		corrected = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transaction corrected", map[string]any{
		"transaction_id": transactionID,
		"user_id":        corrected.UserID,
		"delta":          entity.FormatCents(delta),
		"actor_id":       actor.ID,
	})
	return corrected, nil
}

// History returns the user's ledger entries, newest first
func (s *Service) History(ctx context.Context, actor entity.Actor, userID uint64, limit int) ([]*entity.Transaction, error) {
	if err := s.authorizer.RequireView(ctx, actor, userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if _, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID, limit)
}

// Balance returns the formatted wallet state
func (s *Service) Balance(ctx context.Context, actor entity.Actor, userID uint64) (*usecase.BalanceView, error) {
	if err := s.authorizer.RequireView(ctx, actor, userID); err != nil {
		return nil, err
	}
	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &usecase.BalanceView{
		UserID:               user.ID,
		Balance:              user.GetBalance(),
		NegativeBalanceLimit: entity.FormatCents(user.NegativeBalanceLimit),
		PayForFamilyMembers:  user.PayForFamilyMembers,
	}, nil
}
