package deposit

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/authz"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/ledger"
)

// Service is the deposit registry
type Service struct {
	uow          persistence.UnitOfWork
	ledger       *ledger.Ledger
	authorizer   *authz.Authorizer
	amount       int64
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a deposit registry that charges amount cents per deposit
func NewService(
	uow persistence.UnitOfWork,
	ledger *ledger.Ledger,
	authorizer *authz.Authorizer,
	amount int64,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.DepositUseCase {
	return &Service{
		uow:          uow,
		ledger:       ledger,
		authorizer:   authorizer,
		amount:       amount,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// HasActiveDeposit reports whether the user holds an active deposit
func (s *Service) HasActiveDeposit(ctx context.Context, userID uint64) (bool, error) {
	return s.uow.GetDepositRepository(ctx).HasActive(ctx, userID)
}

// CreateDeposit debits the configured amount from a wallet that covers it
func (s *Service) CreateDeposit(ctx context.Context, actor entity.Actor, userID uint64) (*entity.Deposit, error) {
	if err := s.authorizer.RequireActOn(ctx, actor, userID); err != nil {
		return nil, err
	}

	var deposit *entity.Deposit
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		user, err := s.uow.GetUserRepository(ctx).GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if err := s.ensureNoActive(ctx, userID); err != nil {
			return err
		}
		if !user.CanCover(s.amount) {
			return errs.NewInsufficientFundsError(userID, entity.FormatCents(s.amount), user.GetBalance())
		}

		deposit, err = s.create(ctx, user, actor)
		return err
	})
	if err != nil {
		s.logRejected("Deposit rejected", userID, actor, err)
		return nil, err
	}

	s.logger.Info("Deposit created", map[string]any{
		"deposit_id": deposit.ID,
		"user_id":    userID,
		"amount":     entity.FormatCents(deposit.Amount),
		"actor_id":   actor.ID,
	})
	return deposit, nil
}

// AdminCreateDeposit creates a deposit without a balance check, provided no
// capped group the user belongs to has already reached its depositor cap
func (s *Service) AdminCreateDeposit(ctx context.Context, actor entity.Actor, userID uint64) (*entity.Deposit, error) {
	if err := authz.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var deposit *entity.Deposit
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		user, err := s.uow.GetUserRepository(ctx).GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if err := s.ensureNoActive(ctx, userID); err != nil {
			return err
		}
		if err := s.checkDepositorCaps(ctx, userID); err != nil {
			return err
		}

		deposit, err = s.create(ctx, user, actor)
		return err
	})
	if err != nil {
		s.logRejected("Admin deposit rejected", userID, actor, err)
		return nil, err
	}

	s.logger.Info("Deposit created by admin", map[string]any{
		"deposit_id": deposit.ID,
		"user_id":    userID,
		"actor_id":   actor.ID,
	})
	return deposit, nil
}

// RefundDeposit credits the deposit back with type deposit_refund and marks it refunded
func (s *Service) RefundDeposit(ctx context.Context, actor entity.Actor, depositID uint64) (*entity.Deposit, error) {
	if err := authz.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var deposit *entity.Deposit
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		deposits := s.uow.GetDepositRepository(ctx)
		d, err := deposits.GetForUpdate(ctx, depositID)
		if err != nil {
			return err
		}
		if !d.IsActive() {
			return errs.ErrNotActive
		}

		if _, _, err := s.ledger.AdjustBalance(ctx, ledger.Posting{
			UserID:      d.UserID,
			Delta:       d.Amount,
			Type:        entity.TxDepositRefund,
			Description: "Priority deposit refund",
			ReferenceID: fmt.Sprintf("deposit:%d", d.ID),
			ActorID:     &actor.ID,
		}); err != nil {
			return err
		}

		d.MarkRefunded(actor.ID, s.timeProvider.Now())
		if err := deposits.Update(ctx, d); err != nil {
			return err
		}
		deposit = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Deposit refunded", map[string]any{
		"deposit_id": depositID,
		"user_id":    deposit.UserID,
		"amount":     entity.FormatCents(deposit.Amount),
		"actor_id":   actor.ID,
	})
	return deposit, nil
}

// History lists a user's deposits, newest first
func (s *Service) History(ctx context.Context, actor entity.Actor, userID uint64) ([]*entity.Deposit, error) {
	if err := s.authorizer.RequireView(ctx, actor, userID); err != nil {
		return nil, err
	}
	return s.uow.GetDepositRepository(ctx).ListByUser(ctx, userID)
}

func (s *Service) ensureNoActive(ctx context.Context, userID uint64) error {
	active, err := s.uow.GetDepositRepository(ctx).HasActive(ctx, userID)
	if err != nil {
		return err
	}
	if active {
		return errs.ErrDepositExists
	}
	return nil
}

func (s *Service) checkDepositorCaps(ctx context.Context, userID uint64) error {
	// Group rows stay locked until commit, so two admins depositing for
	// members of the same group cannot both count the last free slot
	groups, err := s.uow.GetGroupRepository(ctx).LockCappedByMember(ctx, userID)
	if err != nil {
		return err
	}
	deposits := s.uow.GetDepositRepository(ctx)
	for _, g := range groups {
		count, err := deposits.CountActiveInGroup(ctx, g.ID)
		if err != nil {
			return err
		}
		if g.DepositorCapReached(count) {
			return fmt.Errorf("group %d (%d/%d): %w", g.ID, count, *g.MaxDepositors, errs.ErrDepositorLimitReached)
		}
	}
	return nil
}

// create debits the locked user and inserts the active deposit row
func (s *Service) create(ctx context.Context, user *entity.User, actor entity.Actor) (*entity.Deposit, error) {
	d := &entity.Deposit{
		UserID:    user.ID,
		Amount:    s.amount,
		Status:    entity.DepositActive,
		CreatedBy: actor.ID,
		CreatedAt: s.timeProvider.Now(),
	}
	if err := s.uow.GetDepositRepository(ctx).Create(ctx, d); err != nil {
		return nil, err
	}

	if _, _, err := s.ledger.Post(ctx, user, ledger.Posting{
		UserID:      user.ID,
		Delta:       -s.amount,
		Type:        entity.TxDeposit,
		Description: "Priority deposit",
		ReferenceID: fmt.Sprintf("deposit:%d", d.ID),
		ActorID:     &actor.ID,
	}); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) logRejected(message string, userID uint64, actor entity.Actor, err error) {
	fields := errs.LogFields(err)
	fields["user_id"] = userID
	fields["actor_id"] = actor.ID
	if errors.Is(err, errs.ErrDatabaseConnection) {
		s.logger.Error(message, fields)
		return
	}
	s.logger.Warn(message, fields)
}
