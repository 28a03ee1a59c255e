package usecase

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// DepositUseCase defines priority deposit operations
type DepositUseCase interface {
	// HasActiveDeposit reports whether the user currently holds waitlist priority
	HasActiveDeposit(ctx context.Context, userID uint64) (bool, error)

	// CreateDeposit is the self-service path: the wallet must cover the configured amount
	CreateDeposit(ctx context.Context, actor entity.Actor, userID uint64) (*entity.Deposit, error)

	// AdminCreateDeposit creates a deposit subject to every group's depositor cap
	AdminCreateDeposit(ctx context.Context, actor entity.Actor, userID uint64) (*entity.Deposit, error)

	// RefundDeposit returns the funds and marks the deposit refunded (admin only)
	RefundDeposit(ctx context.Context, actor entity.Actor, depositID uint64) (*entity.Deposit, error)

	// History lists a user's deposits, newest first
	History(ctx context.Context, actor entity.Actor, userID uint64) ([]*entity.Deposit, error)
}
