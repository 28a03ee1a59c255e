package usecase

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// BalanceView is the formatted wallet state of a user
type BalanceView struct {
	UserID               uint64 `json:"userId"`
	Balance              string `json:"balance"`
	NegativeBalanceLimit string `json:"negativeBalanceLimit"`
	PayForFamilyMembers  bool   `json:"payForFamilyMembers"`
}

// LedgerUseCase defines wallet operations exposed to the API
type LedgerUseCase interface {
	// TopUp credits a user's wallet (admin only)
	TopUp(ctx context.Context, actor entity.Actor, userID uint64, amount int64) (*entity.Transaction, error)

	// AdminAdjust posts a signed manual adjustment (admin only)
	AdminAdjust(ctx context.Context, actor entity.Actor, userID uint64, delta int64, description string) (*entity.Transaction, error)

	// CorrectTransaction rewrites a ledger entry's amount and moves the balance by the difference (admin only)
	CorrectTransaction(ctx context.Context, actor entity.Actor, transactionID uint64, newAmount int64) (*entity.Transaction, error)

	// History returns a user's ledger entries, newest first
	History(ctx context.Context, actor entity.Actor, userID uint64, limit int) ([]*entity.Transaction, error)

	// Balance returns a user's formatted balance
	Balance(ctx context.Context, actor entity.Actor, userID uint64) (*BalanceView, error)
}
