package usecase

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// FamilyUseCase manages family permissions and the pay-for-family preference
type FamilyUseCase interface {
	RequestPermission(ctx context.Context, actor entity.Actor, targetID uint64, canPay bool) (*entity.FamilyPermission, error)
	RespondPermission(ctx context.Context, actor entity.Actor, permissionID uint64, accept bool) (*entity.FamilyPermission, error)
	CancelPermission(ctx context.Context, actor entity.Actor, permissionID uint64) (*entity.FamilyPermission, error)
	ListPermissions(ctx context.Context, actor entity.Actor, userID uint64) ([]*entity.FamilyPermission, error)
	SetPayForFamily(ctx context.Context, actor entity.Actor, userID uint64, enabled bool) error
}
