package usecase

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// CreateUserRequest carries the fields of a new member
type CreateUserRequest struct {
	Name                 string
	Email                string
	Role                 entity.Role
	NegativeBalanceLimit int64
}

// UserUseCase defines member and group bootstrap operations
type UserUseCase interface {
	CreateUser(ctx context.Context, actor entity.Actor, req CreateUserRequest) (*entity.User, error)
	GetUser(ctx context.Context, userID uint64) (*entity.User, error)
	CreateGroup(ctx context.Context, actor entity.Actor, name string, maxDepositors *int) (*entity.Group, error)
	AddGroupMember(ctx context.Context, actor entity.Actor, groupID, userID uint64) error

	// EnsureSuperAdmin creates the bootstrap super admin when no user with that email exists
	EnsureSuperAdmin(ctx context.Context, name, email string) (*entity.User, error)
}
