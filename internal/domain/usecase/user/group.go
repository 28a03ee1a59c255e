package user

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/authz"
)

// CreateGroup creates a group; a nil maxDepositors means uncapped
func (u *UserUseCase) CreateGroup(ctx context.Context, actor entity.Actor, name string, maxDepositors *int) (*entity.Group, error) {
	if err := authz.RequireAdmin(actor); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" || (maxDepositors != nil && *maxDepositors < 0) {
		return nil, errs.ErrInvalidRequest
	}

	group := &entity.Group{
		Name:          name,
		MaxDepositors: maxDepositors,
		CreatedAt:     u.timeProvider.Now(),
	}
	if err := u.uow.GetGroupRepository(ctx).Create(ctx, group); err != nil {
		return nil, err
	}

	u.logger.Info("Group created", map[string]any{
		"groupId":  group.ID,
		"name":     group.Name,
		"actor_id": actor.ID,
	})
	return group, nil
}

// AddGroupMember adds an existing user to an existing group
func (u *UserUseCase) AddGroupMember(ctx context.Context, actor entity.Actor, groupID, userID uint64) error {
	if err := authz.RequireAdmin(actor); err != nil {
		return err
	}

	return u.uow.Execute(ctx, func(ctx context.Context) error {
		groups := u.uow.GetGroupRepository(ctx)
		if _, err := groups.GetByID(ctx, groupID); err != nil {
			return err
		}
		if _, err := u.uow.GetUserRepository(ctx).GetByID(ctx, userID); err != nil {
			return err
		}
		return groups.AddMember(ctx, groupID, userID)
	})
}
