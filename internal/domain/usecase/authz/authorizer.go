package authz

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/persistence"
)

// Authorizer answers whether an actor may act on behalf of a user
type Authorizer struct {
	uow persistence.UnitOfWork
}

// NewAuthorizer creates a new Authorizer
func NewAuthorizer(uow persistence.UnitOfWork) *Authorizer {
	return &Authorizer{uow: uow}
}

// CanActOn is true when the actor is the target, a super admin, or holds an
// accepted family permission with requester = actor and target = targetUserID.
// ctx may carry a transaction; the permission lookup then joins it.
func (a *Authorizer) CanActOn(ctx context.Context, actor entity.Actor, targetUserID uint64) (bool, error) {
	if actor.IsSelf(targetUserID) || actor.IsSuperAdmin() {
		return true, nil
	}
	if actor.ID == 0 {
		return false, nil
	}
	return a.uow.GetFamilyPermissionRepository(ctx).IsAccepted(ctx, actor.ID, targetUserID)
}

// RequireActOn is CanActOn returning ErrUnauthorized on refusal
func (a *Authorizer) RequireActOn(ctx context.Context, actor entity.Actor, targetUserID uint64) error {
	ok, err := a.CanActOn(ctx, actor, targetUserID)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrUnauthorized
	}
	return nil
}

// RequireView allows admins in addition to everyone CanActOn admits
func (a *Authorizer) RequireView(ctx context.Context, actor entity.Actor, targetUserID uint64) error {
	if actor.IsAdmin() {
		return nil
	}
	return a.RequireActOn(ctx, actor, targetUserID)
}

// RequireAdmin fails unless the actor is an admin or super admin
func RequireAdmin(actor entity.Actor) error {
	if !actor.IsAdmin() {
		return errs.ErrUnauthorized
	}
	return nil
}
