package family

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/authz"
)

// Service manages directed family permissions
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new family Service
func NewService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) usecase.FamilyUseCase {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// RequestPermission asks targetID to let the actor register and pay for them.
// A rejected or canceled row for the same pair is reused.
func (s *Service) RequestPermission(ctx context.Context, actor entity.Actor, targetID uint64, canPay bool) (*entity.FamilyPermission, error) {
	if actor.ID == 0 || targetID == actor.ID {
		return nil, errs.ErrInvalidRequest
	}

	var permission *entity.FamilyPermission
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		if _, err := s.uow.GetUserRepository(ctx).GetByID(ctx, targetID); err != nil {
			return err
		}

		repo := s.uow.GetFamilyPermissionRepository(ctx)
		existing, err := repo.FindByPair(ctx, actor.ID, targetID)
		switch {
		case errors.Is(err, errs.ErrPermissionNotFound):
			now := s.timeProvider.Now()
			permission = &entity.FamilyPermission{
				RequesterID: actor.ID,
				TargetID:    targetID,
				Status:      entity.PermissionPending,
				CanPay:      canPay,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			return repo.Create(ctx, permission)
		case err != nil:
			return err
		case existing.IsLive():
			return errs.ErrPermissionExists
		}

		existing.Reopen(canPay, s.timeProvider.Now())
		permission = existing
		return repo.Update(ctx, existing)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Family permission requested", map[string]any{
		"permission_id": permission.ID,
		"requester_id":  actor.ID,
		"target_id":     targetID,
	})
	return permission, nil
}

// RespondPermission lets the target accept or reject a pending request
func (s *Service) RespondPermission(ctx context.Context, actor entity.Actor, permissionID uint64, accept bool) (*entity.FamilyPermission, error) {
	status := entity.PermissionRejected
	if accept {
		status = entity.PermissionAccepted
	}

	permission, err := s.transition(ctx, permissionID, func(p *entity.FamilyPermission) error {
		if p.TargetID != actor.ID {
			return errs.ErrUnauthorized
		}
		if p.Status != entity.PermissionPending {
			return errs.ErrPermissionNotPending
		}
		p.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Family permission answered", map[string]any{
		"permission_id": permissionID,
		"status":        string(status),
		"actor_id":      actor.ID,
	})
	return permission, nil
}

// CancelPermission withdraws a pending or accepted permission. Only the
// requester may cancel; the target answers through RespondPermission.
func (s *Service) CancelPermission(ctx context.Context, actor entity.Actor, permissionID uint64) (*entity.FamilyPermission, error) {
	permission, err := s.transition(ctx, permissionID, func(p *entity.FamilyPermission) error {
		if p.RequesterID != actor.ID {
			return errs.ErrUnauthorized
		}
		if !p.IsLive() {
			return errs.ErrPermissionNotPending
		}
		p.Status = entity.PermissionCanceled
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Family permission canceled", map[string]any{
		"permission_id": permissionID,
		"actor_id":      actor.ID,
	})
	return permission, nil
}

// ListPermissions returns permissions where userID is either side
func (s *Service) ListPermissions(ctx context.Context, actor entity.Actor, userID uint64) ([]*entity.FamilyPermission, error) {
	if !actor.IsSelf(userID) && !actor.IsAdmin() {
		return nil, errs.ErrUnauthorized
	}
	return s.uow.GetFamilyPermissionRepository(ctx).ListByUser(ctx, userID)
}

// SetPayForFamily stores whether the user pays for family members at settlement
func (s *Service) SetPayForFamily(ctx context.Context, actor entity.Actor, userID uint64, enabled bool) error {
	if !actor.IsSelf(userID) {
		if err := authz.RequireAdmin(actor); err != nil {
			return err
		}
	}
	if err := s.uow.GetUserRepository(ctx).SetPayForFamily(ctx, userID, enabled); err != nil {
		return err
	}

	s.logger.Info("Pay-for-family preference updated", map[string]any{
		"user_id":  userID,
		"enabled":  enabled,
		"actor_id": actor.ID,
	})
	return nil
}

// transition locks a permission, applies change and persists it
func (s *Service) transition(ctx context.Context, permissionID uint64, change func(*entity.FamilyPermission) error) (*entity.FamilyPermission, error) {
	var permission *entity.FamilyPermission
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		repo := s.uow.GetFamilyPermissionRepository(ctx)
		p, err := repo.GetForUpdate(ctx, permissionID)
		if err != nil {
			return err
		}
		if err := change(p); err != nil {
			return err
		}
		p.UpdatedAt = s.timeProvider.Now()
		permission = p
		return repo.Update(ctx, p)
	})
	return permission, err
}
