package user

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

// UserUseCase implements member and group bootstrap
type UserUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.UserUseCase {
	return &UserUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateUser registers a new member with an empty wallet
func (u *UserUseCase) CreateUser(ctx context.Context, actor entity.Actor, req usecase.CreateUserRequest) (*entity.User, error) {
	if err := authz.RequireAdmin(actor); err != nil {
		return nil, err
	}
	// Only a super admin may mint another super admin
	if req.Role == entity.RoleSuperAdmin && !actor.IsSuperAdmin() {
		return nil, errs.ErrUnauthorized
	}

	user, err := entity.NewUser(req.Name, req.Email, req.Role, req.NegativeBalanceLimit, u.timeProvider)
	if err != nil {
		return nil, err
	}

	users := u.uow.GetUserRepository(ctx)
	if user.Email != "" {
		if _, err := users.FindByEmail(ctx, user.Email); err == nil {
			return nil, errs.ErrDuplicateUser
		} else if !errors.Is(err, errs.ErrUserNotFound) {
			return nil, err
		}
	}

	if err := users.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"email": user.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId":   user.ID,
		"role":     string(user.Role),
		"actor_id": actor.ID,
	})
	return user, nil
}

// GetUser retrieves a member
func (u *UserUseCase) GetUser(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidRequest
	}
	return u.uow.GetUserRepository(ctx).GetByID(ctx, userID)
}

// EnsureSuperAdmin creates the configured bootstrap super admin once
func (u *UserUseCase) EnsureSuperAdmin(ctx context.Context, name, email string) (*entity.User, error) {
	if email == "" {
		return nil, errs.ErrInvalidRequest
	}

	users := u.uow.GetUserRepository(ctx)
	existing, err := users.FindByEmail(ctx, email)
	if err == nil {
		u.logger.Info("Bootstrap super admin already exists", map[string]any{
			"userId": existing.ID,
		})
		return existing, nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	user, err := entity.NewUser(name, email, entity.RoleSuperAdmin, 0, u.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}

	u.logger.Info("Bootstrap super admin created", map[string]any{
		"userId": user.ID,
	})
	return user, nil
}
