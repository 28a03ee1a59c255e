package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Execute runs fn inside one transaction, committing on nil and rolling back otherwise
	Execute(ctx context.Context, fn func(ctx context.Context) error) error

	// Repositories below are bound to the transaction carried by ctx, if any
	GetUserRepository(ctx context.Context) UserRepository
	GetEventRepository(ctx context.Context) EventRepository
	GetRegistrationRepository(ctx context.Context) RegistrationRepository
	GetDepositRepository(ctx context.Context) DepositRepository
	GetTransactionRepository(ctx context.Context) TransactionRepository
	GetFamilyPermissionRepository(ctx context.Context) FamilyPermissionRepository
	GetGroupRepository(ctx context.Context) GroupRepository
}
