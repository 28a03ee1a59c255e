package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	errorMapper  *ErrorMapper
	retryConfig  RetryConfig
	metrics      *MetricsCollector
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, retryConfig RetryConfig) *UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		errorMapper:  NewErrorMapper(),
		retryConfig:  retryConfig,
		metrics:      NewMetricsCollector(logger, timeProvider, slowTransactionThreshold),
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction", nil)

	var tx *gorm.DB
	if u.db.Dialector.Name() == DriverPostgres {
		// Row locks on events and users do the serialising; READ COMMITTED is enough
		tx = u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelReadCommitted})
	} else {
		tx = u.db.WithContext(ctx).Begin()
	}
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.errorMapper.MapError(fmt.Errorf("failed to begin transaction: %w", tx.Error), "begin")
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return u.errorMapper.MapError(fmt.Errorf("failed to commit transaction: %w", err), "commit")
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// Execute runs fn inside one transaction. A context that already carries a
// transaction joins it. Lock conflicts roll back and rerun fn from the start.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	return RetryOnConflict(ctx, u.retryConfig, func() error {
		_, err := u.metrics.MeasureTransaction(ctx, func() error {
			return u.executeOnce(ctx, fn)
		})
		return err
	}, u.errorMapper, u.logger)
}

func (u *UnitOfWork) executeOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	txCtx, err := u.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = u.Rollback(txCtx)
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := u.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Rollback after failure also failed", map[string]any{
				"error":          err.Error(),
				"rollback_error": rbErr.Error(),
			})
		}
		return u.errorMapper.MapError(err, "transaction")
	}

	return u.Commit(txCtx)
}

// GetUserRepository returns a user repository in the current transaction
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetEventRepository returns an event repository in the current transaction
func (u *UnitOfWork) GetEventRepository(ctx context.Context) persistence.EventRepository {
	return repository.NewEventRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetRegistrationRepository returns a registration repository in the current transaction
func (u *UnitOfWork) GetRegistrationRepository(ctx context.Context) persistence.RegistrationRepository {
	return repository.NewRegistrationRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetDepositRepository returns a deposit repository in the current transaction
func (u *UnitOfWork) GetDepositRepository(ctx context.Context) persistence.DepositRepository {
	return repository.NewDepositRepository(u.getDbFromContext(ctx), u.logger)
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetFamilyPermissionRepository returns a family permission repository in the current transaction
func (u *UnitOfWork) GetFamilyPermissionRepository(ctx context.Context) persistence.FamilyPermissionRepository {
	return repository.NewFamilyPermissionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetGroupRepository returns a group repository in the current transaction
func (u *UnitOfWork) GetGroupRepository(ctx context.Context) persistence.GroupRepository {
	return repository.NewGroupRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)
