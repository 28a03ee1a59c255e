package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"domain error passes through", errs.ErrCutoffWindow, errs.ErrCutoffWindow},
		{"rich domain error passes through", &errs.BalanceFloorError{UserID: 1, FloorOwner: "user"}, errs.ErrBalanceFloor},
		{"deadline exceeded", fmt.Errorf("query: %w", context.DeadlineExceeded), errs.ErrDatabaseConnection},
		{"canceled", context.Canceled, errs.ErrDatabaseConnection},
		{"record not found", gorm.ErrRecordNotFound, errs.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, errs.ErrAlreadyExists},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, errs.ErrConflict},
		{"unknown", errors.New("boom"), errs.ErrDatabaseConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tt.err, "test"), tt.expected)
		})
	}

	assert.NoError(t, mapper.MapError(nil, "test"))
}

func TestErrorMapper_IsRetryable(t *testing.T) {
	mapper := NewErrorMapper()

	assert.True(t, mapper.IsRetryable(fmt.Errorf("%w: deadlock", errs.ErrConflict)))
	assert.False(t, mapper.IsRetryable(errs.ErrAlreadyRegistered))
	assert.False(t, mapper.IsRetryable(nil))
}

func TestRetryOnConflict(t *testing.T) {
	ctx := context.Background()
	mapper := NewErrorMapper()
	log := logger.NewNoopLogger()
	config := RetryConfig{MaxRetries: 2, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
	conflict := fmt.Errorf("%w: 40001", errs.ErrConflict)

	t.Run("Succeeds after conflicts", func(t *testing.T) {
		calls := 0
		err := RetryOnConflict(ctx, config, func() error {
			calls++
			if calls < 3 {
				return conflict
			}
			return nil
		}, mapper, log)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnConflict(ctx, config, func() error {
			calls++
			return conflict
		}, mapper, log)

		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 3, calls)
	})

	t.Run("Does not retry domain errors", func(t *testing.T) {
		calls := 0
		err := RetryOnConflict(ctx, config, func() error {
			calls++
			return errs.ErrEventStarted
		}, mapper, log)

		assert.ErrorIs(t, err, errs.ErrEventStarted)
		assert.Equal(t, 1, calls)
	})

	t.Run("Zero retries runs once", func(t *testing.T) {
		calls := 0
		err := RetryOnConflict(ctx, RetryConfig{}, func() error {
			calls++
			return conflict
		}, mapper, log)

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("Stops when the context is done", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		calls := 0
		slow := RetryConfig{MaxRetries: 5, RetryInterval: time.Hour, MaxInterval: time.Hour}
		err := RetryOnConflict(canceled, slow, func() error {
			calls++
			return conflict
		}, mapper, log)

		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 1, calls)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, calculateBackoffWithJitter(0, config))
	assert.Equal(t, 40*time.Millisecond, calculateBackoffWithJitter(2, config))
	assert.Equal(t, 50*time.Millisecond, calculateBackoffWithJitter(5, config))

	config.JitterFactor = 0.5
	for i := 0; i < 20; i++ {
		d := calculateBackoffWithJitter(1, config)
		assert.GreaterOrEqual(t, d, 20*time.Millisecond)
		assert.LessOrEqual(t, d, 30*time.Millisecond)
	}
}
