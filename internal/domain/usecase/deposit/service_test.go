package deposit_test

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/authz"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/deposit"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const depositAmount = 5000

type fixture struct {
	db      *database.TestDBManager
	service usecase.DepositUseCase
	users   usecase.UserUseCase
	admin   entity.Actor
}

func newFixture(t *testing.T) *fixture {
	db := database.NewTestDBManager(t)
	postings := ledger.NewLedger(db.UoW, db.Clock, db.Logger)
	adminID := db.CreateTestUser(t, "Admin", entity.RoleAdmin, 0, 0)
	return &fixture{
		db:      db,
		service: deposit.NewService(db.UoW, postings, authz.NewAuthorizer(db.UoW), depositAmount, db.Clock, db.Logger),
		users:   user.NewUserUseCase(db.UoW, db.Clock, db.Logger),
		admin:   entity.Actor{ID: adminID, Role: entity.RoleAdmin},
	}
}

func member(id uint64) entity.Actor {
	return entity.Actor{ID: id, Role: entity.RoleUser}
}

func TestCreateDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("Debits the wallet", func(t *testing.T) {
		f := newFixture(t)
		userID := f.db.CreateTestUser(t, "Alice", entity.RoleUser, 6000, 0)

		d, err := f.service.CreateDeposit(ctx, member(userID), userID)

		require.NoError(t, err)
		assert.Equal(t, entity.DepositActive, d.Status)
		assert.Equal(t, int64(depositAmount), d.Amount)
		assert.Equal(t, int64(1000), f.db.Balance(t, userID))
		active, err := f.service.HasActiveDeposit(ctx, userID)
		require.NoError(t, err)
		assert.True(t, active)

		entries := f.db.Transactions(t, userID)
		require.Len(t, entries, 2)
		assert.Equal(t, string(entity.TxDeposit), entries[1].Type)
		assert.Empty(t, f.db.LedgerDrift(t))
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		f := newFixture(t)
		userID := f.db.CreateTestUser(t, "Alice", entity.RoleUser, 4999, 10000)

		_, err := f.service.CreateDeposit(ctx, member(userID), userID)

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		var detail *errs.InsufficientFundsError
		require.ErrorAs(t, err, &detail)
		assert.Equal(t, "49.99", detail.CurrBalance)
		assert.Equal(t, int64(4999), f.db.Balance(t, userID))
	})

	t.Run("One active deposit per user", func(t *testing.T) {
		f := newFixture(t)
		userID := f.db.CreateTestUser(t, "Alice", entity.RoleUser, 20000, 0)
		_, err := f.service.CreateDeposit(ctx, member(userID), userID)
		require.NoError(t, err)

		_, err = f.service.CreateDeposit(ctx, member(userID), userID)

		assert.ErrorIs(t, err, errs.ErrDepositExists)
		assert.Equal(t, int64(15000), f.db.Balance(t, userID))
	})

	t.Run("Stranger cannot deposit for someone else", func(t *testing.T) {
		f := newFixture(t)
		alice := f.db.CreateTestUser(t, "Alice", entity.RoleUser, 20000, 0)
		bob := f.db.CreateTestUser(t, "Bob", entity.RoleUser, 20000, 0)

		_, err := f.service.CreateDeposit(ctx, member(bob), alice)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestAdminCreateDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("No balance check", func(t *testing.T) {
		f := newFixture(t)
		userID := f.db.CreateTestUser(t, "Alice", entity.RoleUser, 0, 0)

		d, err := f.service.AdminCreateDeposit(ctx, f.admin, userID)

		require.NoError(t, err)
		assert.Equal(t, f.admin.ID, d.CreatedBy)
		assert.Equal(t, int64(-depositAmount), f.db.Balance(t, userID))
		assert.Empty(t, f.db.LedgerDrift(t))
	})

	t.Run("Group depositor cap", func(t *testing.T) {
		f := newFixture(t)
		alice := f.db.CreateTestUser(t, "Alice", entity.RoleUser, 0, 0)
		bob := f.db.CreateTestUser(t, "Bob", entity.RoleUser, 0, 0)
		carol := f.db.CreateTestUser(t, "Carol", entity.RoleUser, 0, 0)
		limit := 1
		capped, err := f.users.CreateGroup(ctx, f.admin, "Juniors", &limit)
		require.NoError(t, err)
		open, err := f.users.CreateGroup(ctx, f.admin, "Seniors", nil)
		require.NoError(t, err)
		require.NoError(t, f.users.AddGroupMember(ctx, f.admin, capped.ID, alice))
		require.NoError(t, f.users.AddGroupMember(ctx, f.admin, capped.ID, bob))
		require.NoError(t, f.users.AddGroupMember(ctx, f.admin, open.ID, carol))

		_, err = f.service.AdminCreateDeposit(ctx, f.admin, alice)
		require.NoError(t, err)

		_, err = f.service.AdminCreateDeposit(ctx, f.admin, bob)
		assert.ErrorIs(t, err, errs.ErrDepositorLimitReached)
		assert.ErrorIs(t, err, errs.ErrLimitExceeded)
		assert.Equal(t, int64(0), f.db.Balance(t, bob))

		_, err = f.service.AdminCreateDeposit(ctx, f.admin, carol)
		assert.NoError(t, err)
	})

	t.Run("Members cannot use the admin path", func(t *testing.T) {
		f := newFixture(t)
		userID := f.db.CreateTestUser(t, "Alice", entity.RoleUser, 0, 0)

		_, err := f.service.AdminCreateDeposit(ctx, member(userID), userID)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestRefundDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("Credits the amount back", func(t *testing.T) {
		f := newFixture(t)
		userID := f.db.CreateTestUser(t, "Alice", entity.RoleUser, 5000, 0)
		d, err := f.service.CreateDeposit(ctx, member(userID), userID)
		require.NoError(t, err)

		refunded, err := f.service.RefundDeposit(ctx, f.admin, d.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.DepositRefunded, refunded.Status)
		require.NotNil(t, refunded.RefundedBy)
		assert.Equal(t, f.admin.ID, *refunded.RefundedBy)
		assert.NotNil(t, refunded.RefundedAt)
		assert.Equal(t, int64(5000), f.db.Balance(t, userID))

		entries := f.db.Transactions(t, userID)
		assert.Equal(t, string(entity.TxDepositRefund), entries[len(entries)-1].Type)
		assert.Empty(t, f.db.LedgerDrift(t))

		active, err := f.service.HasActiveDeposit(ctx, userID)
		require.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("Refunding twice", func(t *testing.T) {
		f := newFixture(t)
		userID := f.db.CreateTestUser(t, "Alice", entity.RoleUser, 5000, 0)
		d, err := f.service.CreateDeposit(ctx, member(userID), userID)
		require.NoError(t, err)
		_, err = f.service.RefundDeposit(ctx, f.admin, d.ID)
		require.NoError(t, err)

		_, err = f.service.RefundDeposit(ctx, f.admin, d.ID)

		assert.ErrorIs(t, err, errs.ErrNotActive)
		assert.Equal(t, int64(5000), f.db.Balance(t, userID))
	})

	t.Run("A refunded user can deposit again", func(t *testing.T) {
		f := newFixture(t)
		userID := f.db.CreateTestUser(t, "Alice", entity.RoleUser, 5000, 0)
		d, err := f.service.CreateDeposit(ctx, member(userID), userID)
		require.NoError(t, err)
		_, err = f.service.RefundDeposit(ctx, f.admin, d.ID)
		require.NoError(t, err)

		_, err = f.service.CreateDeposit(ctx, member(userID), userID)
		require.NoError(t, err)

		history, err := f.service.History(ctx, member(userID), userID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, entity.DepositActive, history[0].Status)
		assert.Equal(t, entity.DepositRefunded, history[1].Status)
	})

	t.Run("Unknown deposit", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.RefundDeposit(ctx, f.admin, 321)

		assert.ErrorIs(t, err, errs.ErrDepositNotFound)
	})
}
