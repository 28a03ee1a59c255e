package ledger_test

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/authz"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*database.TestDBManager, *ledger.Ledger, usecase.LedgerUseCase, entity.Actor) {
	db := database.NewTestDBManager(t)
	postings := ledger.NewLedger(db.UoW, db.Clock, db.Logger)
	service := ledger.NewService(db.UoW, postings, authz.NewAuthorizer(db.UoW), db.Clock, db.Logger)
	adminID := db.CreateTestUser(t, "Admin", entity.RoleAdmin, 0, 0)
	return db, postings, service, entity.Actor{ID: adminID, Role: entity.RoleAdmin}
}

func TestAdjustBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes balance and entry together", func(t *testing.T) {
		db, postings, _, admin := setup(t)
		userID := db.CreateTestUser(t, "Alice", entity.RoleUser, 1000, 0)

		var balance int64
		err := db.UoW.Execute(ctx, func(ctx context.Context) error {
			var err error
			balance, _, err = postings.AdjustBalance(ctx, ledger.Posting{
				UserID:      userID,
				Delta:       -2500,
				Type:        entity.TxPayment,
				Description: "Court fee",
				ReferenceID: "event:7",
				ActorID:     &admin.ID,
			})
			return err
		})

		require.NoError(t, err)
		assert.Equal(t, int64(-1500), balance)
		assert.Equal(t, int64(-1500), db.Balance(t, userID))
		assert.Empty(t, db.LedgerDrift(t))
	})

	t.Run("Failure later in the unit rolls the posting back", func(t *testing.T) {
		db, postings, _, _ := setup(t)
		userID := db.CreateTestUser(t, "Alice", entity.RoleUser, 1000, 0)

		err := db.UoW.Execute(ctx, func(ctx context.Context) error {
			if _, _, err := postings.AdjustBalance(ctx, ledger.Posting{UserID: userID, Delta: 500, Type: entity.TxTopUp}); err != nil {
				return err
			}
			_, _, err := postings.AdjustBalance(ctx, ledger.Posting{UserID: 9999, Delta: 500, Type: entity.TxTopUp})
			return err
		})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Equal(t, int64(1000), db.Balance(t, userID))
		assert.Len(t, db.Transactions(t, userID), 1)
	})

	t.Run("Unknown type", func(t *testing.T) {
		db, postings, _, _ := setup(t)
		userID := db.CreateTestUser(t, "Alice", entity.RoleUser, 0, 0)

		err := db.UoW.Execute(ctx, func(ctx context.Context) error {
			_, _, err := postings.AdjustBalance(ctx, ledger.Posting{UserID: userID, Delta: 1, Type: "bonus"})
			return err
		})

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Empty(t, db.Transactions(t, userID))
	})
}

func TestLedgerService(t *testing.T) {
	ctx := context.Background()

	t.Run("Top-up", func(t *testing.T) {
		db, _, service, admin := setup(t)
		userID := db.CreateTestUser(t, "Alice", entity.RoleUser, 0, 0)

		txn, err := service.TopUp(ctx, admin, userID, 2550)

		require.NoError(t, err)
		assert.Equal(t, "25.50", txn.FormattedAmount())
		assert.Equal(t, entity.TxTopUp, txn.Type)
		assert.Equal(t, int64(2550), db.Balance(t, userID))
	})

	t.Run("Top-up requires admin and a positive amount", func(t *testing.T) {
		db, _, service, admin := setup(t)
		userID := db.CreateTestUser(t, "Alice", entity.RoleUser, 0, 0)

		_, err := service.TopUp(ctx, entity.Actor{ID: userID, Role: entity.RoleUser}, userID, 100)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)

		_, err = service.TopUp(ctx, admin, userID, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Adjustment may go negative", func(t *testing.T) {
		db, _, service, admin := setup(t)
		userID := db.CreateTestUser(t, "Alice", entity.RoleUser, 300, 0)

		txn, err := service.AdminAdjust(ctx, admin, userID, -1000, "  Lost bib  ")

		require.NoError(t, err)
		assert.Equal(t, "Lost bib", txn.Description)
		assert.Equal(t, int64(-700), db.Balance(t, userID))
		assert.Empty(t, db.LedgerDrift(t))
	})

	t.Run("Correction moves the balance by the difference", func(t *testing.T) {
		db, _, service, admin := setup(t)
		userID := db.CreateTestUser(t, "Alice", entity.RoleUser, 0, 0)
		txn, err := service.AdminAdjust(ctx, admin, userID, -1500, "Court fee")
		require.NoError(t, err)

		corrected, err := service.CorrectTransaction(ctx, admin, txn.ID, -1000)

		require.NoError(t, err)
		assert.Equal(t, int64(-1000), corrected.Amount)
		assert.Equal(t, int64(-1000), db.Balance(t, userID))
		assert.Len(t, db.Transactions(t, userID), 1)
		assert.Empty(t, db.LedgerDrift(t))
	})

	t.Run("Correcting an unknown entry", func(t *testing.T) {
		_, _, service, admin := setup(t)

		_, err := service.CorrectTransaction(ctx, admin, 555, 100)

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("History is newest first and limited", func(t *testing.T) {
		db, _, service, admin := setup(t)
		userID := db.CreateTestUser(t, "Alice", entity.RoleUser, 100, 0)
		for _, amount := range []int64{200, 300, 400} {
			_, err := service.TopUp(ctx, admin, userID, amount)
			require.NoError(t, err)
		}

		history, err := service.History(ctx, entity.Actor{ID: userID, Role: entity.RoleUser}, userID, 2)

		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, int64(400), history[0].Amount)
		assert.Equal(t, int64(300), history[1].Amount)
	})

	t.Run("History of another member is refused", func(t *testing.T) {
		db, _, service, _ := setup(t)
		alice := db.CreateTestUser(t, "Alice", entity.RoleUser, 0, 0)
		bob := db.CreateTestUser(t, "Bob", entity.RoleUser, 0, 0)

		_, err := service.History(ctx, entity.Actor{ID: bob, Role: entity.RoleUser}, alice, 10)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Balance view", func(t *testing.T) {
		db, _, service, admin := setup(t)
		userID := db.CreateTestUser(t, "Alice", entity.RoleUser, -1015, 2000)
		db.SetPayForFamily(t, userID, true)

		view, err := service.Balance(ctx, admin, userID)

		require.NoError(t, err)
		assert.Equal(t, &usecase.BalanceView{
			UserID:               userID,
			Balance:              "-10.15",
			NegativeBalanceLimit: "20.00",
			PayForFamilyMembers:  true,
		}, view)
	})
}
