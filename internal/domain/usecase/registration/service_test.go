package registration_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/authz"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/registration"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db      *database.TestDBManager
	service usecase.RegistrationUseCase
	adminID uint64
	start   time.Time
}

func newFixture(t *testing.T) *fixture {
	db := database.NewTestDBManager(t)
	return &fixture{
		db:      db,
		service: registration.NewService(db.UoW, authz.NewAuthorizer(db.UoW), db.Clock, db.Logger),
		adminID: db.CreateTestUser(t, "Admin", entity.RoleAdmin, 0, 0),
		start:   database.TestEpoch.Add(7 * 24 * time.Hour),
	}
}

func (f *fixture) users(t *testing.T, n int) []uint64 {
	ids := make([]uint64, n)
	for i := range ids {
		ids[i] = f.db.CreateTestUser(t, "Member", entity.RoleUser, 0, 0)
	}
	return ids
}

func (f *fixture) register(t *testing.T, eventID, userID uint64) *usecase.RegisterResult {
	t.Helper()
	res, err := f.service.Register(context.Background(), self(userID), eventID, userID)
	require.NoError(t, err)
	return res
}

func self(id uint64) entity.Actor {
	return entity.Actor{ID: id, Role: entity.RoleUser}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Fills slots then waitlists", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 3)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 2, 0, f.start, f.adminID)

		assert.Equal(t, entity.RegistrationRegistered, f.register(t, eventID, u[0]).Status)
		assert.Equal(t, entity.RegistrationRegistered, f.register(t, eventID, u[1]).Status)
		third := f.register(t, eventID, u[2])

		assert.Equal(t, entity.RegistrationWaitlist, third.Status)
		assert.Nil(t, third.BumpedUserID)
		assert.Equal(t, int64(2), f.db.CountRegisteredByStatus(t, eventID, entity.RegistrationRegistered))
	})

	t.Run("Depositor bumps newest non-depositor", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 4)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 3, 0, f.start, f.adminID)
		f.db.CreateTestDeposit(t, u[1])
		f.db.CreateTestDeposit(t, u[3])

		for _, id := range u[:3] {
			f.register(t, eventID, id)
		}
		res := f.register(t, eventID, u[3])

		assert.Equal(t, entity.RegistrationRegistered, res.Status)
		require.NotNil(t, res.BumpedUserID)
		assert.Equal(t, u[2], *res.BumpedUserID)

		statuses := f.db.Statuses(t, eventID)
		assert.Equal(t, entity.RegistrationRegistered, statuses[u[0]])
		assert.Equal(t, entity.RegistrationRegistered, statuses[u[1]])
		assert.Equal(t, entity.RegistrationWaitlist, statuses[u[2]])
		assert.Equal(t, entity.RegistrationRegistered, statuses[u[3]])
		assert.Equal(t, int64(3), f.db.CountRegisteredByStatus(t, eventID, entity.RegistrationRegistered))
	})

	t.Run("Depositor waits when every registered user holds a deposit", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 3)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 2, 0, f.start, f.adminID)
		for _, id := range u {
			f.db.CreateTestDeposit(t, id)
		}

		f.register(t, eventID, u[0])
		f.register(t, eventID, u[1])
		res := f.register(t, eventID, u[2])

		assert.Equal(t, entity.RegistrationWaitlist, res.Status)
		assert.Nil(t, res.BumpedUserID)
	})

	t.Run("Zero capacity waitlists everyone", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 1)
		eventID := f.db.CreateTestEvent(t, "Closed court", 0, 0, f.start, f.adminID)
		f.db.CreateTestDeposit(t, u[0])

		res := f.register(t, eventID, u[0])

		assert.Equal(t, entity.RegistrationWaitlist, res.Status)
	})

	t.Run("Active registration is rejected", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 2)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 1, 0, f.start, f.adminID)
		f.register(t, eventID, u[0])
		f.register(t, eventID, u[1])

		_, err := f.service.Register(ctx, self(u[0]), eventID, u[0])
		assert.ErrorIs(t, err, errs.ErrAlreadyRegistered)

		_, err = f.service.Register(ctx, self(u[1]), eventID, u[1])
		assert.ErrorIs(t, err, errs.ErrAlreadyRegistered)
	})

	t.Run("Re-registration reuses the canceled row", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 1)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 4, 0, f.start, f.adminID)

		first := f.register(t, eventID, u[0])
		_, err := f.service.Cancel(ctx, self(u[0]), eventID, u[0])
		require.NoError(t, err)
		second := f.register(t, eventID, u[0])

		assert.Equal(t, first.RegistrationID, second.RegistrationID)
		assert.Equal(t, entity.RegistrationRegistered, second.Status)
		assert.Len(t, f.db.Statuses(t, eventID), 1)
	})

	t.Run("Stranger cannot register someone else", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 2)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 4, 0, f.start, f.adminID)

		_, err := f.service.Register(ctx, self(u[0]), eventID, u[1])

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Empty(t, f.db.Statuses(t, eventID))
	})

	t.Run("Plain admin needs a family permission too", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 1)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 4, 0, f.start, f.adminID)

		_, err := f.service.Register(ctx, entity.Actor{ID: f.adminID, Role: entity.RoleAdmin}, eventID, u[0])

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Accepted family permission delegates registration", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 2)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 4, 0, f.start, f.adminID)
		f.db.CreateTestPermission(t, u[0], u[1], entity.PermissionAccepted, true)

		res, err := f.service.Register(ctx, self(u[0]), eventID, u[1])
		require.NoError(t, err)

		roster, err := f.service.Roster(ctx, eventID)
		require.NoError(t, err)
		require.Len(t, roster.Registered, 1)
		assert.Equal(t, res.RegistrationID, roster.Registered[0].RegistrationID)
		require.NotNil(t, roster.Registered[0].RegisteredBy)
		assert.Equal(t, u[0], *roster.Registered[0].RegisteredBy)
	})

	t.Run("Pending permission does not delegate", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 2)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 4, 0, f.start, f.adminID)
		f.db.CreateTestPermission(t, u[0], u[1], entity.PermissionPending, true)

		_, err := f.service.Register(ctx, self(u[0]), eventID, u[1])

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Inside cutoff window", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 1)
		eventID := f.db.CreateTestEvent(t, "Soon", 4, 0, database.TestEpoch.Add(2*time.Hour), f.adminID)
		f.db.UpdateEventColumns(t, eventID, map[string]any{"registration_cutoff_hours": 24})

		_, err := f.service.Register(ctx, self(u[0]), eventID, u[0])

		assert.ErrorIs(t, err, errs.ErrCutoffWindow)
		assert.ErrorIs(t, err, errs.ErrLimitExceeded)
		var cutoff *errs.CutoffError
		require.ErrorAs(t, err, &cutoff)
		assert.Equal(t, 24, cutoff.CutoffHours)
	})

	t.Run("Super admin skips event validations", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 1)
		rootID := f.db.CreateTestUser(t, "Root", entity.RoleSuperAdmin, 0, 0)
		eventID := f.db.CreateTestEvent(t, "Soon", 4, 1500, database.TestEpoch.Add(2*time.Hour), f.adminID)
		f.db.UpdateEventColumns(t, eventID, map[string]any{"registration_cutoff_hours": 24})

		res, err := f.service.Register(ctx, entity.Actor{ID: rootID, Role: entity.RoleSuperAdmin}, eventID, u[0])

		require.NoError(t, err)
		assert.Equal(t, entity.RegistrationRegistered, res.Status)
	})

	t.Run("Started event", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 1)
		eventID := f.db.CreateTestEvent(t, "Yesterday", 4, 0, database.TestEpoch.Add(-24*time.Hour), f.adminID)

		_, err := f.service.Register(ctx, self(u[0]), eventID, u[0])

		assert.ErrorIs(t, err, errs.ErrEventStarted)
	})

	t.Run("Closed event", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 1)
		eventID := f.db.CreateTestEvent(t, "Done", 4, 0, f.start, f.adminID)
		f.db.UpdateEventColumns(t, eventID, map[string]any{"status": string(entity.EventClosed)})

		_, err := f.service.Register(ctx, self(u[0]), eventID, u[0])

		assert.ErrorIs(t, err, errs.ErrAlreadyClosed)
	})

	t.Run("Unknown event", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 1)

		_, err := f.service.Register(ctx, self(u[0]), 9999, u[0])

		assert.ErrorIs(t, err, errs.ErrEventNotFound)
	})
}

func TestRegisterBalanceFloors(t *testing.T) {
	ctx := context.Background()

	t.Run("Personal floor", func(t *testing.T) {
		f := newFixture(t)
		userID := f.db.CreateTestUser(t, "Broke", entity.RoleUser, 500, 0)
		eventID := f.db.CreateTestEvent(t, "Paid", 4, 1000, f.start, f.adminID)
		f.db.UpdateEventColumns(t, eventID, map[string]any{"negative_balance_limit": 10000})

		_, err := f.service.Register(ctx, self(userID), eventID, userID)

		var floorErr *errs.BalanceFloorError
		require.ErrorAs(t, err, &floorErr)
		assert.Equal(t, "user", floorErr.FloorOwner)
		assert.ErrorIs(t, err, errs.ErrLimitExceeded)
	})

	t.Run("Event floor", func(t *testing.T) {
		f := newFixture(t)
		userID := f.db.CreateTestUser(t, "Credit", entity.RoleUser, 500, 10000)
		eventID := f.db.CreateTestEvent(t, "Paid", 4, 1000, f.start, f.adminID)

		_, err := f.service.Register(ctx, self(userID), eventID, userID)

		var floorErr *errs.BalanceFloorError
		require.ErrorAs(t, err, &floorErr)
		assert.Equal(t, "event", floorErr.FloorOwner)
		assert.Equal(t, "0.00", floorErr.Floor)
	})

	t.Run("Within both floors", func(t *testing.T) {
		f := newFixture(t)
		userID := f.db.CreateTestUser(t, "Credit", entity.RoleUser, 500, 1000)
		eventID := f.db.CreateTestEvent(t, "Paid", 4, 1000, f.start, f.adminID)
		f.db.UpdateEventColumns(t, eventID, map[string]any{"negative_balance_limit": 500})

		res, err := f.service.Register(ctx, self(userID), eventID, userID)

		require.NoError(t, err)
		assert.Equal(t, entity.RegistrationRegistered, res.Status)
		assert.Equal(t, int64(500), f.db.Balance(t, userID), "registration does not charge")
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Promotes oldest waitlisted depositor", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 5)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 2, 0, f.start, f.adminID)
		f.register(t, eventID, u[0])
		f.register(t, eventID, u[1])
		f.register(t, eventID, u[2]) // waitlist, no deposit, waiting longest
		f.db.CreateTestDeposit(t, u[3])
		f.db.CreateTestDeposit(t, u[4])
		f.db.CreateTestDeposit(t, u[0])
		f.db.CreateTestDeposit(t, u[1])
		f.register(t, eventID, u[3]) // waitlist: every registered user holds a deposit
		f.register(t, eventID, u[4])

		res, err := f.service.Cancel(ctx, self(u[0]), eventID, u[0])

		require.NoError(t, err)
		require.NotNil(t, res.PromotedUserID)
		assert.Equal(t, u[3], *res.PromotedUserID)
		statuses := f.db.Statuses(t, eventID)
		assert.Equal(t, entity.RegistrationCanceled, statuses[u[0]])
		assert.Equal(t, entity.RegistrationWaitlist, statuses[u[2]])
		assert.Equal(t, entity.RegistrationRegistered, statuses[u[3]])
		assert.Equal(t, entity.RegistrationWaitlist, statuses[u[4]])
	})

	t.Run("Promotes oldest waitlisted user without depositors", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 4)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 2, 0, f.start, f.adminID)
		for _, id := range u {
			f.register(t, eventID, id)
		}

		res, err := f.service.Cancel(ctx, self(u[1]), eventID, u[1])

		require.NoError(t, err)
		require.NotNil(t, res.PromotedUserID)
		assert.Equal(t, u[2], *res.PromotedUserID)
	})

	t.Run("Waitlisted cancellation promotes nobody", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 3)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 1, 0, f.start, f.adminID)
		for _, id := range u {
			f.register(t, eventID, id)
		}

		res, err := f.service.Cancel(ctx, self(u[1]), eventID, u[1])

		require.NoError(t, err)
		assert.Nil(t, res.PromotedUserID)
		assert.Equal(t, entity.RegistrationWaitlist, f.db.Statuses(t, eventID)[u[2]])
	})

	t.Run("Already canceled", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 1)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 2, 0, f.start, f.adminID)
		f.register(t, eventID, u[0])
		_, err := f.service.Cancel(ctx, self(u[0]), eventID, u[0])
		require.NoError(t, err)

		_, err = f.service.Cancel(ctx, self(u[0]), eventID, u[0])

		assert.ErrorIs(t, err, errs.ErrRegistrationCanceled)
	})

	t.Run("Never registered", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 1)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 2, 0, f.start, f.adminID)

		_, err := f.service.Cancel(ctx, self(u[0]), eventID, u[0])

		assert.ErrorIs(t, err, errs.ErrRegistrationNotFound)
	})

	t.Run("Cutoff applies to members only", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 1)
		rootID := f.db.CreateTestUser(t, "Root", entity.RoleSuperAdmin, 0, 0)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 2, 0, f.start, f.adminID)
		f.register(t, eventID, u[0])
		f.db.UpdateEventColumns(t, eventID, map[string]any{"starts_at": database.TestEpoch.Add(3 * time.Hour), "registration_cutoff_hours": 12})

		_, err := f.service.Cancel(ctx, self(u[0]), eventID, u[0])
		assert.ErrorIs(t, err, errs.ErrCutoffWindow)

		_, err = f.service.Cancel(ctx, entity.Actor{ID: rootID, Role: entity.RoleSuperAdmin}, eventID, u[0])
		assert.NoError(t, err)
	})
}

func TestUpdateEventCapacity(t *testing.T) {
	ctx := context.Background()
	admin := func(f *fixture) entity.Actor { return entity.Actor{ID: f.adminID, Role: entity.RoleAdmin} }

	t.Run("Decrease demotes newest non-depositors first", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 5)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 5, 0, f.start, f.adminID)
		f.db.CreateTestDeposit(t, u[0])
		f.db.CreateTestDeposit(t, u[3])
		for _, id := range u {
			f.register(t, eventID, id)
		}

		res, err := f.service.UpdateEventCapacity(ctx, admin(f), eventID, 3)

		require.NoError(t, err)
		assert.Equal(t, &usecase.CapacityResult{
			EventID:       eventID,
			OldMaxPlayers: 5,
			NewMaxPlayers: 3,
			Demoted:       2,
		}, res)
		statuses := f.db.Statuses(t, eventID)
		assert.Equal(t, entity.RegistrationWaitlist, statuses[u[4]])
		assert.Equal(t, entity.RegistrationWaitlist, statuses[u[2]])
		assert.Equal(t, entity.RegistrationRegistered, statuses[u[3]])
		assert.Equal(t, int64(3), f.db.CountRegisteredByStatus(t, eventID, entity.RegistrationRegistered))
	})

	t.Run("Decrease reaches depositors when non-depositors run out", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 5)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 5, 0, f.start, f.adminID)
		for _, id := range u[:4] {
			f.db.CreateTestDeposit(t, id)
		}
		for _, id := range u {
			f.register(t, eventID, id)
		}

		res, err := f.service.UpdateEventCapacity(ctx, admin(f), eventID, 3)

		require.NoError(t, err)
		assert.Equal(t, 2, res.Demoted)
		assert.Equal(t, 1, res.DemotedWithDeposit)
		statuses := f.db.Statuses(t, eventID)
		assert.Equal(t, entity.RegistrationWaitlist, statuses[u[4]])
		assert.Equal(t, entity.RegistrationWaitlist, statuses[u[3]])
		assert.Equal(t, entity.RegistrationRegistered, statuses[u[2]])
	})

	t.Run("Increase promotes depositors first", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 5)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 1, 0, f.start, f.adminID)
		for _, id := range u {
			f.register(t, eventID, id)
		}
		f.db.CreateTestDeposit(t, u[4])

		res, err := f.service.UpdateEventCapacity(ctx, admin(f), eventID, 3)

		require.NoError(t, err)
		assert.Equal(t, 2, res.Promoted)
		assert.Equal(t, 1, res.PromotedWithDeposit)
		statuses := f.db.Statuses(t, eventID)
		assert.Equal(t, entity.RegistrationRegistered, statuses[u[4]])
		assert.Equal(t, entity.RegistrationRegistered, statuses[u[1]])
		assert.Equal(t, entity.RegistrationWaitlist, statuses[u[2]])
		assert.Equal(t, entity.RegistrationWaitlist, statuses[u[3]])
	})

	t.Run("Increase beyond waitlist promotes everyone", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 3)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 1, 0, f.start, f.adminID)
		for _, id := range u {
			f.register(t, eventID, id)
		}

		res, err := f.service.UpdateEventCapacity(ctx, admin(f), eventID, 10)

		require.NoError(t, err)
		assert.Equal(t, 2, res.Promoted)
		assert.Zero(t, f.db.CountRegisteredByStatus(t, eventID, entity.RegistrationWaitlist))
	})

	t.Run("Members cannot change capacity", func(t *testing.T) {
		f := newFixture(t)
		u := f.users(t, 1)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 1, 0, f.start, f.adminID)

		_, err := f.service.UpdateEventCapacity(ctx, self(u[0]), eventID, 3)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Negative capacity", func(t *testing.T) {
		f := newFixture(t)
		eventID := f.db.CreateTestEvent(t, "Friday futsal", 1, 0, f.start, f.adminID)

		_, err := f.service.UpdateEventCapacity(ctx, admin(f), eventID, -1)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestRoster(t *testing.T) {
	f := newFixture(t)
	u := f.users(t, 4)
	eventID := f.db.CreateTestEvent(t, "Friday futsal", 2, 0, f.start, f.adminID)
	f.db.CreateTestDeposit(t, u[3])
	for _, id := range u {
		f.register(t, eventID, id)
	}

	roster, err := f.service.Roster(context.Background(), eventID)

	require.NoError(t, err)
	assert.Equal(t, 2, roster.MaxPlayers)
	require.Len(t, roster.Registered, 2)
	require.Len(t, roster.Waitlist, 2)

	assert.Equal(t, 1, roster.Registered[0].Index)
	assert.Equal(t, u[0], roster.Registered[0].UserID)
	assert.Equal(t, u[3], roster.Registered[1].UserID)
	assert.True(t, roster.Registered[1].HasDeposit)

	// u[1] was bumped back to the waitlist, keeping its original created_at
	assert.Equal(t, 3, roster.Waitlist[0].Index)
	assert.Equal(t, u[1], roster.Waitlist[0].UserID)
	assert.Equal(t, 4, roster.Waitlist[1].Index)
	assert.Equal(t, u[2], roster.Waitlist[1].UserID)
}
