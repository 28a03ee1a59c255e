package family_test

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/authz"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/family"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func member(id uint64) entity.Actor {
	return entity.Actor{ID: id, Role: entity.RoleUser}
}

func TestPermissionLifecycle(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDBManager(t)
	service := family.NewService(db.UoW, db.Clock, db.Logger)
	authorizer := authz.NewAuthorizer(db.UoW)
	parent := db.CreateTestUser(t, "Parent", entity.RoleUser, 0, 0)
	kid := db.CreateTestUser(t, "Kid", entity.RoleUser, 0, 0)

	// Request
	perm, err := service.RequestPermission(ctx, member(parent), kid, true)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionPending, perm.Status)
	ok, err := authorizer.CanActOn(ctx, member(parent), kid)
	require.NoError(t, err)
	assert.False(t, ok, "pending permission must not delegate")

	_, err = service.RequestPermission(ctx, member(parent), kid, true)
	assert.ErrorIs(t, err, errs.ErrPermissionExists)

	// Only the target answers
	_, err = service.RespondPermission(ctx, member(parent), perm.ID, true)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	accepted, err := service.RespondPermission(ctx, member(kid), perm.ID, true)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionAccepted, accepted.Status)
	ok, err = authorizer.CanActOn(ctx, member(parent), kid)
	require.NoError(t, err)
	assert.True(t, ok)

	// Delegation is one-way
	ok, err = authorizer.CanActOn(ctx, member(kid), parent)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = service.RespondPermission(ctx, member(kid), perm.ID, false)
	assert.ErrorIs(t, err, errs.ErrPermissionNotPending)

	// Cancel, then the same pair may ask again on the same row
	canceled, err := service.CancelPermission(ctx, member(parent), perm.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionCanceled, canceled.Status)

	reopened, err := service.RequestPermission(ctx, member(parent), kid, false)
	require.NoError(t, err)
	assert.Equal(t, perm.ID, reopened.ID)
	assert.Equal(t, entity.PermissionPending, reopened.Status)
	assert.False(t, reopened.CanPay)

	list, err := service.ListPermissions(ctx, member(kid), kid)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRequestPermissionValidation(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDBManager(t)
	service := family.NewService(db.UoW, db.Clock, db.Logger)
	parent := db.CreateTestUser(t, "Parent", entity.RoleUser, 0, 0)

	t.Run("Self", func(t *testing.T) {
		_, err := service.RequestPermission(ctx, member(parent), parent, true)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Unknown target", func(t *testing.T) {
		_, err := service.RequestPermission(ctx, member(parent), 777, true)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Rejected request can be repeated", func(t *testing.T) {
		kid := db.CreateTestUser(t, "Kid", entity.RoleUser, 0, 0)
		perm, err := service.RequestPermission(ctx, member(parent), kid, true)
		require.NoError(t, err)
		_, err = service.RespondPermission(ctx, member(kid), perm.ID, false)
		require.NoError(t, err)

		again, err := service.RequestPermission(ctx, member(parent), kid, true)

		require.NoError(t, err)
		assert.Equal(t, perm.ID, again.ID)
	})
}

func TestCancelPermissionAccess(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDBManager(t)
	service := family.NewService(db.UoW, db.Clock, db.Logger)
	parent := db.CreateTestUser(t, "Parent", entity.RoleUser, 0, 0)
	kid := db.CreateTestUser(t, "Kid", entity.RoleUser, 0, 0)
	stranger := db.CreateTestUser(t, "Stranger", entity.RoleUser, 0, 0)
	adminID := db.CreateTestUser(t, "Admin", entity.RoleAdmin, 0, 0)
	permID := db.CreateTestPermission(t, parent, kid, entity.PermissionAccepted, true)

	for _, actor := range []entity.Actor{member(stranger), member(kid), {ID: adminID, Role: entity.RoleAdmin}} {
		_, err := service.CancelPermission(ctx, actor, permID)
		assert.ErrorIs(t, err, errs.ErrUnauthorized, "actor %d", actor.ID)
	}

	_, err := service.ListPermissions(ctx, member(stranger), kid)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = service.CancelPermission(ctx, member(parent), permID)
	assert.NoError(t, err)

	_, err = service.CancelPermission(ctx, member(parent), permID)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestSetPayForFamily(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDBManager(t)
	service := family.NewService(db.UoW, db.Clock, db.Logger)
	parent := db.CreateTestUser(t, "Parent", entity.RoleUser, 0, 0)
	other := db.CreateTestUser(t, "Other", entity.RoleUser, 0, 0)
	adminID := db.CreateTestUser(t, "Admin", entity.RoleAdmin, 0, 0)

	require.NoError(t, service.SetPayForFamily(ctx, member(parent), parent, true))
	user, err := db.UoW.GetUserRepository(ctx).GetByID(ctx, parent)
	require.NoError(t, err)
	assert.True(t, user.PayForFamilyMembers)

	assert.ErrorIs(t, service.SetPayForFamily(ctx, member(other), parent, false), errs.ErrUnauthorized)
	assert.NoError(t, service.SetPayForFamily(ctx, entity.Actor{ID: adminID, Role: entity.RoleAdmin}, parent, false))
}
