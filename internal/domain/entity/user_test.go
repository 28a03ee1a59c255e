package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/club-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("Alice", "alice@example.com", "", 2000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, RoleUser, user.Role)
		assert.Equal(t, int64(0), user.Balance())
		assert.Equal(t, "0.00", user.GetBalance())
		assert.Equal(t, int64(-2000), user.Floor())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Invalid input", func(t *testing.T) {
		_, err := NewUser("  ", "", RoleUser, 0, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		_, err = NewUser("Bob", "", Role("root"), 0, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		_, err = NewUser("Bob", "", RoleUser, -1, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestUserBalanceOperations(t *testing.T) {
	initialTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	laterTime := initialTime.Add(time.Hour)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(initialTime).Once()
	mockTime.EXPECT().Now().Return(laterTime)

	user, err := NewUser("Alice", "", RoleUser, 0, mockTime)
	require.NoError(t, err)

	t.Run("ApplyDelta allows negative balances", func(t *testing.T) {
		newBalance := user.ApplyDelta(-1500, mockTime)

		assert.Equal(t, int64(-1500), newBalance)
		assert.Equal(t, "-15.00", user.GetBalance())
		assert.Equal(t, laterTime, user.UpdatedAt)
		assert.False(t, user.CanCover(1))
	})

	t.Run("SetBalance", func(t *testing.T) {
		user.SetBalance(10000, mockTime)

		assert.Equal(t, int64(10000), user.Balance())
		assert.True(t, user.CanCover(10000))
		assert.False(t, user.CanCover(10001))
	})
}

func TestActor(t *testing.T) {
	assert.False(t, Actor{ID: 1, Role: RoleUser}.IsAdmin())
	assert.True(t, Actor{ID: 1, Role: RoleAdmin}.IsAdmin())
	assert.False(t, Actor{ID: 1, Role: RoleAdmin}.IsSuperAdmin())
	assert.True(t, Actor{ID: 1, Role: RoleSuperAdmin}.IsAdmin())
	assert.True(t, Actor{ID: 7, Role: RoleUser}.IsSelf(7))
}
