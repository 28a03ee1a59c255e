package registration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/authz"
	coremocks "github.com/amirhossein-jamali/club-ledger/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/club-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRosterWithMocks(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	parent := uint64(9)

	t.Run("Waitlist indices continue after max players", func(t *testing.T) {
		// Arrange
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockEvents := persistencemocks.NewMockEventRepository(t)
		mockRegs := persistencemocks.NewMockRegistrationRepository(t)
		mockDeposits := persistencemocks.NewMockDepositRepository(t)

		mockUow.EXPECT().GetEventRepository(mock.Anything).Return(mockEvents)
		mockUow.EXPECT().GetRegistrationRepository(mock.Anything).Return(mockRegs)
		mockUow.EXPECT().GetDepositRepository(mock.Anything).Return(mockDeposits)

		mockEvents.EXPECT().GetByID(mock.Anything, uint64(3)).Return(&entity.Event{ID: 3, MaxPlayers: 4}, nil).Once()
		mockRegs.EXPECT().ListByStatus(mock.Anything, uint64(3), entity.RegistrationRegistered).Return([]*entity.Registration{
			{ID: 11, EventID: 3, UserID: 1, Status: entity.RegistrationRegistered, CreatedAt: created},
			{ID: 12, EventID: 3, UserID: 2, Status: entity.RegistrationRegistered, CreatedAt: created, RegisteredBy: &parent},
		}, nil).Once()
		mockRegs.EXPECT().ListByStatus(mock.Anything, uint64(3), entity.RegistrationWaitlist).Return([]*entity.Registration{
			{ID: 13, EventID: 3, UserID: 5, Status: entity.RegistrationWaitlist, CreatedAt: created},
		}, nil).Once()
		mockDeposits.EXPECT().ActiveHolders(mock.Anything, []uint64{1, 2, 5}).Return(map[uint64]bool{5: true}, nil).Once()

		service := NewService(mockUow, authz.NewAuthorizer(mockUow), coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		// Act
		roster, err := service.Roster(ctx, 3)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 4, roster.MaxPlayers)
		require.Len(t, roster.Registered, 2)
		require.Len(t, roster.Waitlist, 1)
		assert.Equal(t, 1, roster.Registered[0].Index)
		assert.Equal(t, 2, roster.Registered[1].Index)
		assert.Equal(t, &parent, roster.Registered[1].RegisteredBy)
		assert.Equal(t, 5, roster.Waitlist[0].Index)
		assert.True(t, roster.Waitlist[0].HasDeposit)
		assert.False(t, roster.Registered[0].HasDeposit)
		assert.Equal(t, "2026-03-01T10:00:00Z", roster.Waitlist[0].CreatedAt)
	})

	t.Run("Unknown event", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockEvents := persistencemocks.NewMockEventRepository(t)

		mockUow.EXPECT().GetEventRepository(mock.Anything).Return(mockEvents)
		mockEvents.EXPECT().GetByID(mock.Anything, uint64(404)).Return(nil, errs.ErrEventNotFound).Once()

		service := NewService(mockUow, authz.NewAuthorizer(mockUow), coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		roster, err := service.Roster(ctx, 404)

		assert.ErrorIs(t, err, errs.ErrEventNotFound)
		assert.Nil(t, roster)
	})

	t.Run("Deposit lookup failure surfaces", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockEvents := persistencemocks.NewMockEventRepository(t)
		mockRegs := persistencemocks.NewMockRegistrationRepository(t)
		mockDeposits := persistencemocks.NewMockDepositRepository(t)
		dbErr := errors.New("connection lost")

		mockUow.EXPECT().GetEventRepository(mock.Anything).Return(mockEvents)
		mockUow.EXPECT().GetRegistrationRepository(mock.Anything).Return(mockRegs)
		mockUow.EXPECT().GetDepositRepository(mock.Anything).Return(mockDeposits)
		mockEvents.EXPECT().GetByID(mock.Anything, uint64(3)).Return(&entity.Event{ID: 3, MaxPlayers: 4}, nil)
		mockRegs.EXPECT().ListByStatus(mock.Anything, uint64(3), mock.Anything).Return(nil, nil)
		mockDeposits.EXPECT().ActiveHolders(mock.Anything, mock.Anything).Return(nil, dbErr)

		service := NewService(mockUow, authz.NewAuthorizer(mockUow), coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		_, err := service.Roster(ctx, 3)

		assert.ErrorIs(t, err, dbErr)
	})
}
