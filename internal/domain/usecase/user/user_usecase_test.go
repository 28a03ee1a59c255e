package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/club-ledger/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/club-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var admin = entity.Actor{ID: 1, Role: entity.RoleAdmin}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful user creation", func(t *testing.T) {
		// Arrange
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockRepo)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Name == "Alice" && user.Role == entity.RoleUser && user.NegativeBalanceLimit == 1000
		})).Run(func(_ context.Context, user *entity.User) {
			user.ID = 42
		}).Return(nil).Once()
		mockLogger.EXPECT().Info("User created", mock.Anything).Once()

		useCase := NewUserUseCase(mockUow, mockTime, mockLogger)

		// Act
		user, err := useCase.CreateUser(ctx, admin, usecase.CreateUserRequest{
			Name:                 "Alice",
			Email:                "alice@example.com",
			NegativeBalanceLimit: 1000,
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, uint64(42), user.ID)
		assert.Equal(t, "0.00", user.GetBalance())
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Non-admin is rejected", func(t *testing.T) {
		useCase := NewUserUseCase(persistencemocks.NewMockUnitOfWork(t), coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		user, err := useCase.CreateUser(ctx, entity.Actor{ID: 5, Role: entity.RoleUser}, usecase.CreateUserRequest{Name: "Bob"})

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Nil(t, user)
	})

	t.Run("Admin cannot create super admin", func(t *testing.T) {
		useCase := NewUserUseCase(persistencemocks.NewMockUnitOfWork(t), coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		_, err := useCase.CreateUser(ctx, admin, usecase.CreateUserRequest{Name: "Root", Role: entity.RoleSuperAdmin})

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockRepo)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(&entity.User{ID: 3}, nil).Once()

		useCase := NewUserUseCase(mockUow, mockTime, coremocks.NewMockLogger(t))

		_, err := useCase.CreateUser(ctx, admin, usecase.CreateUserRequest{Name: "Alice", Email: "alice@example.com"})

		assert.ErrorIs(t, err, errs.ErrAlreadyExists)
	})

	t.Run("Repository failure is logged", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		dbErr := errors.New("boom")
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockRepo)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(dbErr).Once()
		mockLogger.EXPECT().Error("Failed to create user", mock.Anything).Once()

		useCase := NewUserUseCase(mockUow, mockTime, mockLogger)

		_, err := useCase.CreateUser(ctx, admin, usecase.CreateUserRequest{Name: "NoEmail"})

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestEnsureSuperAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing admin is returned", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockRepo)
		mockRepo.EXPECT().FindByEmail(mock.Anything, "root@club.test").Return(&entity.User{ID: 1, Role: entity.RoleSuperAdmin}, nil)
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		useCase := NewUserUseCase(mockUow, coremocks.NewMockTimeProvider(t), mockLogger)

		user, err := useCase.EnsureSuperAdmin(ctx, "Root", "root@club.test")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
	})

	t.Run("Missing admin is created", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockRepo)
		mockTime.EXPECT().Now().Return(time.Now()).Maybe()
		mockRepo.EXPECT().FindByEmail(mock.Anything, "root@club.test").Return(nil, errs.ErrUserNotFound)
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Role == entity.RoleSuperAdmin
		})).Return(nil).Once()
		mockLogger.EXPECT().Info("Bootstrap super admin created", mock.Anything).Once()

		useCase := NewUserUseCase(mockUow, mockTime, mockLogger)

		user, err := useCase.EnsureSuperAdmin(ctx, "Root", "root@club.test")

		require.NoError(t, err)
		assert.Equal(t, entity.RoleSuperAdmin, user.Role)
	})
}

func TestCreateGroup(t *testing.T) {
	ctx := context.Background()
	limit := 3

	mockUow := persistencemocks.NewMockUnitOfWork(t)
	mockGroups := persistencemocks.NewMockGroupRepository(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)

	mockUow.EXPECT().GetGroupRepository(mock.Anything).Return(mockGroups)
	mockTime.EXPECT().Now().Return(time.Now())
	mockGroups.EXPECT().Create(mock.Anything, mock.MatchedBy(func(g *entity.Group) bool {
		return g.Name == "Tuesday league" && *g.MaxDepositors == 3
	})).Return(nil).Once()
	mockLogger.EXPECT().Info("Group created", mock.Anything).Once()

	useCase := NewUserUseCase(mockUow, mockTime, mockLogger)

	group, err := useCase.CreateGroup(ctx, admin, " Tuesday league ", &limit)
	require.NoError(t, err)
	assert.Equal(t, "Tuesday league", group.Name)

	negative := -1
	_, err = useCase.CreateGroup(ctx, admin, "Bad", &negative)
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}
