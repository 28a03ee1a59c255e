package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/event"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLifecycle(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDBManager(t)
	service := event.NewService(db.UoW, db.Clock, db.Logger)
	admin := entity.Actor{ID: db.CreateTestUser(t, "Admin", entity.RoleAdmin, 0, 0), Role: entity.RoleAdmin}
	start := database.TestEpoch.Add(72 * time.Hour)

	t.Run("Create and read back", func(t *testing.T) {
		created, err := service.CreateEvent(ctx, admin, usecase.CreateEventRequest{
			Title:                   "  Sunday league  ",
			StartsAt:                start,
			MaxPlayers:              10,
			PricePerPerson:          800,
			RegistrationCutoffHours: 6,
			NegativeBalanceLimit:    2000,
		})
		require.NoError(t, err)
		assert.Equal(t, "Sunday league", created.Title)
		assert.Equal(t, entity.EventOpen, created.Status)

		got, err := service.GetEvent(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, got.MaxPlayers)
		assert.Equal(t, int64(800), got.PricePerPerson)
		assert.True(t, start.Equal(got.StartsAt))
	})

	t.Run("Cancel", func(t *testing.T) {
		created, err := service.CreateEvent(ctx, admin, usecase.CreateEventRequest{Title: "Rainy", StartsAt: start, MaxPlayers: 4})
		require.NoError(t, err)

		canceled, err := service.CancelEvent(ctx, admin, created.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.EventCanceled, canceled.Status)

		_, err = service.CancelEvent(ctx, admin, created.ID)
		assert.ErrorIs(t, err, errs.ErrEventCanceled)
	})

	t.Run("Validation", func(t *testing.T) {
		tests := []struct {
			name string
			req  usecase.CreateEventRequest
			want error
		}{
			{"Missing title", usecase.CreateEventRequest{StartsAt: start}, errs.ErrInvalidRequest},
			{"Negative capacity", usecase.CreateEventRequest{Title: "X", StartsAt: start, MaxPlayers: -1}, errs.ErrInvalidRequest},
			{"In the past", usecase.CreateEventRequest{Title: "X", StartsAt: database.TestEpoch.Add(-time.Hour)}, errs.ErrEventStarted},
			{"Unknown group", usecase.CreateEventRequest{Title: "X", StartsAt: start, GroupID: ptr(uint64(404))}, errs.ErrGroupNotFound},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateEvent(ctx, admin, tt.req)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("Members cannot manage events", func(t *testing.T) {
		_, err := service.CreateEvent(ctx, entity.Actor{ID: 99, Role: entity.RoleUser}, usecase.CreateEventRequest{Title: "X", StartsAt: start})
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Unknown event", func(t *testing.T) {
		_, err := service.GetEvent(ctx, 12345)
		assert.ErrorIs(t, err, errs.ErrEventNotFound)
	})
}

func ptr[T any](v T) *T {
	return &v
}
