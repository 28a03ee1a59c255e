package entity

import (
	"errors"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCheckCutoff(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	event := &Event{ID: 3, StartsAt: now.Add(5 * time.Hour), RegistrationCutoffHours: 6}

	err := event.CheckCutoff(now)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCutoffWindow)
	assert.ErrorIs(t, err, errs.ErrLimitExceeded)

	var cutoff *errs.CutoffError
	require.True(t, errors.As(err, &cutoff))
	assert.Equal(t, int64(5*3600), cutoff.SecondsLeft)

	// Exactly at the boundary is allowed
	event.RegistrationCutoffHours = 5
	assert.NoError(t, event.CheckCutoff(now))

	event.RegistrationCutoffHours = 0
	assert.NoError(t, event.CheckCutoff(now))
}

func TestEventStatus(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	event := &Event{Status: EventOpen, StartsAt: now}

	assert.True(t, event.IsOpen())
	assert.NoError(t, event.StatusError())
	assert.True(t, event.HasStarted(now))
	assert.False(t, event.HasStarted(now.Add(-time.Second)))

	event.Status = EventClosed
	assert.ErrorIs(t, event.StatusError(), errs.ErrAlreadyClosed)

	event.Status = EventCanceled
	assert.ErrorIs(t, event.StatusError(), errs.ErrInvalidState)
}

func TestEventValidate(t *testing.T) {
	valid := Event{Title: "Thursday volleyball", StartsAt: time.Now(), MaxPlayers: 12, PricePerPerson: 1000}
	assert.NoError(t, valid.Validate())

	noTitle := valid
	noTitle.Title = ""
	assert.ErrorIs(t, noTitle.Validate(), errs.ErrInvalidRequest)

	negative := valid
	negative.MaxPlayers = -1
	assert.ErrorIs(t, negative.Validate(), errs.ErrInvalidRequest)
}

func TestRegistration(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	reg := &Registration{ID: 1, UserID: 5, Status: RegistrationCanceled, CreatedAt: now.Add(-time.Hour)}

	assert.False(t, reg.IsActive())
	assert.Equal(t, uint64(5), reg.Payer())

	reg.Reactivate(RegistrationWaitlist, 9, now)
	assert.True(t, reg.IsActive())
	assert.Equal(t, now, reg.CreatedAt)
	assert.Equal(t, uint64(9), reg.Payer())
}

func TestGroupDepositorCap(t *testing.T) {
	uncapped := &Group{}
	assert.False(t, uncapped.DepositorCapReached(1000))

	limit := 2
	capped := &Group{MaxDepositors: &limit}
	assert.False(t, capped.DepositorCapReached(1))
	assert.True(t, capped.DepositorCapReached(2))
}
