package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
)

// EventStatus is the lifecycle state of an event
type EventStatus string

// Event statuses
const (
	EventOpen     EventStatus = "open"
	EventClosed   EventStatus = "closed"
	EventCanceled EventStatus = "canceled"
)

// Event is a scheduled session with a capped roster
type Event struct {
	ID                      uint64
	Title                   string
	GroupID                 *uint64
	StartsAt                time.Time
	MaxPlayers              int
	PricePerPerson          int64 // cents
	Status                  EventStatus
	RegistrationCutoffHours int
	NegativeBalanceLimit    int64 // cents
	CreatedBy               uint64
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// Validate checks the admin-supplied fields of a new event
func (e *Event) Validate() error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return errs.ErrInvalidRequest
	case e.StartsAt.IsZero():
		return errs.ErrInvalidRequest
	case e.MaxPlayers < 0, e.PricePerPerson < 0, e.RegistrationCutoffHours < 0, e.NegativeBalanceLimit < 0:
		return errs.ErrInvalidRequest
	}
	return nil
}

// IsOpen reports whether the event still accepts roster changes
func (e *Event) IsOpen() bool {
	return e.Status == EventOpen
}

// HasStarted reports whether the start time is not in the future
func (e *Event) HasStarted(now time.Time) bool {
	return !e.StartsAt.After(now)
}

// CheckCutoff fails with a CutoffError when now falls inside the cutoff window
func (e *Event) CheckCutoff(now time.Time) error {
	left := e.StartsAt.Sub(now)
	if left < time.Duration(e.RegistrationCutoffHours)*time.Hour {
		return &errs.CutoffError{
			EventID:     e.ID,
			CutoffHours: e.RegistrationCutoffHours,
			SecondsLeft: int64(left / time.Second),
		}
	}
	return nil
}

// StatusError returns the error describing why a non-open event rejects changes
func (e *Event) StatusError() error {
	switch e.Status {
	case EventOpen:
		return nil
	case EventClosed:
		return errs.ErrAlreadyClosed
	case EventCanceled:
		return errs.ErrEventCanceled
	default:
		return errs.ErrEventNotOpen
	}
}

// Floor is the lowest projected balance the event admits
func (e *Event) Floor() int64 {
	return -e.NegativeBalanceLimit
}
