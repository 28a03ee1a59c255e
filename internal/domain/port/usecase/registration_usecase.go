package usecase

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// RegisterResult is the outcome of a registration request
type RegisterResult struct {
	RegistrationID uint64                    `json:"registrationId"`
	Status         entity.RegistrationStatus `json:"status"`
	BumpedUserID   *uint64                   `json:"bumpedUserId,omitempty"`
}

// CancelResult is the outcome of a cancellation
type CancelResult struct {
	PromotedUserID *uint64 `json:"promotedUserId,omitempty"`
}

// CapacityResult reports a bulk reconciliation; every field is always populated
type CapacityResult struct {
	EventID             uint64 `json:"eventId"`
	OldMaxPlayers       int    `json:"oldMaxPlayers"`
	NewMaxPlayers       int    `json:"newMaxPlayers"`
	Promoted            int    `json:"promoted"`
	PromotedWithDeposit int    `json:"promotedWithDeposit"`
	Demoted             int    `json:"demoted"`
	DemotedWithDeposit  int    `json:"demotedWithDeposit"`
}

// RosterEntry is one line of a roster
type RosterEntry struct {
	Index          int     `json:"index"`
	RegistrationID uint64  `json:"registrationId"`
	UserID         uint64  `json:"userId"`
	HasDeposit     bool    `json:"hasDeposit"`
	RegisteredBy   *uint64 `json:"registeredBy,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// Roster is the registered list followed by the waitlist; waitlist indices continue after max players
type Roster struct {
	EventID    uint64        `json:"eventId"`
	MaxPlayers int           `json:"maxPlayers"`
	Registered []RosterEntry `json:"registered"`
	Waitlist   []RosterEntry `json:"waitlist"`
}

// RegistrationUseCase defines roster operations
type RegistrationUseCase interface {
	Register(ctx context.Context, actor entity.Actor, eventID, targetUserID uint64) (*RegisterResult, error)
	Cancel(ctx context.Context, actor entity.Actor, eventID, targetUserID uint64) (*CancelResult, error)
	UpdateEventCapacity(ctx context.Context, actor entity.Actor, eventID uint64, newMaxPlayers int) (*CapacityResult, error)
	Roster(ctx context.Context, eventID uint64) (*Roster, error)
}
