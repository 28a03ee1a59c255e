package dto

import (
	"time"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
)

// CreateEventRequest represents the API request for scheduling an event
type CreateEventRequest struct {
	Title                   string    `json:"title" binding:"required"`
	GroupID                 *uint64   `json:"groupId"`
	StartsAt                time.Time `json:"startsAt" binding:"required"`
	MaxPlayers              int       `json:"maxPlayers" binding:"min=0"`
	PricePerPerson          string    `json:"pricePerPerson"`
	RegistrationCutoffHours int       `json:"registrationCutoffHours" binding:"min=0"`
	NegativeBalanceLimit    string    `json:"negativeBalanceLimit"`
}

// EventResponse represents an event in API responses
type EventResponse struct {
	ID                      uint64    `json:"id"`
	Title                   string    `json:"title"`
	GroupID                 *uint64   `json:"groupId,omitempty"`
	StartsAt                time.Time `json:"startsAt"`
	MaxPlayers              int       `json:"maxPlayers"`
	PricePerPerson          string    `json:"pricePerPerson"`
	Status                  string    `json:"status"`
	RegistrationCutoffHours int       `json:"registrationCutoffHours"`
	NegativeBalanceLimit    string    `json:"negativeBalanceLimit"`
}

// NewEventResponse maps an event entity
func NewEventResponse(e *entity.Event) EventResponse {
	return EventResponse{
		ID:                      e.ID,
		Title:                   e.Title,
		GroupID:                 e.GroupID,
		StartsAt:                e.StartsAt,
		MaxPlayers:              e.MaxPlayers,
		PricePerPerson:          entity.FormatCents(e.PricePerPerson),
		Status:                  string(e.Status),
		RegistrationCutoffHours: e.RegistrationCutoffHours,
		NegativeBalanceLimit:    entity.FormatCents(e.NegativeBalanceLimit),
	}
}

// CapacityRequest carries a new roster size
type CapacityRequest struct {
	MaxPlayers *int `json:"maxPlayers" binding:"required"`
}

// SettlementResponse reports a finalized event
type SettlementResponse struct {
	EventID        uint64 `json:"eventId"`
	ChargedCount   int    `json:"chargedCount"`
	TotalAmount    string `json:"totalAmount"`
	FamilyPayments int    `json:"familyPayments"`
	Fallbacks      int    `json:"fallbacks"`
}

// NewSettlementResponse maps a settlement result
func NewSettlementResponse(r *usecase.SettlementResult) SettlementResponse {
	return SettlementResponse{
		EventID:        r.EventID,
		ChargedCount:   r.ChargedCount,
		TotalAmount:    entity.FormatCents(r.TotalAmount),
		FamilyPayments: r.FamilyPayments,
		Fallbacks:      r.Fallbacks,
	}
}

// RegisterRequest names the user to register; empty means the actor
type RegisterRequest struct {
	UserID uint64 `json:"userId"`
}
