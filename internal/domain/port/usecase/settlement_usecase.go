package usecase

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// SettlementResult summarises a finalized event
type SettlementResult struct {
	EventID        uint64 `json:"eventId"`
	ChargedCount   int    `json:"chargedCount"`
	TotalAmount    int64  `json:"-"`
	FamilyPayments int    `json:"familyPayments"`
	Fallbacks      int    `json:"fallbacks"`
}

// SettlementUseCase closes events and charges their rosters
type SettlementUseCase interface {
	FinalizeEvent(ctx context.Context, actor entity.Actor, eventID uint64) (*SettlementResult, error)
}
