package dto

import (
	"time"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// DepositResponse represents a priority deposit in API responses
type DepositResponse struct {
	ID         uint64     `json:"id"`
	UserID     uint64     `json:"userId"`
	Amount     string     `json:"amount"`
	Status     string     `json:"status"`
	CreatedBy  uint64     `json:"createdBy"`
	CreatedAt  time.Time  `json:"createdAt"`
	RefundedBy *uint64    `json:"refundedBy,omitempty"`
	RefundedAt *time.Time `json:"refundedAt,omitempty"`
}

// NewDepositResponse maps a deposit entity
func NewDepositResponse(d *entity.Deposit) DepositResponse {
	return DepositResponse{
		ID:         d.ID,
		UserID:     d.UserID,
		Amount:     entity.FormatCents(d.Amount),
		Status:     string(d.Status),
		CreatedBy:  d.CreatedBy,
		CreatedAt:  d.CreatedAt,
		RefundedBy: d.RefundedBy,
		RefundedAt: d.RefundedAt,
	}
}

// NewDepositList maps deposits
func NewDepositList(ds []*entity.Deposit) []DepositResponse {
	out := make([]DepositResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, NewDepositResponse(d))
	}
	return out
}
