package dto

import (
	"time"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// TopUpRequest represents the API request for crediting a wallet
type TopUpRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// AdjustmentRequest represents a signed manual adjustment
type AdjustmentRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CorrectionRequest carries the corrected amount of a ledger entry
type CorrectionRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// TransactionResponse represents a ledger entry in API responses
type TransactionResponse struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"userId"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	ReferenceID string    `json:"referenceId,omitempty"`
	CreatedBy   *uint64   `json:"createdBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTransactionResponse maps a ledger entry
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Amount:      t.FormattedAmount(),
		Type:        string(t.Type),
		Description: t.Description,
		ReferenceID: t.ReferenceID,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
	}
}

// NewTransactionList maps ledger entries
func NewTransactionList(ts []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}
