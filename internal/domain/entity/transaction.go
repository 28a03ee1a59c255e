package entity

import "time"

// TransactionType classifies a ledger entry
type TransactionType string

// Transaction types
const (
	TxPayment         TransactionType = "payment"
	TxFamilyTransfer  TransactionType = "family_transfer"
	TxDeposit         TransactionType = "deposit"
	TxDepositRefund   TransactionType = "deposit_refund"
	TxTopUp           TransactionType = "topup"
	TxAdminAdjustment TransactionType = "admin_adjustment"
)

// IsValid reports whether t is a known transaction type
func (t TransactionType) IsValid() bool {
	switch t {
	case TxPayment, TxFamilyTransfer, TxDeposit, TxDepositRefund, TxTopUp, TxAdminAdjustment:
		return true
	}
	return false
}

// Transaction is an append-only ledger entry; Amount equals the balance delta it recorded
type Transaction struct {
	ID          uint64
	UserID      uint64
	Amount      int64 // signed cents
	Type        TransactionType
	Description string
	ReferenceID string
	CreatedBy   *uint64
	CreatedAt   time.Time
}

// IsCredit returns true if this transaction increased the user's balance
func (t *Transaction) IsCredit() bool {
	return t.Amount > 0
}

// FormattedAmount returns the signed amount with 2 decimal places
func (t *Transaction) FormattedAmount() string {
	return FormatCents(t.Amount)
}
