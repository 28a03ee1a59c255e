package entity

import "time"

// DepositStatus is the state of a priority deposit
type DepositStatus string

// Deposit statuses
const (
	DepositActive   DepositStatus = "active"
	DepositRefunded DepositStatus = "refunded"
)

// Deposit grants waitlist priority while active
type Deposit struct {
	ID         uint64
	UserID     uint64
	Amount     int64 // cents
	Status     DepositStatus
	CreatedBy  uint64
	CreatedAt  time.Time
	RefundedBy *uint64
	RefundedAt *time.Time
}

// IsActive reports whether the deposit still confers priority
func (d *Deposit) IsActive() bool {
	return d.Status == DepositActive
}

// MarkRefunded flips the deposit to refunded
func (d *Deposit) MarkRefunded(adminID uint64, now time.Time) {
	d.Status = DepositRefunded
	d.RefundedBy = &adminID
	d.RefundedAt = &now
}
