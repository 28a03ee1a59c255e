package entity

import "time"

// PermissionStatus is the state of a family permission request
type PermissionStatus string

// Permission statuses
const (
	PermissionPending  PermissionStatus = "pending"
	PermissionAccepted PermissionStatus = "accepted"
	PermissionRejected PermissionStatus = "rejected"
	PermissionCanceled PermissionStatus = "canceled"
)

// FamilyPermission is a directed edge: only Requester may register or pay for Target
type FamilyPermission struct {
	ID          uint64
	RequesterID uint64
	TargetID    uint64
	Status      PermissionStatus
	CanPay      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAccepted reports whether the edge currently authorizes the requester
func (p *FamilyPermission) IsAccepted() bool {
	return p.Status == PermissionAccepted
}

// IsLive is true while the row blocks a new request for the same pair
func (p *FamilyPermission) IsLive() bool {
	return p.Status == PermissionPending || p.Status == PermissionAccepted
}

// Reopen resets a rejected or canceled row into a fresh pending request
func (p *FamilyPermission) Reopen(canPay bool, now time.Time) {
	p.Status = PermissionPending
	p.CanPay = canPay
	p.UpdatedAt = now
}
