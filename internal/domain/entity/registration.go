package entity

import "time"

// RegistrationStatus is the placement of a user on an event roster
type RegistrationStatus string

// Registration statuses
const (
	RegistrationRegistered RegistrationStatus = "registered"
	RegistrationWaitlist   RegistrationStatus = "waitlist"
	RegistrationCanceled   RegistrationStatus = "canceled"
)

// Registration links a user to an event. Rows are never deleted; cancellation is a status.
type Registration struct {
	ID           uint64
	EventID      uint64
	UserID       uint64
	Status       RegistrationStatus
	RegisteredBy *uint64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive is true for registered and waitlisted rows
func (r *Registration) IsActive() bool {
	return r.Status == RegistrationRegistered || r.Status == RegistrationWaitlist
}

// Payer returns who is charged at settlement before family checks
func (r *Registration) Payer() uint64 {
	if r.RegisteredBy != nil && *r.RegisteredBy != 0 {
		return *r.RegisteredBy
	}
	return r.UserID
}

// Reactivate reuses a canceled row for a fresh registration; the user rejoins the back of the queue
func (r *Registration) Reactivate(status RegistrationStatus, actingUserID uint64, now time.Time) {
	r.Status = status
	r.RegisteredBy = &actingUserID
	r.CreatedAt = now
	r.UpdatedAt = now
}
