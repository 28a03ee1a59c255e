package model

import (
	"time"
)

// Registration represents the database model for event registrations.
// One row per (event, user); cancellation and re-registration flip its status.
type Registration struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	EventID      uint64    `gorm:"not null;uniqueIndex:idx_registrations_event_user,priority:1"`
	UserID       uint64    `gorm:"not null;uniqueIndex:idx_registrations_event_user,priority:2;index"`
	Status       string    `gorm:"not null;size:20"`
	RegisteredBy *uint64
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Registration
func (Registration) TableName() string {
	return "registrations"
}
