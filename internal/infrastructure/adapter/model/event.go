package model

import (
	"time"
)

// Event represents the database model for events
type Event struct {
	ID                      uint64    `gorm:"primaryKey;autoIncrement"`
	Title                   string    `gorm:"not null;size:255"`
	GroupID                 *uint64   `gorm:"index"`
	StartsAt                time.Time `gorm:"not null;index"`
	MaxPlayers              int       `gorm:"not null"`
	PricePerPerson          int64     `gorm:"not null;default:0"`
	Status                  string    `gorm:"not null;size:20;index"`
	RegistrationCutoffHours int       `gorm:"not null;default:0"`
	NegativeBalanceLimit    int64     `gorm:"not null;default:0"`
	CreatedBy               uint64    `gorm:"not null"`
	CreatedAt               time.Time `gorm:"not null"`
	UpdatedAt               time.Time `gorm:"not null"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}
