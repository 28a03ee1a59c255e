package model

import (
	"time"
)

// Deposit represents the database model for priority deposits
type Deposit struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	UserID     uint64    `gorm:"not null;index"`
	Amount     int64     `gorm:"not null"`
	Status     string    `gorm:"not null;size:20;index"`
	CreatedBy  uint64    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	RefundedBy *uint64
	RefundedAt *time.Time
}

// TableName specifies the table name for Deposit
func (Deposit) TableName() string {
	return "deposits"
}
