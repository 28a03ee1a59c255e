package model

import (
	"time"
)

// Transaction represents the database model for ledger entries
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index"`
	Amount      int64     `gorm:"not null"` // Signed cents
	Type        string    `gorm:"not null;size:32"`
	Description string    `gorm:"type:text"`
	ReferenceID string    `gorm:"size:64;index"`
	CreatedBy   *uint64
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
