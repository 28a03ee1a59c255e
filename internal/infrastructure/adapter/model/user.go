package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID                   uint64    `gorm:"primaryKey;autoIncrement"`
	Name                 string    `gorm:"not null;size:255"`
	Email                *string   `gorm:"uniqueIndex;size:255"`
	Role                 string    `gorm:"not null;size:20;default:user"`
	Balance              int64     `gorm:"not null;default:0"` // Balance in cents
	NegativeBalanceLimit int64     `gorm:"not null;default:0"` // Cents allowed below zero
	PayForFamilyMembers  bool      `gorm:"not null;default:false"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
