package model

import (
	"time"
)

// FamilyPermission represents the database model for requester -> target permissions
type FamilyPermission struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	RequesterID uint64    `gorm:"not null;uniqueIndex:idx_family_permissions_pair,priority:1"`
	TargetID    uint64    `gorm:"not null;uniqueIndex:idx_family_permissions_pair,priority:2;index"`
	Status      string    `gorm:"not null;size:20"`
	CanPay      bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for FamilyPermission
func (FamilyPermission) TableName() string {
	return "family_permissions"
}
