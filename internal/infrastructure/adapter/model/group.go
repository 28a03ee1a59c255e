package model

import (
	"time"
)

// Group represents the database model for member groups
type Group struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	Name          string    `gorm:"not null;size:255"`
	MaxDepositors *int
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Group
func (Group) TableName() string {
	return "member_groups"
}

// GroupMember links users to groups
type GroupMember struct {
	GroupID   uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"primaryKey;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GroupMember
func (GroupMember) TableName() string {
	return "group_members"
}
