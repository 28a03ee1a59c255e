package model

import (
	"time"
)

// MigrationVersion records an applied schema version
type MigrationVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	AppliedAt time.Time `gorm:"not null"`
	Details   string    `gorm:"type:text"`
}

// TableName specifies the table name for the migration version model
func (MigrationVersion) TableName() string {
	return "migration_versions"
}

// All returns every persisted model in dependency order, for AutoMigrate
func All() []any {
	return []any{
		&User{},
		&Group{},
		&GroupMember{},
		&Event{},
		&Registration{},
		&Deposit{},
		&Transaction{},
		&FamilyPermission{},
	}
}
