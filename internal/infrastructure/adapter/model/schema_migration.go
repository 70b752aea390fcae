package model

import (
	"time"
)

// SchemaMigration records one applied schema version
type SchemaMigration struct {
	Version     int       `gorm:"primaryKey;autoIncrement:false"`
	Description string    `gorm:"type:text"`
	AppliedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for the schema migration model
func (SchemaMigration) TableName() string {
	return "schema_migrations"
}
