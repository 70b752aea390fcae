package model

import (
	"time"
)

// User represents the database model for the local user
type User struct {
	ID                  string    `gorm:"primaryKey;type:text"`
	CreatedAt           time.Time `gorm:"not null"`
	Currency            string    `gorm:"type:text;not null"`
	Locale              string    `gorm:"type:text;not null"`
	OnboardingCompleted bool      `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
