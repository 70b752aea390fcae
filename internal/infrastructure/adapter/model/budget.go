package model

import (
	"time"
)

// Budget represents the database model for budgets
type Budget struct {
	ID           string    `gorm:"primaryKey;type:text"`
	CategoryID   string    `gorm:"type:text;not null;uniqueIndex"`
	MonthlyLimit float64   `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Budget
func (Budget) TableName() string {
	return "budgets"
}
