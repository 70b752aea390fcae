package model

import (
	"time"
)

// Category represents the database model for categories
type Category struct {
	ID        string    `gorm:"primaryKey;type:text"`
	Name      string    `gorm:"type:text;not null"`
	Icon      *string   `gorm:"type:text"`
	Color     *string   `gorm:"type:text"`
	IsCustom  bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
