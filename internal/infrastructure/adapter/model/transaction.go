package model

import (
	"time"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID             string    `gorm:"primaryKey;type:text"`
	Amount         float64   `gorm:"not null"`
	Type           string    `gorm:"type:text;not null"`
	CategoryID     *string   `gorm:"type:text;index"`
	WalletID       *string   `gorm:"type:text;index"`
	TargetWalletID *string   `gorm:"type:text"`
	Note           *string   `gorm:"type:text"`
	OccurredAt     time.Time `gorm:"not null;index"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
