package model

import (
	"time"
)

// Bill represents the database model for recurring bills
type Bill struct {
	ID          string    `gorm:"primaryKey;type:text"`
	Name        string    `gorm:"type:text;not null"`
	Amount      float64   `gorm:"not null"`
	Frequency   string    `gorm:"type:text;not null"`
	CategoryID  *string   `gorm:"type:text"`
	WalletID    *string   `gorm:"type:text"`
	NextDueDate time.Time `gorm:"not null;index"`
	Active      bool      `gorm:"not null"`
	Paid        bool      `gorm:"not null"`
}

// TableName specifies the table name for Bill
func (Bill) TableName() string {
	return "bills"
}

// BillPayment represents the database model for bill payment records
type BillPayment struct {
	ID        string    `gorm:"primaryKey;type:text"`
	BillID    string    `gorm:"type:text;not null;index"`
	Amount    float64   `gorm:"not null"`
	WalletID  *string   `gorm:"type:text"`
	Status    string    `gorm:"type:text;not null"`
	PaidAt    time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for BillPayment
func (BillPayment) TableName() string {
	return "bill_payments"
}
