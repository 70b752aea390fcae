package model

import (
	"time"
)

// MonthlySummary is a reserved aggregate table. Nothing writes to it yet;
// summaries are computed from transactions on read.
type MonthlySummary struct {
	ID            string    `gorm:"primaryKey;type:text"`
	Month         string    `gorm:"type:text;not null"`
	TotalIncome   float64   `gorm:"not null"`
	TotalExpenses float64   `gorm:"not null"`
	Savings       float64   `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for MonthlySummary
func (MonthlySummary) TableName() string {
	return "monthly_summaries"
}

// AITokenLedger is a reserved usage quota table
type AITokenLedger struct {
	ID         string    `gorm:"primaryKey;type:text"`
	Month      string    `gorm:"type:text;not null"`
	TokensUsed int64     `gorm:"not null"`
	TokenLimit int64     `gorm:"not null"`
	LastReset  time.Time `gorm:"not null"`
}

// TableName specifies the table name for AITokenLedger
func (AITokenLedger) TableName() string {
	return "ai_token_ledger"
}

// All returns every domain model in dependency order
func All() []any {
	return []any{
		&User{},
		&Wallet{},
		&Category{},
		&Budget{},
		&Transaction{},
		&Bill{},
		&BillPayment{},
		&MonthlySummary{},
		&AITokenLedger{},
	}
}
