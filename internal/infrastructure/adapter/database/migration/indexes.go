package migration

// queryIndexes backs the period, wallet and due-date lookups
func queryIndexes() Migration {
	return Migration{
		Version:     2,
		Description: "add query indexes",
		Statements: []string{
			`CREATE INDEX IF NOT EXISTS idx_transactions_occurred_at ON transactions (occurred_at)`,
			`CREATE INDEX IF NOT EXISTS idx_transactions_wallet_id ON transactions (wallet_id)`,
			`CREATE INDEX IF NOT EXISTS idx_transactions_target_wallet_id ON transactions (target_wallet_id)`,
			`CREATE INDEX IF NOT EXISTS idx_transactions_category_id ON transactions (category_id)`,
			`CREATE INDEX IF NOT EXISTS idx_bills_next_due_date ON bills (next_due_date)`,
			`CREATE INDEX IF NOT EXISTS idx_bill_payments_bill_id ON bill_payments (bill_id)`,
		},
	}
}
