package migration

// initialSchema creates every table. Foreign keys use the default "no
// action"; deleting referenced rows is left to application logic.
func initialSchema() Migration {
	return Migration{
		Version:     1,
		Description: "create tables",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	currency TEXT NOT NULL DEFAULT 'EGP',
	locale TEXT NOT NULL DEFAULT 'ar-EG',
	onboarding_completed BOOLEAN NOT NULL DEFAULT FALSE
)`,
			`CREATE TABLE IF NOT EXISTS wallets (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	balance DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS categories (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	icon TEXT,
	color TEXT,
	is_custom BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMP NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS budgets (
	id TEXT PRIMARY KEY,
	category_id TEXT NOT NULL UNIQUE REFERENCES categories (id),
	monthly_limit DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMP NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS transactions (
	id TEXT PRIMARY KEY,
	amount DOUBLE PRECISION NOT NULL,
	type TEXT NOT NULL CHECK (type IN ('income', 'expense', 'transfer')),
	category_id TEXT REFERENCES categories (id),
	wallet_id TEXT REFERENCES wallets (id),
	target_wallet_id TEXT REFERENCES wallets (id),
	note TEXT,
	occurred_at TIMESTAMP NOT NULL,
	created_at TIMESTAMP NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS bills (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	amount DOUBLE PRECISION NOT NULL,
	frequency TEXT NOT NULL CHECK (frequency IN ('monthly', 'quarterly', 'yearly')),
	category_id TEXT REFERENCES categories (id),
	wallet_id TEXT REFERENCES wallets (id),
	next_due_date TIMESTAMP NOT NULL,
	active BOOLEAN NOT NULL DEFAULT TRUE
)`,
			`CREATE TABLE IF NOT EXISTS bill_payments (
	id TEXT PRIMARY KEY,
	bill_id TEXT NOT NULL REFERENCES bills (id),
	amount DOUBLE PRECISION NOT NULL,
	wallet_id TEXT REFERENCES wallets (id),
	paid_at TIMESTAMP NOT NULL,
	created_at TIMESTAMP NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS monthly_summaries (
	id TEXT PRIMARY KEY,
	month TEXT NOT NULL,
	total_income DOUBLE PRECISION NOT NULL DEFAULT 0,
	total_expenses DOUBLE PRECISION NOT NULL DEFAULT 0,
	savings DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS ai_token_ledger (
	id TEXT PRIMARY KEY,
	month TEXT NOT NULL,
	tokens_used BIGINT NOT NULL DEFAULT 0,
	token_limit BIGINT NOT NULL DEFAULT 0,
	last_reset TIMESTAMP NOT NULL
)`,
		},
	}
}
