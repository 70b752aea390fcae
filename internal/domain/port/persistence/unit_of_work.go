package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating writes across multiple
// repositories so that they commit or roll back together
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context.
	// Rolling back an already finished transaction is not an error.
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetWalletRepository returns a wallet repository bound to the current transaction
	GetWalletRepository(ctx context.Context) WalletRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetBillRepository returns a bill repository bound to the current transaction
	GetBillRepository(ctx context.Context) BillRepository

	// GetBillPaymentRepository returns a bill payment repository bound to the current transaction
	GetBillPaymentRepository(ctx context.Context) BillPaymentRepository
}

// Repositories is the set of repositories handed out once storage is ready
type Repositories struct {
	Users        UserRepository
	Wallets      WalletRepository
	Categories   CategoryRepository
	Budgets      BudgetRepository
	Transactions TransactionRepository
	Bills        BillRepository
	BillPayments BillPaymentRepository
	UnitOfWork   UnitOfWork
}
