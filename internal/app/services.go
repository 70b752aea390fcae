package app

import (
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/usecase/bill"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/usecase/budget"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/usecase/onboarding"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/usecase/report"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/usecase/transaction"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/export"
)

// Services is the set of use cases bound to one repository set
type Services struct {
	Repositories persistence.Repositories
	Transactions *transaction.Service
	Budgets      *budget.Service
	Bills        *bill.Service
	Onboarding   *onboarding.Service
	Reports      *report.Service
	Exporter     *export.TransactionExporter
}

// NewServices wires every use case to the repositories
func NewServices(repos persistence.Repositories, timeProvider coreport.TimeProvider, logger coreport.Logger) *Services {
	return &Services{
		Repositories: repos,
		Transactions: transaction.NewTransactionService(repos.Transactions, logger),
		Budgets:      budget.NewBudgetService(repos.Budgets, repos.Categories, repos.Transactions, logger),
		Bills:        bill.NewBillService(repos.Bills, repos.UnitOfWork, timeProvider, logger),
		Onboarding:   onboarding.NewOnboardingService(repos.UnitOfWork, logger),
		Reports:      report.NewReportService(repos.Transactions, repos.Wallets, logger),
		Exporter:     export.NewTransactionExporter(repos.Categories, repos.Wallets, logger),
	}
}
