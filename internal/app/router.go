package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/export"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/config"
)

// Router initializes the database and returns the HTTP API on top of it
func (a *App) Router(ctx context.Context, version string) (*gin.Engine, error) {
	services, err := a.Services(ctx)
	if err != nil {
		return nil, err
	}

	if a.config.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	format := export.FormatXLSX
	if a.config.Export.Format != "" {
		if format, err = export.ParseFormat(a.config.Export.Format); err != nil {
			return nil, err
		}
	}

	repos := services.Repositories
	handlers := routes.Handlers{
		User:        handler.NewUserHandler(repos.Users, services.Onboarding, a.logger),
		Wallet:      handler.NewWalletHandler(repos.Wallets, repos.Transactions, a.logger),
		Category:    handler.NewCategoryHandler(repos.Categories, a.logger),
		Budget:      handler.NewBudgetHandler(services.Budgets, repos.Budgets, a.timeProvider, a.logger),
		Transaction: handler.NewTransactionHandler(services.Transactions, repos.Transactions, a.logger),
		Bill:        handler.NewBillHandler(services.Bills, repos.Bills, repos.BillPayments, a.timeProvider, a.logger),
		Report: handler.NewReportHandler(
			services.Reports,
			services.Transactions,
			services.Exporter,
			format,
			a.timeProvider,
			a.logger,
		),
		Health: handler.NewHealthHandler(a.manager, version),
	}

	return routes.NewRouter(handlers, a.logger, a.timeProvider), nil
}
