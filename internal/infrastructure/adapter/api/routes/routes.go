package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler served by the API
type Handlers struct {
	User        *handler.UserHandler
	Wallet      *handler.WalletHandler
	Category    *handler.CategoryHandler
	Budget      *handler.BudgetHandler
	Transaction *handler.TransactionHandler
	Bill        *handler.BillHandler
	Report      *handler.ReportHandler
	Health      *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)

	user := router.Group("/user")
	{
		user.GET("", h.User.Get)
		user.PUT("/preferences", h.User.CompleteOnboarding)
		user.POST("/wallets", h.User.PrimeWallets)
	}

	wallets := router.Group("/wallets")
	{
		wallets.GET("", h.Wallet.List)
		wallets.POST("", h.Wallet.Create)
		wallets.GET("/:id", h.Wallet.Get)
		wallets.GET("/:id/transactions", h.Wallet.Transactions)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
	}

	budgets := router.Group("/budgets")
	{
		budgets.GET("", h.Budget.List)
		budgets.POST("", h.Budget.Create)
		budgets.GET("/status", h.Budget.Status)
		budgets.PATCH("/:id", h.Budget.UpdateLimit)
	}

	transactions := router.Group("/transactions")
	{
		transactions.GET("", h.Transaction.List)
		transactions.POST("", h.Transaction.Create)
		transactions.GET("/:id", h.Transaction.Get)
	}

	bills := router.Group("/bills")
	{
		bills.GET("", h.Bill.List)
		bills.POST("", h.Bill.Create)
		bills.POST("/roll-forward", h.Bill.RollForward)
		bills.POST("/:id/pay", h.Bill.Pay)
		bills.GET("/:id/payments", h.Bill.Payments)
	}

	router.GET("/reports/monthly", h.Report.Monthly)
	router.GET("/export/transactions", h.Report.ExportTransactions)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	// Order matters: the request id must exist before anything logs
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
}

// NewRouter builds a gin engine with middlewares and routes installed
func NewRouter(h Handlers, logger coreport.Logger, timeProvider coreport.TimeProvider) *gin.Engine {
	router := gin.New()
	SetupMiddlewares(router, logger, timeProvider)
	SetupRoutes(router, h)
	return router
}
