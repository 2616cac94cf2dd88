package router

import (
	"bank-ledger/internal/auth"
	"bank-ledger/internal/config"
	"bank-ledger/internal/handler"
	"bank-ledger/internal/ledger"
	"bank-ledger/internal/middleware"
	"bank-ledger/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services and handlers onto a Gin engine. Store accessors
// and services are constructed once here and handed to handlers by reference.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	accounts := store.NewAccountStore(db)
	engine := ledger.NewEngine(db, accounts)
	authSvc := auth.NewService(db, cfg.JWT.Secret, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)

	r.GET("/healthz", handler.Healthz)

	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(authSvc)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.JWT.Secret, db, authSvc))

	txnHandler := handler.NewTransactionHandler(db, engine, accounts)
	protected.POST("/transactions/deposit", txnHandler.Deposit)
	protected.POST("/transactions/transfer", txnHandler.Transfer)
	protected.POST("/transactions/reverse/:transactionId", txnHandler.Reverse)
	protected.GET("/transactions", txnHandler.List)
	protected.GET("/transactions/export/csv", txnHandler.ExportCSV)
	protected.GET("/transactions/export/xlsx", txnHandler.ExportXLSX)

	accountHandler := handler.NewAccountHandler(accounts)
	protected.GET("/accounts/me", accountHandler.Me)

	return r
}
