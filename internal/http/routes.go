package http

import (
	"time"

	"gamefi_backend/internal/config"
	"gamefi_backend/internal/http/handlers"
	"gamefi_backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	h := handlers.NewHandler(db, cfg)
	healthHandler := handlers.NewHealthHandler(db, version)

	apiRateWindow := time.Duration(cfg.APIRateWindow) * time.Second
	authRateWindow := time.Duration(cfg.AuthRateWindow) * time.Second

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, apiRateWindow))

	// Auth (tighter limit, no session required)
	auth := v1.Group("/auth")
	auth.Use(middleware.RedisRateLimit(cfg.AuthRateLimit, authRateWindow))
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/check", h.Check)
	}

	// Reward ledger reads
	v1.GET("/rewards/top", h.TopRewards)
	v1.GET("/rewards/:walletID", h.GetRewards)

	// Ledger mutators
	v1.POST("/deposits", middleware.JWT(), h.CreateDeposit)
	v1.GET("/deposits/:walletID", middleware.JWT(), h.GetDeposits)

	v1.POST("/withdrawals", middleware.JWT(), h.CreateWithdraw)
	v1.GET("/withdrawals/:walletID", middleware.JWT(), h.GetWithdrawals)

	v1.POST("/claims", middleware.JWT(), h.CreateClaim)
	v1.GET("/claims/:walletID", middleware.JWT(), h.GetClaims)

	v1.POST("/history", middleware.JWT(), h.CreateHistory)
	v1.GET("/history/top", h.TopHistoryRewards)
	v1.GET("/history/:walletID", h.GetHistory)

	v1.GET("/transactions/:walletID", middleware.JWT(), h.GetTransactions)

	// Turn allowance
	v1.GET("/turns/:walletID/:playerID", middleware.JWT(), h.GetTurn)
	v1.PUT("/turns/:walletID/:playerID", middleware.JWT(), h.UpdateTurn)

	// Players
	v1.GET("/players", h.ListPlayers)
	v1.POST("/players", middleware.JWT(), h.CreatePlayer)
	v1.POST("/players/summon", middleware.JWT(), h.SummonPlayer)
	v1.GET("/players/:id", h.GetPlayer)
	v1.POST("/players/:id/mana", middleware.JWT(), h.BootMana)
	v1.POST("/players/:id/hp", middleware.JWT(), h.BootHP)
}
