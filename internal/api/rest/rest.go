package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/supplier-ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Supply registry (mutations require wallet authentication)
		v1.POST("/supplies", middleware.Auth(authCfg), handler.MakeSupply)
		v1.DELETE("/supplies/:contract/:token_number", middleware.Auth(authCfg), handler.RevokeSupply)
		v1.GET("/supplies/stats", handler.GetSupplyStats)
		v1.GET("/supplies/:contract/:token_number", handler.GetSupply)

		// Purchase settlement (requires wallet authentication)
		v1.POST("/purchases", middleware.Auth(authCfg), handler.PurchaseData)

		// Claims (caller identity from JWT subject)
		v1.POST("/claims", middleware.Auth(authCfg), handler.ClaimEarnings)

		// Account views (public read access)
		v1.GET("/accounts/:address/earnings", handler.GetEarnings)
		v1.GET("/accounts/:address/claims", handler.GetClaims)

		// Operational endpoints (requires API key authentication only)
		v1.GET("/ledger/dust", middleware.APIKeyAuth(authCfg), handler.GetRoundingDust)
	}
}
