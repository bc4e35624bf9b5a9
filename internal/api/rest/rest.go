package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Queue trigger and status
		v1.POST("/queue/process", handler.ProcessQueue)
		v1.GET("/queue/status", handler.GetQueueStatus)

		// Single record intake and retry
		v1.POST("/queue/records", handler.EnqueueRecord)
		v1.POST("/queue/records/:nft_uid/retry", handler.RetryRecord)

		// Wallet crawl through Temporal
		v1.POST("/wallets/crawl", handler.CrawlWallet)
	}
}
