package app

import (
	"net/http"

	"github.com/falliso3/capstone-fraud-rpa/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(webhookHandler *handlers.WebhookHandler, txHandler *handlers.TransactionHandler) {
	a.Router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is running")
	})

	a.Router.POST("/webhook", webhookHandler.HandleWebhook)

	api := a.Router.Group("/api")
	api.GET("/transactions", txHandler.ListTransactions)
	api.GET("/transactions/:id", txHandler.GetTransaction)
	api.POST("/transactions/:id/queue-summary", txHandler.QueueSummary)
	api.POST("/transactions/:id/summarize", txHandler.Summarize)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
