package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/falliso3/capstone-fraud-rpa/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type TransactionQueryService interface {
	ListRecent(ctx context.Context, limit int) (*[]models.Transaction, error)
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	MarkSummaryNeeded(ctx context.Context, id string) error
}

type TransactionHandler struct {
	Service TransactionQueryService
}

func NewTransactionHandler(s TransactionQueryService) *TransactionHandler {
	return &TransactionHandler{Service: s}
}

// GET /api/transactions
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"category": "invalid_limit", "error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	txs, err := h.Service.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"category": "storage_error", "error": "failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, txs)
}

// GET /api/transactions/:id
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	tx, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"category": "not_found", "error": "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"category": "storage_error", "error": "failed to fetch transaction"})
		return
	}

	c.JSON(http.StatusOK, tx)
}

// POST /api/transactions/:id/queue-summary
func (h *TransactionHandler) QueueSummary(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.MarkSummaryNeeded(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"category": "not_found", "error": "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"category": "storage_error", "error": "failed to queue summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "queued": true})
}

// POST /api/transactions/:id/summarize
//
// Queue-only alias kept for dashboard compatibility; the worker generates
// the summary.
func (h *TransactionHandler) Summarize(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.MarkSummaryNeeded(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"category": "not_found", "error": "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"category": "storage_error", "error": "failed to queue summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "queued": true, "note": "Worker will generate the summary automatically."})
}
