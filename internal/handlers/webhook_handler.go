package handlers

import (
	"context"
	"net/http"

	"github.com/falliso3/capstone-fraud-rpa/internal/models/dto"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type IngestService interface {
	ProcessEvent(ctx context.Context, event *dto.Event) error
}

// SignatureVerifier is the signing-secret collaborator. It needs the
// original unparsed request body.
type SignatureVerifier interface {
	Verify(payload []byte, header string) error
}

type WebhookHandler struct {
	Service  IngestService
	Verifier SignatureVerifier
}

func NewWebhookHandler(s IngestService, v SignatureVerifier) *WebhookHandler {
	return &WebhookHandler{
		Service:  s,
		Verifier: v,
	}
}

// POST /webhook
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"category": "invalid_body", "error": "could not read request body"})
		return
	}

	if err := h.Verifier.Verify(body, c.GetHeader("Stripe-Signature")); err != nil {
		logrus.Errorf("Webhook signature verification failed: %s", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"category": "invalid_signature", "error": err.Error()})
		return
	}

	event, err := dto.ParseEvent(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"category": "invalid_event", "error": err.Error()})
		return
	}

	if err := h.Service.ProcessEvent(c.Request.Context(), event); err != nil {
		logrus.Errorf("Error processing event %s: %s", event.ID, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"category": "storage_error", "error": "failed to store event"})
		return
	}

	logrus.Infof("Received event %s (%s)", event.ID, event.Type)
	c.JSON(http.StatusOK, gin.H{"received": true})
}
