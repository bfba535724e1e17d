package handlers

import (
	"errors"
	"io"
	"net/http"

	"travelogue/models"
	"travelogue/services/payment"
	"travelogue/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the Stripe payment flow over HTTP.
type PaymentHandler struct {
	service payment.PaymentService
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(service payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreatePaymentIntent handles POST /api/payments/create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.service.CreateIntent(req)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid amount"})
			return
		}
		utils.GetLogger().Error("payment intent creation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Payment provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"clientSecret":    resp.ClientSecret,
		"paymentIntentId": resp.PaymentIntentID,
	})
}

// ConfirmPayment handles POST /api/payments/confirm-payment.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var req models.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	succeeded, status, err := h.service.ConfirmIntent(req.PaymentIntentID)
	if err != nil {
		utils.GetLogger().Error("payment confirmation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Payment provider unavailable"})
		return
	}

	if succeeded {
		c.JSON(http.StatusOK, gin.H{"success": true, "status": status, "message": "Payment confirmed successfully"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": false, "status": status, "message": "Payment not yet completed"})
}

// Webhook handles POST /api/payments/webhook.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to read payload"})
		return
	}

	if err := h.service.HandleWebhook(payload, c.GetHeader("Stripe-Signature")); err != nil {
		utils.GetLogger().Warn("webhook processing failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Webhook error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
