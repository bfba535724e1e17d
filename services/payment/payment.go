package payment

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"travelogue/config"
	"travelogue/models"
	"travelogue/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// ErrInvalidAmount is returned for non-positive charge amounts.
var ErrInvalidAmount = errors.New("invalid amount")

// PaymentService wraps the Stripe payment-intent flow.
type PaymentService interface {
	CreateIntent(req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error)
	ConfirmIntent(paymentIntentID string) (bool, string, error)
	HandleWebhook(payload []byte, signature string) error
}

// StripePaymentService implements PaymentService against the Stripe API.
type StripePaymentService struct{}

// NewStripePaymentService creates a Stripe-backed PaymentService.
// stripe.Key must be set before use.
func NewStripePaymentService() *StripePaymentService {
	return &StripePaymentService{}
}

// CreateIntent creates a payment intent for the given amount. Stripe expects
// the amount in minor units.
func (s *StripePaymentService) CreateIntent(req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = "usd"
	}

	tripName := req.Metadata["tripName"]
	if tripName == "" {
		tripName = "New Trip"
	}

	customerName := req.CustomerName
	if customerName == "" {
		customerName = "Valued Traveler"
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency:    stripe.String(currency),
		Description: stripe.String(fmt.Sprintf("Travel Booking: %s", tripName)),
		Shipping: &stripe.ShippingDetailsParams{
			Name: stripe.String(customerName),
			Address: &stripe.AddressParams{
				Line1:      stripe.String("123 Travelogue St"),
				City:       stripe.String("Mumbai"),
				State:      stripe.String("MH"),
				PostalCode: stripe.String("400001"),
				Country:    stripe.String("IN"),
			},
		},
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.AddMetadata("integration", "travelogue_booking")

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &models.PaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

// ConfirmIntent checks whether the payment intent has succeeded.
func (s *StripePaymentService) ConfirmIntent(paymentIntentID string) (bool, string, error) {
	intent, err := paymentintent.Get(paymentIntentID, nil)
	if err != nil {
		return false, "", fmt.Errorf("failed to retrieve payment intent: %w", err)
	}
	return intent.Status == stripe.PaymentIntentStatusSucceeded, string(intent.Status), nil
}

// HandleWebhook verifies and processes a Stripe webhook event. Without a
// configured endpoint secret the payload is parsed unverified, as in dev.
func (s *StripePaymentService) HandleWebhook(payload []byte, signature string) error {
	logger := utils.GetLogger()

	var event stripe.Event
	secret := config.AppConfig.StripeWebhookSecret
	if secret != "" {
		verified, err := webhook.ConstructEvent(payload, signature, secret)
		if err != nil {
			return fmt.Errorf("webhook signature verification failed: %w", err)
		}
		event = verified
	} else if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("failed to decode payment intent: %w", err)
		}
		logger.Info("payment succeeded", zap.String("paymentIntentId", intent.ID))
	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("failed to decode payment intent: %w", err)
		}
		logger.Warn("payment failed", zap.String("paymentIntentId", intent.ID))
	default:
		logger.Debug("unhandled stripe event", zap.String("type", string(event.Type)))
	}
	return nil
}
