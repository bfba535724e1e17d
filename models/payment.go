package models

// PaymentIntentRequest asks Stripe for a new payment intent.
type PaymentIntentRequest struct {
	Amount       float64           `json:"amount" binding:"required"`
	Currency     string            `json:"currency"`
	CustomerName string            `json:"customerName"`
	Metadata     map[string]string `json:"metadata"`
}

// PaymentIntentResponse carries the client secret back to the frontend.
type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// ConfirmPaymentRequest checks whether a payment intent has succeeded.
type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	BookingID       string `json:"bookingId"`
}
