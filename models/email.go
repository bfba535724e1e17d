package models

// Email template kinds.
const (
	EmailBookingConfirmation = "bookingConfirmation"
	EmailBookingCancellation = "bookingCancellation"
)

// EmailPayload is the serialized context for a queued notification email.
type EmailPayload struct {
	To       string  `json:"to"`
	Template string  `json:"template"`
	Booking  Booking `json:"booking"`
	Trip     Trip    `json:"trip"`
}
