package notification

import "travelogue/models"

// Notifier sends customer-facing booking emails. Delivery is best-effort:
// callers log failures and never fail the surrounding workflow on them.
type Notifier interface {
	SendBookingConfirmation(booking models.Booking, trip models.Trip) error
	SendBookingCancellation(booking models.Booking, trip models.Trip) error
}
