package bookingRepo

import "travelogue/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByBookingID retrieves a booking by its reference. Returns nil when absent.
	GetByBookingID(bookingID string) (*models.Booking, error)
	// List retrieves bookings matching the given criteria, newest first.
	List(criteria BookingSearchCriteria) ([]models.Booking, error)
	// MarkCancelled transitions a booking to cancelled/refunded, guarded by
	// status != cancelled. Returns false when the guard did not match.
	MarkCancelled(bookingID string) (bool, error)
}

// BookingSearchCriteria holds parameters for booking lookups.
type BookingSearchCriteria struct {
	Email  string // Customer email, matched lowercase.
	UserID string
}
