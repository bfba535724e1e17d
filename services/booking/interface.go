package booking

import (
	"time"

	bookingRepo "travelogue/database/repository/booking"
	tripRepo "travelogue/database/repository/trip"
	"travelogue/models"
	"travelogue/services/notification"
)

// BookingService defines the booking engine: quote-and-reserve creation,
// one-way cancellation with capacity release, and lookups.
type BookingService interface {
	CreateBooking(req CreateBookingRequest) (*models.Booking, error)
	CancelBooking(bookingID string) (*models.Booking, error)
	GetBooking(bookingID string) (*models.Booking, error)
	ListBookings(criteria bookingRepo.BookingSearchCriteria) ([]models.Booking, error)
}

// CreateBookingRequest is the inbound payload for a new booking.
type CreateBookingRequest struct {
	TripID          string
	Name            string
	Email           string
	Phone           string
	StartDate       time.Time
	Travelers       int
	Accommodation   string
	FlightNeeded    bool
	Insurance       bool
	AddOns          []models.AddOn
	UserID          string
	PaymentIntentID string
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	TripRepo    tripRepo.TripRepository
	BookingRepo bookingRepo.BookingRepository
	Notifier    notification.Notifier
}
