package booking

import (
	"fmt"

	bookingRepo "travelogue/database/repository/booking"
	"travelogue/models"
)

// GetBooking retrieves a booking by its reference.
func (s *DefaultBookingService) GetBooking(bookingID string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByBookingID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// ListBookings retrieves bookings for a customer email and/or user ID.
func (s *DefaultBookingService) ListBookings(criteria bookingRepo.BookingSearchCriteria) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.List(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
