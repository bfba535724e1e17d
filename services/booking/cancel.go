package booking

import (
	"fmt"

	"travelogue/models"
	"travelogue/utils"

	"go.uber.org/zap"
)

// CancelBooking transitions a booking to cancelled/refunded and releases its
// spots back to the trip, capped at max capacity. Cancellation is one-way and
// not idempotent: a second attempt is an error.
func (s *DefaultBookingService) CancelBooking(bookingID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	booking, err := s.BookingRepo.GetByBookingID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	cancelled, err := s.BookingRepo.MarkCancelled(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	if !cancelled {
		// A concurrent cancel won the race.
		return nil, ErrAlreadyCancelled
	}

	booking.Status = models.BookingStatusCancelled
	booking.PaymentStatus = models.PaymentStatusRefunded

	// Restore capacity. A missing trip (deleted since booking) is tolerated.
	trip, err := s.TripRepo.GetByTripID(booking.TripID)
	if err != nil {
		logger.Error("failed to resolve trip during cancellation",
			zap.String("tripId", booking.TripID), zap.Error(err))
	}
	if trip != nil {
		if err := s.TripRepo.ReleaseSpots(booking.TripID, booking.Travelers); err != nil {
			logger.Error("failed to release spots on cancellation",
				zap.String("tripId", booking.TripID), zap.Error(err))
		}

		// Cancellation email is best-effort.
		if err := s.Notifier.SendBookingCancellation(*booking, *trip); err != nil {
			logger.Warn("booking cancellation email failed",
				zap.String("bookingId", booking.BookingID), zap.Error(err))
		}
	}

	logger.Info("booking cancelled",
		zap.String("bookingId", booking.BookingID),
		zap.String("tripId", booking.TripID))

	return booking, nil
}
