package booking

import (
	"fmt"
	"strings"

	"travelogue/models"
	"travelogue/utils"

	"go.uber.org/zap"
)

const (
	minTravelers = 1
	maxTravelers = 10
)

func (s *DefaultBookingService) validate(req CreateBookingRequest) error {
	if req.TripID == "" {
		return ValidationError{Message: "tripId is required"}
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return ValidationError{Message: "customer name and email are required"}
	}
	if req.StartDate.IsZero() {
		return ValidationError{Message: "startDate is required"}
	}
	if req.Travelers < minTravelers || req.Travelers > maxTravelers {
		return ValidationError{Message: fmt.Sprintf("travelers must be between %d and %d", minTravelers, maxTravelers)}
	}
	return nil
}

// CreateBooking runs the booking workflow: resolve the trip, atomically reserve
// capacity, price the booking, persist it and fire the confirmation email.
func (s *DefaultBookingService) CreateBooking(req CreateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if err := s.validate(req); err != nil {
		return nil, err
	}

	if req.Accommodation == "" {
		req.Accommodation = models.AccommodationStandard
	}

	trip, err := s.TripRepo.GetByTripID(req.TripID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve trip: %w", err)
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}

	// Guard and decrement run as one conditional update, so two concurrent
	// bookings cannot both take the last spots.
	reserved, err := s.TripRepo.ReserveSpots(trip.TripID, req.Travelers)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve spots: %w", err)
	}
	if reserved == nil {
		return nil, InsufficientCapacityError{Available: trip.SpotsAvailable}
	}

	endDate := req.StartDate.AddDate(0, 0, DurationDays(trip.Duration))

	quote := Quote(QuoteInput{
		BasePricePerPerson: trip.Price,
		Travelers:          req.Travelers,
		Accommodation:      req.Accommodation,
		FlightNeeded:       req.FlightNeeded,
		Insurance:          req.Insurance,
		AddOns:             req.AddOns,
	})

	currency := trip.Currency
	if currency == "" {
		currency = "USD"
	}

	booking := &models.Booking{
		BookingID:     NewBookingReference(),
		TripID:        trip.TripID,
		TripTitle:     trip.Title,
		TripImage:     trip.Image,
		Customer:      models.Customer{Name: req.Name, Email: strings.ToLower(req.Email), Phone: req.Phone},
		StartDate:     req.StartDate,
		EndDate:       endDate,
		Travelers:     req.Travelers,
		Accommodation: req.Accommodation,
		FlightNeeded:  req.FlightNeeded,
		Insurance:     req.Insurance,
		AddOns:        req.AddOns,
		BasePrice:     quote.BasePrice,
		TotalPrice:    quote.TotalPrice,
		Currency:      currency,
		Status:        models.BookingStatusConfirmed,
		PaymentStatus: models.PaymentStatusPaid,
		PaymentRef:    req.PaymentIntentID,
		UserID:        req.UserID,
	}

	if err := s.BookingRepo.Create(booking); err != nil {
		// Compensate: give the reserved spots back so the trip is not left
		// short after a failed write.
		if relErr := s.TripRepo.ReleaseSpots(trip.TripID, req.Travelers); relErr != nil {
			logger.Error("failed to release spots after booking write failure",
				zap.String("tripId", trip.TripID), zap.Error(relErr))
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	// Confirmation email is best-effort and must never fail the booking.
	if err := s.Notifier.SendBookingConfirmation(*booking, *trip); err != nil {
		logger.Warn("booking confirmation email failed",
			zap.String("bookingId", booking.BookingID), zap.Error(err))
	}

	logger.Info("booking created",
		zap.String("bookingId", booking.BookingID),
		zap.String("tripId", trip.TripID),
		zap.Int("travelers", req.Travelers),
		zap.Int64("totalPrice", booking.TotalPrice))

	return booking, nil
}
