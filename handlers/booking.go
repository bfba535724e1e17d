package handlers

import (
	"errors"
	"net/http"
	"time"

	bookingRepo "travelogue/database/repository/booking"
	"travelogue/models"
	"travelogue/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	service booking.BookingService
	logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{service: service, logger: logger}
}

type createBookingRequest struct {
	TripID          string         `json:"tripId" binding:"required"`
	Name            string         `json:"name" binding:"required"`
	Email           string         `json:"email" binding:"required,email"`
	Phone           string         `json:"phone"`
	StartDate       string         `json:"startDate" binding:"required"`
	Travelers       int            `json:"travelers" binding:"required"`
	Accommodation   string         `json:"accommodation"`
	FlightNeeded    bool           `json:"flightNeeded"`
	Insurance       bool           `json:"insurance"`
	AddOns          []models.AddOn `json:"addOns"`
	UserID          string         `json:"userId"`
	PaymentIntentID string         `json:"paymentIntentId"`
}

// parseDate accepts plain dates and RFC3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid startDate"})
		return
	}

	created, err := h.service.CreateBooking(booking.CreateBookingRequest{
		TripID:          req.TripID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		StartDate:       startDate,
		Travelers:       req.Travelers,
		Accommodation:   req.Accommodation,
		FlightNeeded:    req.FlightNeeded,
		Insurance:       req.Insurance,
		AddOns:          req.AddOns,
		UserID:          req.UserID,
		PaymentIntentID: req.PaymentIntentID,
	})
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    created,
		"message": "Booking confirmed! Check your email for details.",
	})
}

// ListBookings handles GET /api/bookings?email=&userId=.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	criteria := bookingRepo.BookingSearchCriteria{
		Email:  c.Query("email"),
		UserID: c.Query("userId"),
	}

	bookings, err := h.service.ListBookings(criteria)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(bookings), "data": bookings})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	found, err := h.service.GetBooking(c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": found})
}

// CancelBooking handles PATCH /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	cancelled, err := h.service.CancelBooking(c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cancelled,
		"message": "Booking cancelled. Refund will be processed within 5-7 business days.",
	})
}

// respondBookingError maps booking failure kinds to HTTP statuses.
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var capacityErr booking.InsufficientCapacityError
	var validationErr booking.ValidationError

	switch {
	case errors.Is(err, booking.ErrTripNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Trip not found"})
	case errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Booking not found"})
	case errors.Is(err, booking.ErrAlreadyCancelled):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Booking already cancelled"})
	case errors.As(err, &capacityErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success":        false,
			"error":          capacityErr.Error(),
			"spotsAvailable": capacityErr.Available,
		})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validationErr.Message})
	default:
		h.logger.Error("booking request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
	}
}
