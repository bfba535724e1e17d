package handlers

import (
	userRepoPkg "travelogue/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration only needs a single dependency.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Trips    *TripHandler
	Bookings *BookingHandler
	Reviews  *ReviewHandler
	Auth     *AuthHandler
	Payments *PaymentHandler
}
