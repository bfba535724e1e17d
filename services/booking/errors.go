package booking

import (
	"errors"
	"fmt"
)

// Caller-facing failure kinds for the booking workflows. Handlers map these to
// HTTP statuses; everything else is an upstream failure.
var (
	ErrTripNotFound     = errors.New("trip not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
)

// InsufficientCapacityError reports how many spots actually remain.
type InsufficientCapacityError struct {
	Available int
}

func (e InsufficientCapacityError) Error() string {
	return fmt.Sprintf("only %d spots available", e.Available)
}

// ValidationError signals malformed booking input.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}
