package models

import "time"

// Accommodation tiers with fixed price multipliers.
const (
	AccommodationStandard = "standard"
	AccommodationComfort  = "comfort"
	AccommodationLuxury   = "luxury"
)

// Booking status values. Transitions only confirmed -> cancelled.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Payment status values.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Customer holds the contact details attached to a booking. Guests may book
// without an account, so this is carried on the booking itself.
type Customer struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// AddOn is a named extra with its own price, added to the total verbatim.
type AddOn struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// Booking represents a priced reservation of traveler slots on a trip.
type Booking struct {
	BookingID string `bson:"booking_id" json:"bookingId"` // Human-shareable reference, unique and stable once assigned.
	TripID    string `bson:"trip_id" json:"tripId"`
	TripTitle string `bson:"trip_title" json:"tripTitle"`
	TripImage string `bson:"trip_image,omitempty" json:"tripImage,omitempty"`

	Customer  Customer  `bson:"customer" json:"customer"`
	StartDate time.Time `bson:"start_date" json:"startDate"`
	EndDate   time.Time `bson:"end_date" json:"endDate"` // start date + trip duration in days.
	Travelers int       `bson:"travelers" json:"travelers"`

	Accommodation string  `bson:"accommodation" json:"accommodation"`
	FlightNeeded  bool    `bson:"flight_needed" json:"flightNeeded"`
	Insurance     bool    `bson:"insurance" json:"insurance"`
	AddOns        []AddOn `bson:"add_ons,omitempty" json:"addOns,omitempty"`

	BasePrice  float64 `bson:"base_price" json:"basePrice"`
	TotalPrice int64   `bson:"total_price" json:"totalPrice"` // Integral currency units; recomputable from the stored inputs.
	Currency   string  `bson:"currency" json:"currency"`

	Status        string `bson:"status" json:"status"`
	PaymentStatus string `bson:"payment_status" json:"paymentStatus"`
	PaymentRef    string `bson:"payment_ref,omitempty" json:"paymentRef,omitempty"` // Stripe payment intent ID when supplied.
	UserID        string `bson:"user_id,omitempty" json:"userId,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
