package models

import "time"

// ItineraryDay describes a single day of a trip itinerary.
type ItineraryDay struct {
	Day         int    `bson:"day" json:"day"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

// GroupSize bounds the allowed party size for a trip.
type GroupSize struct {
	Min int `bson:"min" json:"min"`
	Max int `bson:"max" json:"max"`
}

// Trip represents a sellable itinerary with finite capacity.
type Trip struct {
	TripID         string         `bson:"trip_id" json:"tripId"` // Stable external identifier, distinct from the Mongo _id.
	Title          string         `bson:"title" json:"title"`
	Location       string         `bson:"location" json:"location"`
	Duration       string         `bson:"duration" json:"duration"` // Free text; a leading integer denotes day count ("3 days").
	Budget         string         `bson:"budget" json:"budget"`
	Price          float64        `bson:"price" json:"price"` // Base price per person.
	Currency       string         `bson:"currency" json:"currency"`
	Tags           []string       `bson:"tags" json:"tags"`
	Image          string         `bson:"image" json:"image"`
	Images         []string       `bson:"images,omitempty" json:"images,omitempty"`
	Summary        string         `bson:"summary" json:"summary"`
	Description    string         `bson:"description,omitempty" json:"description,omitempty"`
	Itinerary      []ItineraryDay `bson:"itinerary,omitempty" json:"itinerary,omitempty"`
	Highlights     []string       `bson:"highlights,omitempty" json:"highlights,omitempty"`
	Included       []string       `bson:"included,omitempty" json:"included,omitempty"`
	NotIncluded    []string       `bson:"not_included,omitempty" json:"notIncluded,omitempty"`
	Rating         float64        `bson:"rating" json:"rating"` // Denormalized mean of review ratings, one decimal.
	ReviewCount    int            `bson:"review_count" json:"reviewCount"`
	SpotsAvailable int            `bson:"spots_available" json:"spotsAvailable"` // Invariant: 0 <= spots_available <= max_spots.
	MaxSpots       int            `bson:"max_spots" json:"maxSpots"`
	Featured       bool           `bson:"featured" json:"featured"`
	Difficulty     string         `bson:"difficulty" json:"difficulty"` // "Easy", "Moderate" or "Challenging".
	GroupSize      GroupSize      `bson:"group_size" json:"groupSize"`
	StartDates     []time.Time    `bson:"start_dates,omitempty" json:"startDates,omitempty"`
	CreatedAt      time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time      `bson:"updated_at" json:"updatedAt"`
}
