package models

import "time"

// ReviewAuthor identifies who wrote a review. Reviews do not require an account.
type ReviewAuthor struct {
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email,omitempty" json:"email,omitempty"`
	Avatar string `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// TripAspects are optional per-aspect sub-ratings (1-5).
type TripAspects struct {
	Accommodation int `bson:"accommodation,omitempty" json:"accommodation,omitempty"`
	Activities    int `bson:"activities,omitempty" json:"activities,omitempty"`
	Food          int `bson:"food,omitempty" json:"food,omitempty"`
	Guide         int `bson:"guide,omitempty" json:"guide,omitempty"`
	Value         int `bson:"value,omitempty" json:"value,omitempty"`
}

// Review is feedback attached to a trip, independent of any booking.
type Review struct {
	ID          string       `bson:"id" json:"id"`
	TripID      string       `bson:"trip_id" json:"tripId"`
	Author      ReviewAuthor `bson:"author" json:"author"`
	Rating      int          `bson:"rating" json:"rating"` // 1-5.
	Title       string       `bson:"title,omitempty" json:"title,omitempty"`
	Content     string       `bson:"content" json:"content"`
	TravelDate  *time.Time   `bson:"travel_date,omitempty" json:"travelDate,omitempty"`
	TripAspects *TripAspects `bson:"trip_aspects,omitempty" json:"tripAspects,omitempty"`
	Helpful     int          `bson:"helpful" json:"helpful"`
	Verified    bool         `bson:"verified" json:"verified"`
	CreatedAt   time.Time    `bson:"created_at" json:"createdAt"`
}

// ReviewStats is the aggregate over all reviews for one trip.
type ReviewStats struct {
	AvgRating    float64     `json:"avgRating"` // Rounded to one decimal.
	TotalReviews int         `json:"totalReviews"`
	Distribution map[int]int `json:"distribution"` // Star value -> count.
}
