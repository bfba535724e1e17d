package reviewRepo

import "travelogue/models"

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new review record.
	Create(review *models.Review) error
	// ListByTrip retrieves reviews for a trip with the given sort and limit.
	ListByTrip(tripID string, sort string, limit int64) ([]models.Review, error)
	// ListRecent retrieves recent reviews rated at or above minRating.
	ListRecent(minRating int, limit int64) ([]models.Review, error)
	// IncrementHelpful bumps the helpful counter and returns the updated review.
	// Returns nil when the review does not exist.
	IncrementHelpful(reviewID string) (*models.Review, error)
	// AggregateByTrip computes the rating aggregate over all reviews for a trip.
	// Returns nil when the trip has no reviews.
	AggregateByTrip(tripID string) (*models.ReviewStats, error)
}
