package review

import (
	"time"

	reviewRepo "travelogue/database/repository/review"
	tripRepo "travelogue/database/repository/trip"
	"travelogue/models"
)

// ReviewService defines review submission, listing and engagement.
type ReviewService interface {
	CreateReview(req CreateReviewRequest) (*models.Review, error)
	ListTripReviews(tripID, sort string, limit int64) ([]models.Review, *models.ReviewStats, error)
	RecentReviews(limit int64) ([]models.Review, error)
	MarkHelpful(reviewID string) (*models.Review, error)
}

// CreateReviewRequest is the inbound payload for a new review.
type CreateReviewRequest struct {
	TripID      string
	Name        string
	Email       string
	Rating      int
	Title       string
	Content     string
	TravelDate  *time.Time
	TripAspects *models.TripAspects
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	TripRepo tripRepo.TripRepository
}
