package review

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"travelogue/models"
	"travelogue/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTripNotFound   = errors.New("trip not found")
	ErrReviewNotFound = errors.New("review not found")
)

// ValidationError signals malformed review input.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

const recentMinRating = 4

func (s *DefaultReviewService) validate(req CreateReviewRequest) error {
	if req.TripID == "" {
		return ValidationError{Message: "tripId is required"}
	}
	if strings.TrimSpace(req.Name) == "" {
		return ValidationError{Message: "author name is required"}
	}
	if req.Rating < 1 || req.Rating > 5 {
		return ValidationError{Message: "rating must be between 1 and 5"}
	}
	if strings.TrimSpace(req.Content) == "" {
		return ValidationError{Message: "review content is required"}
	}
	return nil
}

// CreateReview persists a review and refreshes the parent trip's denormalized
// rating aggregate. The aggregate refresh is best-effort: the review write has
// already succeeded and is never rolled back.
func (s *DefaultReviewService) CreateReview(req CreateReviewRequest) (*models.Review, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	trip, err := s.TripRepo.GetByTripID(req.TripID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve trip: %w", err)
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}

	review := &models.Review{
		ID:     uuid.NewString(),
		TripID: req.TripID,
		Author: models.ReviewAuthor{
			Name:   req.Name,
			Email:  req.Email,
			Avatar: avatarURL(req.Name),
		},
		Rating:      req.Rating,
		Title:       req.Title,
		Content:     req.Content,
		TravelDate:  req.TravelDate,
		TripAspects: req.TripAspects,
	}

	if err := s.Repo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to persist review: %w", err)
	}

	s.refreshTripAggregate(req.TripID)

	return review, nil
}

// refreshTripAggregate recomputes rating and review count over all reviews for
// the trip and persists them on the trip record. Failures are logged only.
func (s *DefaultReviewService) refreshTripAggregate(tripID string) {
	logger := utils.GetLogger()

	stats, err := s.Repo.AggregateByTrip(tripID)
	if err != nil {
		logger.Warn("failed to aggregate reviews", zap.String("tripId", tripID), zap.Error(err))
		return
	}
	if stats == nil {
		return
	}

	if err := s.TripRepo.UpdateRating(tripID, stats.AvgRating, stats.TotalReviews); err != nil {
		logger.Warn("failed to update trip rating", zap.String("tripId", tripID), zap.Error(err))
	}
}

// avatarURL builds a generated avatar for reviewers without one.
func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}

// ListTripReviews retrieves reviews for a trip along with the rating aggregate.
func (s *DefaultReviewService) ListTripReviews(tripID, sort string, limit int64) ([]models.Review, *models.ReviewStats, error) {
	reviews, err := s.Repo.ListByTrip(tripID, sort, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	stats, err := s.Repo.AggregateByTrip(tripID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	return reviews, stats, nil
}

// RecentReviews retrieves the latest highly rated reviews for the homepage.
func (s *DefaultReviewService) RecentReviews(limit int64) ([]models.Review, error) {
	reviews, err := s.Repo.ListRecent(recentMinRating, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent reviews: %w", err)
	}
	return reviews, nil
}

// MarkHelpful bumps the helpful counter on a review.
func (s *DefaultReviewService) MarkHelpful(reviewID string) (*models.Review, error) {
	review, err := s.Repo.IncrementHelpful(reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark review helpful: %w", err)
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}
