package tripRepo

import "travelogue/models"

// TripRepository defines methods for trip data access.
type TripRepository interface {
	// GetByTripID retrieves a trip by its external identifier. Returns nil when absent.
	GetByTripID(tripID string) (*models.Trip, error)
	// List retrieves trips matching the given search criteria.
	List(criteria TripSearchCriteria) ([]models.Trip, error)
	// ListFeatured retrieves featured trips ordered by rating.
	ListFeatured(limit int64) ([]models.Trip, error)
	// ListPopular retrieves trips ordered by review count then rating.
	ListPopular(limit int64) ([]models.Trip, error)
	// ListSimilar retrieves trips sharing tags or location with the given trip.
	ListSimilar(trip *models.Trip, limit int64) ([]models.Trip, error)
	// DistinctTags retrieves all unique tags across trips.
	DistinctTags() ([]string, error)
	// Create inserts a new trip record.
	Create(trip *models.Trip) error
	// Update applies the given field updates and returns the updated trip.
	// Returns nil when the trip does not exist.
	Update(tripID string, fields map[string]interface{}) (*models.Trip, error)
	// Delete removes a trip by its external identifier.
	Delete(tripID string) (bool, error)
	// ReserveSpots atomically decrements spots_available by travelers, guarded by
	// spots_available >= travelers. Returns the updated trip, or nil when the
	// guard did not match (trip missing or insufficient capacity).
	ReserveSpots(tripID string, travelers int) (*models.Trip, error)
	// ReleaseSpots increments spots_available by travelers, capped at max_spots.
	ReleaseSpots(tripID string, travelers int) error
	// UpdateRating persists the denormalized review aggregate on the trip.
	UpdateRating(tripID string, rating float64, reviewCount int) error
}

// TripSearchCriteria holds parameters for catalog queries.
type TripSearchCriteria struct {
	Search   string   // Matches title, location, summary or tags, case-insensitive.
	Tags     []string // Any-of tag filter.
	MinPrice float64
	MaxPrice float64
	Duration string // Substring match on the duration text.
	Sort     string // Mongo-style sort key, "-" prefix for descending.
	Limit    int64
}
