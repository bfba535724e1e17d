package trip

import (
	tripRepo "travelogue/database/repository/trip"
	"travelogue/models"

	"github.com/go-redis/redis/v8"
)

// TripService defines catalog queries and admin-only trip management.
type TripService interface {
	ListTrips(criteria tripRepo.TripSearchCriteria) ([]models.Trip, error)
	FeaturedTrips() ([]models.Trip, error)
	PopularTrips() ([]models.Trip, error)
	Tags() ([]string, error)
	GetTrip(tripID string) (*models.Trip, error)
	SimilarTrips(tripID string) ([]models.Trip, error)
	CreateTrip(trip models.Trip) (*models.Trip, error)
	UpdateTrip(tripID string, fields map[string]interface{}) (*models.Trip, error)
	DeleteTrip(tripID string) error
}

// DefaultTripService implements TripService. Cache is optional; when set, the
// featured list is served read-through from Redis.
type DefaultTripService struct {
	Repo  tripRepo.TripRepository
	Cache *redis.Client
}
