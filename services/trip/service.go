package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tripRepo "travelogue/database/repository/trip"
	"travelogue/models"
	"travelogue/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrTripNotFound is returned when no trip matches the given identifier.
var ErrTripNotFound = errors.New("trip not found")

const (
	featuredCacheKey = "trips:featured"
	featuredCacheTTL = 10 * time.Minute
	featuredLimit    = 6
	popularLimit     = 8
	similarLimit     = 4
)

// ListTrips retrieves trips matching the given search criteria.
func (s *DefaultTripService) ListTrips(criteria tripRepo.TripSearchCriteria) ([]models.Trip, error) {
	trips, err := s.Repo.List(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

// FeaturedTrips retrieves the featured list, read-through cached in Redis.
func (s *DefaultTripService) FeaturedTrips() ([]models.Trip, error) {
	ctx := context.Background()

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, featuredCacheKey).Result(); err == nil {
			var trips []models.Trip
			if err := json.Unmarshal([]byte(raw), &trips); err == nil {
				return trips, nil
			}
		}
	}

	trips, err := s.Repo.ListFeatured(featuredLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured trips: %w", err)
	}

	if s.Cache != nil {
		if data, err := json.Marshal(trips); err == nil {
			if err := s.Cache.Set(ctx, featuredCacheKey, data, featuredCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache featured trips", zap.Error(err))
			}
		}
	}
	return trips, nil
}

// invalidateFeatured drops the cached featured list after an admin write.
func (s *DefaultTripService) invalidateFeatured() {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), featuredCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate featured trips cache", zap.Error(err))
	}
}

// PopularTrips retrieves trips ordered by review count then rating.
func (s *DefaultTripService) PopularTrips() ([]models.Trip, error) {
	trips, err := s.Repo.ListPopular(popularLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list popular trips: %w", err)
	}
	return trips, nil
}

// Tags retrieves all unique tags across trips.
func (s *DefaultTripService) Tags() ([]string, error) {
	tags, err := s.Repo.DistinctTags()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tags: %w", err)
	}
	return tags, nil
}

// GetTrip retrieves a trip by its external identifier.
func (s *DefaultTripService) GetTrip(tripID string) (*models.Trip, error) {
	trip, err := s.Repo.GetByTripID(tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trip: %w", err)
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}
	return trip, nil
}

// SimilarTrips retrieves trips sharing tags or location with the given trip.
func (s *DefaultTripService) SimilarTrips(tripID string) ([]models.Trip, error) {
	trip, err := s.GetTrip(tripID)
	if err != nil {
		return nil, err
	}
	trips, err := s.Repo.ListSimilar(trip, similarLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list similar trips: %w", err)
	}
	return trips, nil
}

// NewTripID generates an external trip identifier.
func NewTripID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return "trip-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + suffix
}

// CreateTrip inserts a new trip, filling catalog defaults.
func (s *DefaultTripService) CreateTrip(trip models.Trip) (*models.Trip, error) {
	if trip.TripID == "" {
		trip.TripID = NewTripID()
	}
	if trip.Currency == "" {
		trip.Currency = "USD"
	}
	if trip.Rating == 0 {
		trip.Rating = 4.5
	}
	if trip.SpotsAvailable == 0 {
		trip.SpotsAvailable = 12
	}
	if trip.MaxSpots == 0 {
		trip.MaxSpots = 15
	}
	if trip.Difficulty == "" {
		trip.Difficulty = "Moderate"
	}
	if trip.GroupSize.Min == 0 {
		trip.GroupSize.Min = 1
	}
	if trip.GroupSize.Max == 0 {
		trip.GroupSize.Max = 15
	}

	if err := s.Repo.Create(&trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}
	s.invalidateFeatured()
	return &trip, nil
}

// UpdateTrip applies the given field updates to a trip.
func (s *DefaultTripService) UpdateTrip(tripID string, fields map[string]interface{}) (*models.Trip, error) {
	trip, err := s.Repo.Update(tripID, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}
	s.invalidateFeatured()
	return trip, nil
}

// DeleteTrip removes a trip by its external identifier.
func (s *DefaultTripService) DeleteTrip(tripID string) error {
	deleted, err := s.Repo.Delete(tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if !deleted {
		return ErrTripNotFound
	}
	s.invalidateFeatured()
	return nil
}
