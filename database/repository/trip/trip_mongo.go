package tripRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travelogue/database"
	"travelogue/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTripRepo implements TripRepository using MongoDB.
type MongoTripRepo struct {
	coll *mongo.Collection
}

// NewMongoTripRepo creates a new instance of TripRepository using MongoDB.
func NewMongoTripRepo() TripRepository {
	repo := &MongoTripRepo{coll: database.Collection("trips")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create trip indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTripRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "trip_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "featured", Value: 1}, {Key: "rating", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByTripID retrieves a trip by its external identifier.
func (r *MongoTripRepo) GetByTripID(tripID string) (*models.Trip, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var trip models.Trip
	if err := r.coll.FindOne(ctx, bson.M{"trip_id": tripID}).Decode(&trip); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch trip with id %s: %w", tripID, err)
	}
	return &trip, nil
}

// sortSpec translates a "-field" style sort key into a bson sort document.
func sortSpec(sort string) bson.D {
	if sort == "" {
		sort = "-created_at"
	}
	spec := bson.D{}
	for _, field := range strings.Fields(sort) {
		order := 1
		if strings.HasPrefix(field, "-") {
			order = -1
			field = strings.TrimPrefix(field, "-")
		}
		spec = append(spec, bson.E{Key: field, Value: order})
	}
	return spec
}

// List retrieves trips matching the given search criteria.
func (r *MongoTripRepo) List(criteria TripSearchCriteria) ([]models.Trip, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}

	if criteria.Search != "" {
		regex := primitive.Regex{Pattern: criteria.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"location": regex},
			bson.M{"summary": regex},
			bson.M{"tags": regex},
		}
	}

	if len(criteria.Tags) > 0 {
		query["tags"] = bson.M{"$in": criteria.Tags}
	}

	if criteria.MinPrice > 0 || criteria.MaxPrice > 0 {
		price := bson.M{}
		if criteria.MinPrice > 0 {
			price["$gte"] = criteria.MinPrice
		}
		if criteria.MaxPrice > 0 {
			price["$lte"] = criteria.MaxPrice
		}
		query["price"] = price
	}

	if criteria.Duration != "" {
		query["duration"] = primitive.Regex{Pattern: criteria.Duration, Options: "i"}
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().SetSort(sortSpec(criteria.Sort)).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode trips: %w", err)
	}
	return trips, nil
}

// ListFeatured retrieves featured trips ordered by rating.
func (r *MongoTripRepo) ListFeatured(limit int64) ([]models.Trip, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"featured": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured trips: %w", err)
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode featured trips: %w", err)
	}

	// No curated picks yet; fall back to top-rated.
	if len(trips) == 0 {
		cursor, err := r.coll.Find(ctx, bson.M{}, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list top-rated trips: %w", err)
		}
		defer cursor.Close(ctx)
		if err := cursor.All(ctx, &trips); err != nil {
			return nil, fmt.Errorf("failed to decode top-rated trips: %w", err)
		}
	}
	return trips, nil
}

// ListPopular retrieves trips ordered by review count then rating.
func (r *MongoTripRepo) ListPopular(limit int64) ([]models.Trip, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "review_count", Value: -1}, {Key: "rating", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list popular trips: %w", err)
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode popular trips: %w", err)
	}
	return trips, nil
}

// ListSimilar retrieves trips sharing tags or location with the given trip.
func (r *MongoTripRepo) ListSimilar(trip *models.Trip, limit int64) ([]models.Trip, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	// Match on any shared tag, or the leading segment of the location ("Kyoto, Japan" -> "Kyoto").
	locality := strings.TrimSpace(strings.Split(trip.Location, ",")[0])
	query := bson.M{
		"trip_id": bson.M{"$ne": trip.TripID},
		"$or": bson.A{
			bson.M{"tags": bson.M{"$in": trip.Tags}},
			bson.M{"location": primitive.Regex{Pattern: locality, Options: "i"}},
		},
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list similar trips: %w", err)
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode similar trips: %w", err)
	}
	return trips, nil
}

// DistinctTags retrieves all unique tags across trips.
func (r *MongoTripRepo) DistinctTags() ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	values, err := r.coll.Distinct(ctx, "tags", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch distinct tags: %w", err)
	}

	tags := make([]string, 0, len(values))
	for _, v := range values {
		if tag, ok := v.(string); ok {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

// Create inserts a new trip document.
func (r *MongoTripRepo) Create(trip *models.Trip) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, trip); err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// Update applies the given field updates and returns the updated trip.
func (r *MongoTripRepo) Update(tripID string, fields map[string]interface{}) (*models.Trip, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var trip models.Trip
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"trip_id": tripID}, bson.M{"$set": set}, opts).Decode(&trip)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update trip with id %s: %w", tripID, err)
	}
	return &trip, nil
}

// Delete removes a trip document by its external identifier.
func (r *MongoTripRepo) Delete(tripID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"trip_id": tripID})
	if err != nil {
		return false, fmt.Errorf("failed to delete trip with id %s: %w", tripID, err)
	}
	return result.DeletedCount > 0, nil
}

// ReserveSpots atomically decrements spots_available, guarded by availability.
// The guard and decrement run as a single conditional update so concurrent
// bookings can never drive the counter negative.
func (r *MongoTripRepo) ReserveSpots(tripID string, travelers int) (*models.Trip, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"trip_id":         tripID,
		"spots_available": bson.M{"$gte": travelers},
	}
	update := bson.M{
		"$inc": bson.M{"spots_available": -travelers},
		"$set": bson.M{"updated_at": time.Now()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var trip models.Trip
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&trip)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to reserve %d spots on trip %s: %w", travelers, tripID, err)
	}
	return &trip, nil
}

// ReleaseSpots increments spots_available by travelers, capped at max_spots.
// Uses a pipeline update so the cap is applied server-side.
func (r *MongoTripRepo) ReleaseSpots(tripID string, travelers int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := bson.A{
		bson.M{"$set": bson.M{
			"spots_available": bson.M{"$min": bson.A{
				"$max_spots",
				bson.M{"$add": bson.A{"$spots_available", travelers}},
			}},
			"updated_at": time.Now(),
		}},
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"trip_id": tripID}, pipeline)
	if err != nil {
		return fmt.Errorf("failed to release %d spots on trip %s: %w", travelers, tripID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trip with id %s not found", tripID)
	}
	return nil
}

// UpdateRating persists the denormalized review aggregate on the trip.
func (r *MongoTripRepo) UpdateRating(tripID string, rating float64, reviewCount int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"rating":       rating,
		"review_count": reviewCount,
		"updated_at":   time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"trip_id": tripID}, update)
	if err != nil {
		return fmt.Errorf("failed to update rating for trip %s: %w", tripID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trip with id %s not found", tripID)
	}
	return nil
}
