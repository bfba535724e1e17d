package reviewRepo

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"travelogue/database"
	"travelogue/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	repo := &MongoReviewRepo{coll: database.Collection("reviews")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create review indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "trip_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	review.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

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

// ListByTrip retrieves reviews for a trip with the given sort and limit.
func (r *MongoReviewRepo) ListByTrip(tripID string, sort string, limit int64) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 20
	}

	opts := options.Find().SetSort(sortSpec(sort)).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"trip_id": tripID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for trip %s: %w", tripID, err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// ListRecent retrieves recent reviews rated at or above minRating.
func (r *MongoReviewRepo) ListRecent(minRating int, limit int64) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 6
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"rating": bson.M{"$gte": minRating}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// IncrementHelpful bumps the helpful counter and returns the updated review.
func (r *MongoReviewRepo) IncrementHelpful(reviewID string) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var review models.Review
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": reviewID}, bson.M{"$inc": bson.M{"helpful": 1}}, opts).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to increment helpful for review %s: %w", reviewID, err)
	}
	return &review, nil
}

// AggregateByTrip computes the rating aggregate over all reviews for a trip.
func (r *MongoReviewRepo) AggregateByTrip(tripID string) (*models.ReviewStats, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"trip_id": tripID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":       "$trip_id",
			"avgRating": bson.M{"$avg": "$rating"},
			"count":     bson.M{"$sum": 1},
			"ratings":   bson.M{"$push": "$rating"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate reviews for trip %s: %w", tripID, err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		AvgRating float64 `bson:"avgRating"`
		Count     int     `bson:"count"`
		Ratings   []int   `bson:"ratings"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode review aggregate: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	distribution := map[int]int{5: 0, 4: 0, 3: 0, 2: 0, 1: 0}
	for _, rating := range results[0].Ratings {
		distribution[rating]++
	}

	return &models.ReviewStats{
		AvgRating:    math.Round(results[0].AvgRating*10) / 10,
		TotalReviews: results[0].Count,
		Distribution: distribution,
	}, nil
}
