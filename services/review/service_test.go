package review

import (
	"errors"
	"math"
	"testing"

	tripRepo "travelogue/database/repository/trip"
	"travelogue/models"
)

type fakeReviewRepo struct {
	reviews      []models.Review
	aggregateErr error
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) ListByTrip(tripID string, sort string, limit int64) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.reviews {
		if rev.TripID == tripID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) ListRecent(minRating int, limit int64) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.reviews {
		if rev.Rating >= minRating {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) IncrementHelpful(reviewID string) (*models.Review, error) {
	for i := range r.reviews {
		if r.reviews[i].ID == reviewID {
			r.reviews[i].Helpful++
			copied := r.reviews[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeReviewRepo) AggregateByTrip(tripID string) (*models.ReviewStats, error) {
	if r.aggregateErr != nil {
		return nil, r.aggregateErr
	}
	sum, count := 0, 0
	distribution := map[int]int{5: 0, 4: 0, 3: 0, 2: 0, 1: 0}
	for _, rev := range r.reviews {
		if rev.TripID == tripID {
			sum += rev.Rating
			count++
			distribution[rev.Rating]++
		}
	}
	if count == 0 {
		return nil, nil
	}
	avg := math.Round(float64(sum)/float64(count)*10) / 10
	return &models.ReviewStats{AvgRating: avg, TotalReviews: count, Distribution: distribution}, nil
}

type fakeTripRepo struct {
	trips       map[string]*models.Trip
	ratedWith   float64
	ratedCount  int
	ratingCalls int
}

func newFakeTripRepo(trips ...*models.Trip) *fakeTripRepo {
	repo := &fakeTripRepo{trips: make(map[string]*models.Trip)}
	for _, t := range trips {
		repo.trips[t.TripID] = t
	}
	return repo
}

func (r *fakeTripRepo) GetByTripID(tripID string) (*models.Trip, error) {
	if t, ok := r.trips[tripID]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeTripRepo) List(tripRepo.TripSearchCriteria) ([]models.Trip, error) { return nil, nil }
func (r *fakeTripRepo) ListFeatured(int64) ([]models.Trip, error)              { return nil, nil }
func (r *fakeTripRepo) ListPopular(int64) ([]models.Trip, error)               { return nil, nil }
func (r *fakeTripRepo) ListSimilar(*models.Trip, int64) ([]models.Trip, error) { return nil, nil }
func (r *fakeTripRepo) DistinctTags() ([]string, error)                        { return nil, nil }
func (r *fakeTripRepo) Create(trip *models.Trip) error                         { return nil }
func (r *fakeTripRepo) Update(string, map[string]interface{}) (*models.Trip, error) {
	return nil, nil
}
func (r *fakeTripRepo) Delete(string) (bool, error)                          { return false, nil }
func (r *fakeTripRepo) ReserveSpots(string, int) (*models.Trip, error)       { return nil, nil }
func (r *fakeTripRepo) ReleaseSpots(string, int) error                       { return nil }

func (r *fakeTripRepo) UpdateRating(tripID string, rating float64, reviewCount int) error {
	r.ratingCalls++
	r.ratedWith = rating
	r.ratedCount = reviewCount
	return nil
}

func newService(reviews *fakeReviewRepo, trips *fakeTripRepo) *DefaultReviewService {
	return &DefaultReviewService{Repo: reviews, TripRepo: trips}
}

func TestCreateReviewUpdatesTripAggregate(t *testing.T) {
	reviews := &fakeReviewRepo{}
	trips := newFakeTripRepo(&models.Trip{TripID: "t1", Title: "Amsterdam"})
	svc := newService(reviews, trips)

	ratings := []int{5, 5, 4, 3}
	for _, rating := range ratings {
		_, err := svc.CreateReview(CreateReviewRequest{
			TripID:  "t1",
			Name:    "Reviewer",
			Rating:  rating,
			Content: "Great trip, would go again.",
		})
		if err != nil {
			t.Fatalf("CreateReview: %v", err)
		}
	}

	// (5+5+4+3)/4 = 4.25, rounded to one decimal.
	if trips.ratedWith != 4.3 {
		t.Errorf("trip rating = %v, want 4.3", trips.ratedWith)
	}
	if trips.ratedCount != 4 {
		t.Errorf("trip review count = %d, want 4", trips.ratedCount)
	}
}

func TestCreateReviewSetsGeneratedFields(t *testing.T) {
	reviews := &fakeReviewRepo{}
	trips := newFakeTripRepo(&models.Trip{TripID: "t1"})
	svc := newService(reviews, trips)

	created, err := svc.CreateReview(CreateReviewRequest{
		TripID:  "t1",
		Name:    "Emma Wilson",
		Rating:  5,
		Content: "Loved it.",
	})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if created.ID == "" {
		t.Error("review ID not generated")
	}
	if created.Author.Avatar == "" {
		t.Error("avatar URL not generated")
	}
}

func TestCreateReviewTripNotFound(t *testing.T) {
	svc := newService(&fakeReviewRepo{}, newFakeTripRepo())
	_, err := svc.CreateReview(CreateReviewRequest{
		TripID: "missing", Name: "A", Rating: 5, Content: "x",
	})
	if !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("err = %v, want ErrTripNotFound", err)
	}
}

func TestCreateReviewValidation(t *testing.T) {
	svc := newService(&fakeReviewRepo{}, newFakeTripRepo(&models.Trip{TripID: "t1"}))

	tests := []struct {
		name string
		req  CreateReviewRequest
	}{
		{"missing trip", CreateReviewRequest{Name: "A", Rating: 5, Content: "x"}},
		{"missing name", CreateReviewRequest{TripID: "t1", Rating: 5, Content: "x"}},
		{"rating too low", CreateReviewRequest{TripID: "t1", Name: "A", Rating: 0, Content: "x"}},
		{"rating too high", CreateReviewRequest{TripID: "t1", Name: "A", Rating: 6, Content: "x"}},
		{"missing content", CreateReviewRequest{TripID: "t1", Name: "A", Rating: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateReview(tt.req)
			var vErr ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("err = %v, want ValidationError", err)
			}
		})
	}
}

func TestCreateReviewAggregateFailureNonFatal(t *testing.T) {
	reviews := &fakeReviewRepo{aggregateErr: errors.New("aggregation failed")}
	trips := newFakeTripRepo(&models.Trip{TripID: "t1"})
	svc := newService(reviews, trips)

	created, err := svc.CreateReview(CreateReviewRequest{
		TripID: "t1", Name: "A", Rating: 4, Content: "x",
	})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if created == nil {
		t.Fatal("review write should survive aggregate failure")
	}
	if trips.ratingCalls != 0 {
		t.Error("rating updated despite aggregate failure")
	}
}

func TestListTripReviewsWithStats(t *testing.T) {
	reviews := &fakeReviewRepo{reviews: []models.Review{
		{ID: "r1", TripID: "t1", Rating: 5},
		{ID: "r2", TripID: "t1", Rating: 4},
		{ID: "r3", TripID: "t2", Rating: 1},
	}}
	svc := newService(reviews, newFakeTripRepo())

	list, stats, err := svc.ListTripReviews("t1", "-created_at", 20)
	if err != nil {
		t.Fatalf("ListTripReviews: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("len(list) = %d, want 2", len(list))
	}
	if stats == nil || stats.AvgRating != 4.5 || stats.TotalReviews != 2 {
		t.Errorf("stats = %+v, want avg 4.5 over 2", stats)
	}
}

func TestMarkHelpful(t *testing.T) {
	reviews := &fakeReviewRepo{reviews: []models.Review{{ID: "r1", TripID: "t1", Rating: 5}}}
	svc := newService(reviews, newFakeTripRepo())

	updated, err := svc.MarkHelpful("r1")
	if err != nil {
		t.Fatalf("MarkHelpful: %v", err)
	}
	if updated.Helpful != 1 {
		t.Errorf("Helpful = %d, want 1", updated.Helpful)
	}

	if _, err := svc.MarkHelpful("missing"); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("err = %v, want ErrReviewNotFound", err)
	}
}
