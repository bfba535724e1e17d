package trip

import (
	"errors"
	"strings"
	"testing"

	tripRepo "travelogue/database/repository/trip"
	"travelogue/models"
)

type fakeTripRepo struct {
	trips         map[string]*models.Trip
	featuredCalls int
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

func (r *fakeTripRepo) List(criteria tripRepo.TripSearchCriteria) ([]models.Trip, error) {
	var out []models.Trip
	for _, t := range r.trips {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTripRepo) ListFeatured(limit int64) ([]models.Trip, error) {
	r.featuredCalls++
	var out []models.Trip
	for _, t := range r.trips {
		if t.Featured {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTripRepo) ListPopular(int64) ([]models.Trip, error) { return nil, nil }

func (r *fakeTripRepo) ListSimilar(trip *models.Trip, limit int64) ([]models.Trip, error) {
	var out []models.Trip
	for _, t := range r.trips {
		if t.TripID == trip.TripID {
			continue
		}
		if t.Location == trip.Location {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTripRepo) DistinctTags() ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, t := range r.trips {
		for _, tag := range t.Tags {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	return out, nil
}

func (r *fakeTripRepo) Create(trip *models.Trip) error {
	copied := *trip
	r.trips[trip.TripID] = &copied
	return nil
}

func (r *fakeTripRepo) Update(tripID string, fields map[string]interface{}) (*models.Trip, error) {
	t, ok := r.trips[tripID]
	if !ok {
		return nil, nil
	}
	if title, ok := fields["title"].(string); ok {
		t.Title = title
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTripRepo) Delete(tripID string) (bool, error) {
	if _, ok := r.trips[tripID]; !ok {
		return false, nil
	}
	delete(r.trips, tripID)
	return true, nil
}

func (r *fakeTripRepo) ReserveSpots(string, int) (*models.Trip, error) { return nil, nil }
func (r *fakeTripRepo) ReleaseSpots(string, int) error                 { return nil }
func (r *fakeTripRepo) UpdateRating(string, float64, int) error        { return nil }

func TestGetTrip(t *testing.T) {
	repo := newFakeTripRepo(&models.Trip{TripID: "t1", Title: "Amsterdam"})
	svc := &DefaultTripService{Repo: repo}

	found, err := svc.GetTrip("t1")
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	if found.Title != "Amsterdam" {
		t.Errorf("Title = %q, want Amsterdam", found.Title)
	}

	if _, err := svc.GetTrip("missing"); !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("err = %v, want ErrTripNotFound", err)
	}
}

func TestCreateTripFillsDefaults(t *testing.T) {
	repo := newFakeTripRepo()
	svc := &DefaultTripService{Repo: repo}

	created, err := svc.CreateTrip(models.Trip{Title: "New Trip", Price: 300})
	if err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}
	if created.TripID == "" || !strings.HasPrefix(created.TripID, "trip-") {
		t.Errorf("TripID = %q, want trip- prefix", created.TripID)
	}
	if created.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", created.Currency)
	}
	if created.SpotsAvailable != 12 || created.MaxSpots != 15 {
		t.Errorf("capacity defaults = %d/%d, want 12/15", created.SpotsAvailable, created.MaxSpots)
	}
	if created.Difficulty != "Moderate" {
		t.Errorf("Difficulty = %q, want Moderate", created.Difficulty)
	}
	if created.GroupSize.Min != 1 || created.GroupSize.Max != 15 {
		t.Errorf("group size defaults = %+v", created.GroupSize)
	}
}

func TestCreateTripKeepsExplicitValues(t *testing.T) {
	svc := &DefaultTripService{Repo: newFakeTripRepo()}

	created, err := svc.CreateTrip(models.Trip{
		TripID: "t-custom", Title: "Custom", Currency: "EUR",
		SpotsAvailable: 3, MaxSpots: 5, Difficulty: "Challenging",
	})
	if err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}
	if created.TripID != "t-custom" || created.Currency != "EUR" ||
		created.SpotsAvailable != 3 || created.MaxSpots != 5 {
		t.Errorf("explicit values overwritten: %+v", created)
	}
}

func TestUpdateTripNotFound(t *testing.T) {
	svc := &DefaultTripService{Repo: newFakeTripRepo()}
	if _, err := svc.UpdateTrip("missing", map[string]interface{}{"title": "X"}); !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("err = %v, want ErrTripNotFound", err)
	}
}

func TestDeleteTrip(t *testing.T) {
	repo := newFakeTripRepo(&models.Trip{TripID: "t1"})
	svc := &DefaultTripService{Repo: repo}

	if err := svc.DeleteTrip("t1"); err != nil {
		t.Fatalf("DeleteTrip: %v", err)
	}
	if err := svc.DeleteTrip("t1"); !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("err = %v, want ErrTripNotFound", err)
	}
}

func TestSimilarTrips(t *testing.T) {
	repo := newFakeTripRepo(
		&models.Trip{TripID: "t1", Location: "Greece"},
		&models.Trip{TripID: "t2", Location: "Greece"},
		&models.Trip{TripID: "t3", Location: "Japan"},
	)
	svc := &DefaultTripService{Repo: repo}

	similar, err := svc.SimilarTrips("t1")
	if err != nil {
		t.Fatalf("SimilarTrips: %v", err)
	}
	if len(similar) != 1 || similar[0].TripID != "t2" {
		t.Errorf("similar = %+v, want only t2", similar)
	}
}

func TestFeaturedTripsWithoutCache(t *testing.T) {
	repo := newFakeTripRepo(
		&models.Trip{TripID: "t1", Featured: true},
		&models.Trip{TripID: "t2"},
	)
	svc := &DefaultTripService{Repo: repo}

	featured, err := svc.FeaturedTrips()
	if err != nil {
		t.Fatalf("FeaturedTrips: %v", err)
	}
	if len(featured) != 1 || featured[0].TripID != "t1" {
		t.Errorf("featured = %+v, want only t1", featured)
	}
	if repo.featuredCalls != 1 {
		t.Errorf("featuredCalls = %d, want 1", repo.featuredCalls)
	}
}
