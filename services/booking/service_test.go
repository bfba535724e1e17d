package booking

import (
	"errors"
	"testing"
	"time"

	bookingRepo "travelogue/database/repository/booking"
	tripRepo "travelogue/database/repository/trip"
	"travelogue/models"
)

type fakeTripRepo struct {
	trips        map[string]*models.Trip
	reserveErr   error
	releaseCalls int
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
func (r *fakeTripRepo) Create(trip *models.Trip) error {
	r.trips[trip.TripID] = trip
	return nil
}
func (r *fakeTripRepo) Update(string, map[string]interface{}) (*models.Trip, error) {
	return nil, nil
}
func (r *fakeTripRepo) Delete(string) (bool, error) { return false, nil }

func (r *fakeTripRepo) ReserveSpots(tripID string, travelers int) (*models.Trip, error) {
	if r.reserveErr != nil {
		return nil, r.reserveErr
	}
	t, ok := r.trips[tripID]
	if !ok || t.SpotsAvailable < travelers {
		return nil, nil
	}
	t.SpotsAvailable -= travelers
	copied := *t
	return &copied, nil
}

func (r *fakeTripRepo) ReleaseSpots(tripID string, travelers int) error {
	r.releaseCalls++
	t, ok := r.trips[tripID]
	if !ok {
		return nil
	}
	t.SpotsAvailable += travelers
	if t.SpotsAvailable > t.MaxSpots {
		t.SpotsAvailable = t.MaxSpots
	}
	return nil
}

func (r *fakeTripRepo) UpdateRating(string, float64, int) error { return nil }

type fakeBookingRepo struct {
	bookings  map[string]*models.Booking
	createErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(booking *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *booking
	r.bookings[booking.BookingID] = &copied
	return nil
}

func (r *fakeBookingRepo) GetByBookingID(bookingID string) (*models.Booking, error) {
	if b, ok := r.bookings[bookingID]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeBookingRepo) List(bookingRepo.BookingSearchCriteria) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) MarkCancelled(bookingID string) (bool, error) {
	b, ok := r.bookings[bookingID]
	if !ok || b.Status == models.BookingStatusCancelled {
		return false, nil
	}
	b.Status = models.BookingStatusCancelled
	b.PaymentStatus = models.PaymentStatusRefunded
	return true, nil
}

type fakeNotifier struct {
	confirmations int
	cancellations int
	err           error
}

func (n *fakeNotifier) SendBookingConfirmation(models.Booking, models.Trip) error {
	n.confirmations++
	return n.err
}

func (n *fakeNotifier) SendBookingCancellation(models.Booking, models.Trip) error {
	n.cancellations++
	return n.err
}

func sampleTrip() *models.Trip {
	return &models.Trip{
		TripID:         "t-test",
		Title:          "Santorini Sunset Escape",
		Location:       "Santorini, Greece",
		Duration:       "3 days",
		Price:          100,
		Currency:       "EUR",
		SpotsAvailable: 5,
		MaxSpots:       10,
	}
}

func newService(trips *fakeTripRepo, bookings *fakeBookingRepo, notifier *fakeNotifier) *DefaultBookingService {
	return &DefaultBookingService{TripRepo: trips, BookingRepo: bookings, Notifier: notifier}
}

func TestCreateBooking(t *testing.T) {
	trips := newFakeTripRepo(sampleTrip())
	bookings := newFakeBookingRepo()
	notifier := &fakeNotifier{}
	svc := newService(trips, bookings, notifier)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.CreateBooking(CreateBookingRequest{
		TripID:        "t-test",
		Name:          "Ada Traveler",
		Email:         "Ada@Example.com",
		StartDate:     start,
		Travelers:     2,
		Accommodation: models.AccommodationLuxury,
		FlightNeeded:  true,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	// 100 x 2 = 200 base; x1.8 = 360; + 40% of base = 440.
	if created.TotalPrice != 440 {
		t.Errorf("TotalPrice = %d, want 440", created.TotalPrice)
	}
	if created.BasePrice != 200 {
		t.Errorf("BasePrice = %v, want 200", created.BasePrice)
	}
	wantEnd := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	if !created.EndDate.Equal(wantEnd) {
		t.Errorf("EndDate = %v, want %v", created.EndDate, wantEnd)
	}
	if created.Status != models.BookingStatusConfirmed {
		t.Errorf("Status = %q, want confirmed", created.Status)
	}
	if created.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("PaymentStatus = %q, want paid", created.PaymentStatus)
	}
	if created.Customer.Email != "ada@example.com" {
		t.Errorf("customer email not lowercased: %q", created.Customer.Email)
	}
	if created.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", created.Currency)
	}
	if len(created.BookingID) < 2 || created.BookingID[:2] != "BK" {
		t.Errorf("BookingID = %q, want BK prefix", created.BookingID)
	}

	if got := trips.trips["t-test"].SpotsAvailable; got != 3 {
		t.Errorf("spots after booking = %d, want 3", got)
	}
	if _, ok := bookings.bookings[created.BookingID]; !ok {
		t.Error("booking not persisted")
	}
	if notifier.confirmations != 1 {
		t.Errorf("confirmations = %d, want 1", notifier.confirmations)
	}
}

func TestCreateBookingTripNotFound(t *testing.T) {
	svc := newService(newFakeTripRepo(), newFakeBookingRepo(), &fakeNotifier{})

	_, err := svc.CreateBooking(CreateBookingRequest{
		TripID: "missing", Name: "A", Email: "a@b.com",
		StartDate: time.Now(), Travelers: 1,
	})
	if !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("err = %v, want ErrTripNotFound", err)
	}
}

func TestCreateBookingInsufficientCapacity(t *testing.T) {
	trips := newFakeTripRepo(sampleTrip())
	bookings := newFakeBookingRepo()
	svc := newService(trips, bookings, &fakeNotifier{})

	_, err := svc.CreateBooking(CreateBookingRequest{
		TripID: "t-test", Name: "A", Email: "a@b.com",
		StartDate: time.Now(), Travelers: 6,
	})

	var capErr InsufficientCapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("err = %v, want InsufficientCapacityError", err)
	}
	if capErr.Available != 5 {
		t.Errorf("Available = %d, want 5", capErr.Available)
	}
	if got := trips.trips["t-test"].SpotsAvailable; got != 5 {
		t.Errorf("spots mutated on rejected booking: %d", got)
	}
	if len(bookings.bookings) != 0 {
		t.Error("booking persisted despite capacity rejection")
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc := newService(newFakeTripRepo(sampleTrip()), newFakeBookingRepo(), &fakeNotifier{})
	start := time.Now()

	tests := []struct {
		name string
		req  CreateBookingRequest
	}{
		{"missing trip", CreateBookingRequest{Name: "A", Email: "a@b.com", StartDate: start, Travelers: 1}},
		{"missing name", CreateBookingRequest{TripID: "t-test", Email: "a@b.com", StartDate: start, Travelers: 1}},
		{"missing email", CreateBookingRequest{TripID: "t-test", Name: "A", StartDate: start, Travelers: 1}},
		{"missing start date", CreateBookingRequest{TripID: "t-test", Name: "A", Email: "a@b.com", Travelers: 1}},
		{"zero travelers", CreateBookingRequest{TripID: "t-test", Name: "A", Email: "a@b.com", StartDate: start}},
		{"too many travelers", CreateBookingRequest{TripID: "t-test", Name: "A", Email: "a@b.com", StartDate: start, Travelers: 11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBooking(tt.req)
			var vErr ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("err = %v, want ValidationError", err)
			}
		})
	}
}

func TestCreateBookingNotifyFailureDoesNotFailBooking(t *testing.T) {
	trips := newFakeTripRepo(sampleTrip())
	svc := newService(trips, newFakeBookingRepo(), &fakeNotifier{err: errors.New("smtp down")})

	created, err := svc.CreateBooking(CreateBookingRequest{
		TripID: "t-test", Name: "A", Email: "a@b.com",
		StartDate: time.Now(), Travelers: 1,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if created == nil {
		t.Fatal("expected booking despite email failure")
	}
}

func TestCreateBookingReleasesSpotsOnWriteFailure(t *testing.T) {
	trips := newFakeTripRepo(sampleTrip())
	bookings := newFakeBookingRepo()
	bookings.createErr = errors.New("write failed")
	svc := newService(trips, bookings, &fakeNotifier{})

	_, err := svc.CreateBooking(CreateBookingRequest{
		TripID: "t-test", Name: "A", Email: "a@b.com",
		StartDate: time.Now(), Travelers: 2,
	})
	if err == nil {
		t.Fatal("expected error from failed write")
	}
	if trips.releaseCalls != 1 {
		t.Errorf("releaseCalls = %d, want 1", trips.releaseCalls)
	}
	if got := trips.trips["t-test"].SpotsAvailable; got != 5 {
		t.Errorf("spots after compensation = %d, want 5", got)
	}
}

func TestCancelBooking(t *testing.T) {
	trip := sampleTrip()
	trip.SpotsAvailable = 3
	trips := newFakeTripRepo(trip)
	bookings := newFakeBookingRepo()
	notifier := &fakeNotifier{}
	svc := newService(trips, bookings, notifier)

	bookings.bookings["BKTEST01"] = &models.Booking{
		BookingID: "BKTEST01",
		TripID:    "t-test",
		Travelers: 2,
		Status:    models.BookingStatusConfirmed,
		Customer:  models.Customer{Name: "A", Email: "a@b.com"},
	}

	cancelled, err := svc.CancelBooking("BKTEST01")
	if err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if cancelled.Status != models.BookingStatusCancelled {
		t.Errorf("Status = %q, want cancelled", cancelled.Status)
	}
	if cancelled.PaymentStatus != models.PaymentStatusRefunded {
		t.Errorf("PaymentStatus = %q, want refunded", cancelled.PaymentStatus)
	}
	if got := trips.trips["t-test"].SpotsAvailable; got != 5 {
		t.Errorf("spots after cancel = %d, want 5", got)
	}
	if notifier.cancellations != 1 {
		t.Errorf("cancellations = %d, want 1", notifier.cancellations)
	}
}

func TestCancelBookingNotFound(t *testing.T) {
	svc := newService(newFakeTripRepo(), newFakeBookingRepo(), &fakeNotifier{})
	_, err := svc.CancelBooking("BKNOPE")
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("err = %v, want ErrBookingNotFound", err)
	}
}

func TestCancelBookingAlreadyCancelled(t *testing.T) {
	trips := newFakeTripRepo(sampleTrip())
	bookings := newFakeBookingRepo()
	svc := newService(trips, bookings, &fakeNotifier{})

	bookings.bookings["BKDONE"] = &models.Booking{
		BookingID: "BKDONE",
		TripID:    "t-test",
		Travelers: 2,
		Status:    models.BookingStatusCancelled,
	}

	_, err := svc.CancelBooking("BKDONE")
	if !errors.Is(err, ErrAlreadyCancelled) {
		t.Fatalf("err = %v, want ErrAlreadyCancelled", err)
	}
	if trips.releaseCalls != 0 {
		t.Error("spots released for already-cancelled booking")
	}
}

func TestCancelBookingCapsAtMaxSpots(t *testing.T) {
	trip := sampleTrip()
	trip.SpotsAvailable = 9
	trips := newFakeTripRepo(trip)
	bookings := newFakeBookingRepo()
	svc := newService(trips, bookings, &fakeNotifier{})

	bookings.bookings["BKCAP"] = &models.Booking{
		BookingID: "BKCAP",
		TripID:    "t-test",
		Travelers: 4,
		Status:    models.BookingStatusConfirmed,
	}

	if _, err := svc.CancelBooking("BKCAP"); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if got := trips.trips["t-test"].SpotsAvailable; got != 10 {
		t.Errorf("spots after capped release = %d, want 10", got)
	}
}

func TestBookThenCancelRestoresCapacity(t *testing.T) {
	trips := newFakeTripRepo(sampleTrip())
	bookings := newFakeBookingRepo()
	svc := newService(trips, bookings, &fakeNotifier{})

	created, err := svc.CreateBooking(CreateBookingRequest{
		TripID: "t-test", Name: "A", Email: "a@b.com",
		StartDate: time.Now(), Travelers: 3,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if got := trips.trips["t-test"].SpotsAvailable; got != 2 {
		t.Fatalf("spots after booking = %d, want 2", got)
	}

	if _, err := svc.CancelBooking(created.BookingID); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if got := trips.trips["t-test"].SpotsAvailable; got != 5 {
		t.Errorf("spots after cancel = %d, want 5", got)
	}
}
