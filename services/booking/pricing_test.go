package booking

import (
	"testing"

	"travelogue/models"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name      string
		in        QuoteInput
		wantBase  float64
		wantTotal int64
	}{
		{
			name:      "standard no extras",
			in:        QuoteInput{BasePricePerPerson: 100, Travelers: 2, Accommodation: models.AccommodationStandard},
			wantBase:  200,
			wantTotal: 200,
		},
		{
			name:      "comfort multiplier",
			in:        QuoteInput{BasePricePerPerson: 100, Travelers: 2, Accommodation: models.AccommodationComfort},
			wantBase:  200,
			wantTotal: 260,
		},
		{
			name:      "luxury multiplier",
			in:        QuoteInput{BasePricePerPerson: 100, Travelers: 2, Accommodation: models.AccommodationLuxury},
			wantBase:  200,
			wantTotal: 360,
		},
		{
			name:      "flight surcharge on pre-multiplier base",
			in:        QuoteInput{BasePricePerPerson: 100, Travelers: 2, Accommodation: models.AccommodationStandard, FlightNeeded: true},
			wantBase:  200,
			wantTotal: 280,
		},
		{
			name:      "insurance surcharge",
			in:        QuoteInput{BasePricePerPerson: 100, Travelers: 2, Accommodation: models.AccommodationStandard, Insurance: true},
			wantBase:  200,
			wantTotal: 210,
		},
		{
			name:      "comfort with flight and insurance",
			in:        QuoteInput{BasePricePerPerson: 100, Travelers: 2, Accommodation: models.AccommodationComfort, FlightNeeded: true, Insurance: true},
			wantBase:  200,
			wantTotal: 350,
		},
		{
			name:      "luxury with flight",
			in:        QuoteInput{BasePricePerPerson: 100, Travelers: 2, Accommodation: models.AccommodationLuxury, FlightNeeded: true},
			wantBase:  200,
			wantTotal: 440,
		},
		{
			name:      "unknown accommodation falls back to standard",
			in:        QuoteInput{BasePricePerPerson: 100, Travelers: 2, Accommodation: "penthouse"},
			wantBase:  200,
			wantTotal: 200,
		},
		{
			name: "add-ons added verbatim",
			in: QuoteInput{
				BasePricePerPerson: 100, Travelers: 2, Accommodation: models.AccommodationStandard,
				AddOns: []models.AddOn{{Name: "Airport pickup", Price: 35}, {Name: "Photo package", Price: 15.5}},
			},
			wantBase:  200,
			wantTotal: 251, // 200 + 35 + 15.5 rounded
		},
		{
			name:      "fractional totals rounded to nearest unit",
			in:        QuoteInput{BasePricePerPerson: 99.99, Travelers: 1, Accommodation: models.AccommodationStandard, Insurance: true},
			wantBase:  99.99,
			wantTotal: 105, // 99.99 + 4.9995
		},
		{
			name:      "single traveler luxury",
			in:        QuoteInput{BasePricePerPerson: 450, Travelers: 1, Accommodation: models.AccommodationLuxury},
			wantBase:  450,
			wantTotal: 810,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quote(tt.in)
			if got.BasePrice != tt.wantBase {
				t.Errorf("BasePrice = %v, want %v", got.BasePrice, tt.wantBase)
			}
			if got.TotalPrice != tt.wantTotal {
				t.Errorf("TotalPrice = %v, want %v", got.TotalPrice, tt.wantTotal)
			}
		})
	}
}

func TestQuoteDeterministic(t *testing.T) {
	in := QuoteInput{
		BasePricePerPerson: 680, Travelers: 3, Accommodation: models.AccommodationComfort,
		FlightNeeded: true, Insurance: true,
		AddOns: []models.AddOn{{Name: "Tea ceremony", Price: 40}},
	}
	first := Quote(in)
	for i := 0; i < 10; i++ {
		if got := Quote(in); got != first {
			t.Fatalf("Quote not deterministic: got %+v, want %+v", got, first)
		}
	}
}

func TestDurationDays(t *testing.T) {
	tests := []struct {
		duration string
		want     int
	}{
		{"3 days", 3},
		{"10-day trek", 10},
		{"2 days", 2},
		{"weekend", 3},
		{"", 3},
		{"  5 days ", 5},
		{"0 days", 3},
	}
	for _, tt := range tests {
		if got := DurationDays(tt.duration); got != tt.want {
			t.Errorf("DurationDays(%q) = %d, want %d", tt.duration, got, tt.want)
		}
	}
}

func TestNewBookingReference(t *testing.T) {
	ref := NewBookingReference()
	if len(ref) < 8 {
		t.Fatalf("reference too short: %q", ref)
	}
	if ref[:2] != "BK" {
		t.Errorf("reference %q missing BK prefix", ref)
	}
	for _, c := range ref {
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'Z') {
			t.Errorf("reference %q contains invalid character %q", ref, c)
		}
	}
}
