package booking

import (
	"math"

	"travelogue/models"
)

// accommodationMultipliers are applied to the running total, not the base price.
// An unrecognized tier falls back to the standard multiplier.
var accommodationMultipliers = map[string]float64{
	models.AccommodationStandard: 1.0,
	models.AccommodationComfort:  1.3,
	models.AccommodationLuxury:   1.8,
}

// Flight and insurance surcharges are fractions of the pre-multiplier base.
const (
	flightRate    = 0.4
	insuranceRate = 0.05
)

// QuoteInput holds every pricing-relevant field of a prospective booking.
// The quote is currency-agnostic; the currency code travels as metadata.
type QuoteInput struct {
	BasePricePerPerson float64
	Travelers          int
	Accommodation      string
	FlightNeeded       bool
	Insurance          bool
	AddOns             []models.AddOn
}

// QuoteResult is the priced outcome. TotalPrice is in integral currency units.
type QuoteResult struct {
	BasePrice  float64
	TotalPrice int64
}

// Quote computes the booking price. It is pure: no bounds checking (the caller
// validates traveler counts) and no capacity reads or writes. A stored booking's
// total must be reproducible by re-running Quote over its stored inputs.
func Quote(in QuoteInput) QuoteResult {
	basePrice := in.BasePricePerPerson * float64(in.Travelers)
	total := basePrice

	multiplier, ok := accommodationMultipliers[in.Accommodation]
	if !ok {
		multiplier = 1.0
	}
	total *= multiplier

	if in.FlightNeeded {
		total += basePrice * flightRate
	}
	if in.Insurance {
		total += basePrice * insuranceRate
	}

	for _, addOn := range in.AddOns {
		total += addOn.Price
	}

	return QuoteResult{
		BasePrice:  basePrice,
		TotalPrice: int64(math.Round(total)),
	}
}
