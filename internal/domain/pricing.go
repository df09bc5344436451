package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// SportType is one of the sports an instructor can teach
type SportType string

const (
	SportTennis     SportType = "tennis"
	SportPadel      SportType = "padel"
	SportSquash     SportType = "squash"
	SportPickleball SportType = "pickleball"
	SportBadminton  SportType = "badminton"
	SportGolf       SportType = "golf"
	SportSwimming   SportType = "swimming"
	SportFitness    SportType = "fitness"
)

var knownSports = map[SportType]struct{}{
	SportTennis:     {},
	SportPadel:      {},
	SportSquash:     {},
	SportPickleball: {},
	SportBadminton:  {},
	SportGolf:       {},
	SportSwimming:   {},
	SportFitness:    {},
}

// ParseSportType rejects unknown sports
func ParseSportType(s string) (SportType, error) {
	sport := SportType(s)
	if _, ok := knownSports[sport]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSport, s)
	}
	return sport, nil
}

// ParticipantPrices maps participant count to the price of one class
type ParticipantPrices map[int]decimal.Decimal

// UniformParticipantPrices expands a single legacy price to every participant tier
func UniformParticipantPrices(amount decimal.Decimal) ParticipantPrices {
	prices := make(ParticipantPrices, LegacyParticipantTiers)
	for n := 1; n <= LegacyParticipantTiers; n++ {
		prices[n] = amount
	}
	return prices
}

// PriceSlot is one time-of-day pricing window of a sport
type PriceSlot struct {
	Tier             DemandTier
	StartTime        types.TimeString
	EndTime          types.TimeString
	BaseCost         *decimal.Decimal
	PricesByDuration map[int]ParticipantPrices
}

// Contains reports whether t falls into [StartTime, EndTime)
func (s PriceSlot) Contains(t types.TimeString) bool {
	m := t.Minutes()
	return m >= s.StartTime.Minutes() && m < s.EndTime.Minutes()
}

// SportPricing holds the declared price slots of a sport in configuration order
type SportPricing struct {
	Slots []PriceSlot
}

// PricingTable is the tenant's pricing configuration keyed by sport
type PricingTable map[SportType]SportPricing
