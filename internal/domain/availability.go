package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// DemandTier classifies a time window for pricing
type DemandTier string

const (
	TierLow          DemandTier = "low"
	TierHigh         DemandTier = "high"
	TierUnclassified DemandTier = "unclassified"
)

// ParseDemandTier converts a raw string into a tier; empty means unclassified
func ParseDemandTier(s string) (DemandTier, error) {
	switch tier := DemandTier(s); tier {
	case TierLow, TierHigh, TierUnclassified:
		return tier, nil
	case "":
		return TierUnclassified, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
}

// AvailabilityBlock is a recurring weekly window in which classes of one duration can be booked.
// Blocks of the same day may overlap, e.g. 60- and 90-minute offers in the same window.
type AvailabilityBlock struct {
	ID                  int64
	TenantID            int64
	DayOfWeek           time.Weekday
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotDurationMinutes int
	DemandTier          DemandTier
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate checks the block shape
func (b *AvailabilityBlock) Validate() error {
	if b.DayOfWeek < time.Sunday || b.DayOfWeek > time.Saturday {
		return fmt.Errorf("%w: day of week %d is out of range 0..6", ErrInvalidBlock, b.DayOfWeek)
	}
	if err := b.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidBlock, err)
	}
	if err := b.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidBlock, err)
	}
	if !b.EndTime.IsAfter(b.StartTime) {
		return fmt.Errorf("%w: end time %s must be after start time %s", ErrInvalidBlock, b.EndTime, b.StartTime)
	}
	if b.SlotDurationMinutes < MinSlotDurationMinutes || b.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidBlock, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}
	if _, err := ParseDemandTier(string(b.DemandTier)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBlock, err)
	}
	return nil
}

// StartMinutes returns the block start as minutes since midnight
func (b *AvailabilityBlock) StartMinutes() int {
	return b.StartTime.Minutes()
}

// EndMinutes returns the block end as minutes since midnight
func (b *AvailabilityBlock) EndMinutes() int {
	return b.EndTime.Minutes()
}
