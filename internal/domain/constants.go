package domain

import "errors"

// Scheduling constants
const (
	// SlotStepMinutes is the granularity of offered start times, independent of class length
	SlotStepMinutes = 30

	// DefaultHorizonDays limits a recurrence expansion that has no explicit end date
	DefaultHorizonDays = 90

	// DefaultParticipants is used when a request does not state a participant count
	DefaultParticipants = 1

	// LegacyParticipantTiers is how many participant tiers a legacy scalar price expands to
	LegacyParticipantTiers = 4
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 15
	MaxSlotDurationMinutes      = 480 // 8 hours
	MaxParticipants             = 20
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxSeriesHorizonDays        = 366
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

var (
	ErrUnknownSport  = errors.New("domain: unknown sport")
	ErrUnknownTier   = errors.New("domain: unknown demand tier")
	ErrUnknownStatus = errors.New("domain: unknown occurrence status")
	ErrInvalidBlock  = errors.New("domain: invalid availability block")
)
