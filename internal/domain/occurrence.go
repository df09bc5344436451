package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// OccurrenceStatus represents the status of a booking occurrence
type OccurrenceStatus string

const (
	StatusScheduled OccurrenceStatus = "scheduled"
	StatusCompleted OccurrenceStatus = "completed"
	StatusCancelled OccurrenceStatus = "cancelled"
	StatusNoShow    OccurrenceStatus = "no_show"
)

// ParseOccurrenceStatus converts a raw string into a known status
func ParseOccurrenceStatus(s string) (OccurrenceStatus, error) {
	switch status := OccurrenceStatus(s); status {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// Occurrence is one concrete dated, timed class for a tenant (instructor).
// Occurrences created by one recurrence expansion share a SeriesID.
type Occurrence struct {
	ID              int64
	TenantID        int64
	ClientID        int64
	AcademyID       *int64 // set for academy bulk schedules
	CourtID         *int64 // set for academy bulk schedules
	SeriesID        *uuid.UUID
	Date            types.Date
	StartTime       types.TimeString
	DurationMinutes int
	Sport           SportType
	Participants    int
	Status          OccurrenceStatus

	// Denormalized price resolved at creation; nil when no price matched
	Price *decimal.Decimal

	IdempotencyKey string
	Notes          *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the occurrence still occupies its time range.
// Only cancelled occurrences release the slot; no-shows keep it.
func (o *Occurrence) IsActive() bool {
	return o.Status != StatusCancelled
}

// IsCancelled returns true if the occurrence has been cancelled
func (o *Occurrence) IsCancelled() bool {
	return o.Status == StatusCancelled
}

// CanBeCancelled returns true if the occurrence can still be cancelled
func (o *Occurrence) CanBeCancelled() bool {
	return o.Status == StatusScheduled
}

// CanTransitionTo reports whether the status may change to next.
// Every transition is allowed except leaving the cancelled state.
func (o *Occurrence) CanTransitionTo(next OccurrenceStatus) bool {
	return o.Status != StatusCancelled && o.Status != next
}

// StartMinutes returns the start as minutes since midnight
func (o *Occurrence) StartMinutes() int {
	return o.StartTime.Minutes()
}

// BuildIdempotencyKey derives the retry-safe key of an attempted slot
func BuildIdempotencyKey(o *Occurrence) string {
	key := fmt.Sprintf("t%d:c%d:%s:%s:%d", o.TenantID, o.ClientID, o.Date, o.StartTime, o.DurationMinutes)
	if o.CourtID != nil {
		key += fmt.Sprintf(":court%d", *o.CourtID)
	}
	if o.SeriesID != nil {
		key += ":" + o.SeriesID.String()
	}
	return key
}

// OccurrencesFilter selects occurrences of a tenant
type OccurrencesFilter struct {
	TenantID         int64 // required
	ClientID         *int64
	Date             *types.Date
	SeriesID         *uuid.UUID
	Status           *OccurrenceStatus
	IncludeCancelled bool
}
