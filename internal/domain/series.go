package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// Series describes one recurrence expansion. It is not persisted on its own;
// occurrences reference it through SeriesID.
type Series struct {
	ID        uuid.UUID
	TenantID  int64
	Weekday   time.Weekday
	StartDate types.Date
	EndDate   types.Date // explicit end date or the default horizon
}

// BatchResult reports a bulk expansion. Partial success is a normal outcome.
type BatchResult struct {
	Series      []Series
	Dates       []types.Date
	Created     int
	Skipped     int // conflict or no availability on that date
	Failed      int // storage errors
	Aborted     bool
	Occurrences []*Occurrence
}

// Attempted returns the number of occurrences the batch tried to create
func (r *BatchResult) Attempted() int {
	return r.Created + r.Skipped + r.Failed
}

// IsComplete returns true if every attempted occurrence was created
func (r *BatchResult) IsComplete() bool {
	return !r.Aborted && r.Skipped == 0 && r.Failed == 0
}
