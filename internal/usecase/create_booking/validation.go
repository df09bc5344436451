package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes < domain.MinSlotDurationMinutes || req.DurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if _, err := domain.ParseSportType(string(req.Sport)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Participants < 0 || req.Participants > domain.MaxParticipants {
		return fmt.Errorf("%w: participants must be between 0 and %d", ErrInvalidInput, domain.MaxParticipants)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date types.Date, now time.Time) error {
	if date.Before(types.DateOf(now)) {
		return ErrInvalidDate
	}
	return nil
}
