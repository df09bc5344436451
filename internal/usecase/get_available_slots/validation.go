package get_available_slots

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

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	if req.Participants < 0 || req.Participants > domain.MaxParticipants {
		return fmt.Errorf("%w: participants must be between 0 and %d", ErrInvalidInput, domain.MaxParticipants)
	}

	if req.Sport != nil {
		if _, err := domain.ParseSportType(string(*req.Sport)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
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
