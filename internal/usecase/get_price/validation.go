package get_price

import (
	"fmt"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if _, err := domain.ParseSportType(string(req.Sport)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	if req.TimeOfDay != nil {
		if err := req.TimeOfDay.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
		}
	}

	if req.Participants < 0 || req.Participants > domain.MaxParticipants {
		return fmt.Errorf("%w: participants must be between 0 and %d", ErrInvalidInput, domain.MaxParticipants)
	}

	return nil
}
