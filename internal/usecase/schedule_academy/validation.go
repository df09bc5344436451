package schedule_academy

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

	if req.AcademyID <= 0 {
		return fmt.Errorf("%w: academyID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate != nil {
		if req.EndDate.Before(req.StartDate) {
			return fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
		}
		if req.StartDate.DaysUntil(*req.EndDate) > domain.MaxSeriesHorizonDays {
			return fmt.Errorf("%w: schedule must not exceed %d days", ErrInvalidInput, domain.MaxSeriesHorizonDays)
		}
	}

	if len(req.Blocks) == 0 {
		return fmt.Errorf("%w: at least one schedule block is required", ErrInvalidInput)
	}

	for i, block := range req.Blocks {
		if err := validateBlock(block); err != nil {
			return fmt.Errorf("%w (block %d)", err, i)
		}
	}

	return nil
}

func validateBlock(block ScheduleBlock) error {
	if block.Weekday < time.Sunday || block.Weekday > time.Saturday {
		return fmt.Errorf("%w: weekday must be between 0 and 6", ErrInvalidInput)
	}

	if err := block.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if block.DurationMinutes < domain.MinSlotDurationMinutes || block.DurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if _, err := block.StartTime.AddMinutes(block.DurationMinutes); err != nil {
		return fmt.Errorf("%w: class must end on the same day", ErrInvalidInput)
	}

	if _, err := domain.ParseSportType(string(block.Sport)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(block.Courts) == 0 {
		return fmt.Errorf("%w: at least one court is required", ErrInvalidInput)
	}

	courts := make(map[int64]struct{}, len(block.Courts))
	for _, court := range block.Courts {
		if court.CourtID <= 0 {
			return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
		}
		if _, ok := courts[court.CourtID]; ok {
			return fmt.Errorf("%w: court %d is listed twice", ErrInvalidInput, court.CourtID)
		}
		courts[court.CourtID] = struct{}{}

		if len(court.ClientIDs) > domain.MaxParticipants {
			return fmt.Errorf("%w: court %d has more than %d clients", ErrInvalidInput, court.CourtID, domain.MaxParticipants)
		}

		clients := make(map[int64]struct{}, len(court.ClientIDs))
		for _, clientID := range court.ClientIDs {
			if clientID <= 0 {
				return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
			}
			if _, ok := clients[clientID]; ok {
				return fmt.Errorf("%w: client %d is enrolled twice on court %d", ErrInvalidInput, clientID, court.CourtID)
			}
			clients[clientID] = struct{}{}
		}
	}

	return nil
}

// validateStartDate проверяет, что расписание не начинается в прошлом
func validateStartDate(date types.Date, now time.Time) error {
	if date.Before(types.DateOf(now)) {
		return ErrInvalidDate
	}
	return nil
}
