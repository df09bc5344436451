package scheduling

import (
	"time"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// DefaultHorizonDays горизонт разворачивания, если дата окончания не указана
const DefaultHorizonDays = domain.DefaultHorizonDays

// ResolveEndDate возвращает явную дату окончания или start + DefaultHorizonDays
func ResolveEndDate(start types.Date, end *types.Date) types.Date {
	if end != nil && !end.IsZero() {
		return *end
	}
	return start.AddDays(DefaultHorizonDays)
}

// Expand возвращает упорядоченные даты серии: первый weekday не раньше start
// и далее каждые 7 дней, пока дата <= end (или горизонта).
// Если start позже end - пустой список.
func Expand(start types.Date, end *types.Date, weekday time.Weekday) []types.Date {
	dates := make([]types.Date, 0)
	if start.IsZero() || weekday < time.Sunday || weekday > time.Saturday {
		return dates
	}

	last := ResolveEndDate(start, end)
	if start.After(last) {
		return dates
	}

	offset := (int(weekday) - int(start.Weekday()) + 7) % 7
	for current := start.AddDays(offset); !current.After(last); current = current.AddDays(7) {
		dates = append(dates, current)
	}
	return dates
}

// NewSeries описывает серию для ответа вызывающей стороне
func NewSeries(tenantID int64, weekday time.Weekday, start types.Date, end *types.Date) domain.Series {
	return domain.Series{
		TenantID:  tenantID,
		Weekday:   weekday,
		StartDate: start,
		EndDate:   ResolveEndDate(start, end),
	}
}
