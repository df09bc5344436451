package scheduling

import (
	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aStart+aDuration) и [bStart, bStart+bDuration)
// в минутах от начала суток. Единственная формула пересечения в сервисе.
//
// Примеры:
// - 10:00-11:00 и 10:30-11:30 → пересекаются
// - 10:00-11:00 и 11:00-12:00 → НЕ пересекаются (граничат)
// - 09:00-12:00 и 10:00-10:30 → пересекаются (вложение)
func Overlaps(aStart, aDuration, bStart, bDuration int) bool {
	return aStart < bStart+bDuration && bStart < aStart+aDuration
}

// FindConflict возвращает первое активное занятие, пересекающееся с [start, start+duration).
// existing - занятия той же даты. Отменённые занятия пропускаются.
func FindConflict(start types.TimeString, durationMinutes int, existing []*domain.Occurrence) *domain.Occurrence {
	candidate := start.Minutes()
	for _, occ := range existing {
		if occ == nil || !occ.IsActive() {
			continue
		}
		if Overlaps(candidate, durationMinutes, occ.StartMinutes(), occ.DurationMinutes) {
			return occ
		}
	}
	return nil
}

// Conflicts возвращает true, если интервал пересекается хотя бы с одним активным занятием
func Conflicts(start types.TimeString, durationMinutes int, existing []*domain.Occurrence) bool {
	return FindConflict(start, durationMinutes, existing) != nil
}
