package scheduling

import (
	"sort"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// SlotStepMinutes шаг перебора времени начала внутри блока (не зависит от длительности занятия)
const SlotStepMinutes = domain.SlotStepMinutes

// GenerateSlots возвращает отсортированный список свободных времён начала на дату.
//
// Шаги:
// 1. Берём активные блоки дня недели с длительностью слота == durationMinutes
// 2. Внутри каждого блока перебираем время начала от StartTime с шагом 30 минут
// 3. Оставляем только те, у которых start + duration <= EndTime блока
// 4. Отбрасываем пересекающиеся с существующими занятиями (см. FindConflict)
// 5. Убираем дубли от пересекающихся блоков
//
// Пустой результат - нормальный ответ "на этот день и длительность ничего нет".
func GenerateSlots(
	date types.Date,
	durationMinutes int,
	catalog *Catalog,
	existing []*domain.Occurrence,
) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if durationMinutes <= 0 || catalog == nil || date.IsZero() {
		return slots
	}

	seen := make(map[int]struct{})
	for _, block := range catalog.BlocksFor(date.Weekday(), durationMinutes) {
		for _, start := range blockCandidates(block, durationMinutes) {
			if _, ok := seen[start]; ok {
				continue
			}
			ts, err := types.TimeStringFromMinutes(start)
			if err != nil {
				continue
			}
			if Conflicts(ts, durationMinutes, existing) {
				continue
			}
			seen[start] = struct{}{}
			slots = append(slots, ts)
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Minutes() < slots[j].Minutes() })
	return slots
}

// CandidateStarts возвращает все допустимые по каталогу времена начала без учёта занятости.
// Нужен, чтобы отличить "время вне расписания" от "время занято".
func CandidateStarts(date types.Date, durationMinutes int, catalog *Catalog) []types.TimeString {
	return GenerateSlots(date, durationMinutes, catalog, nil)
}

// ContainsSlot проверяет, есть ли время начала в списке слотов
func ContainsSlot(slots []types.TimeString, start types.TimeString) bool {
	target := start.Minutes()
	for _, s := range slots {
		if s.Minutes() == target {
			return true
		}
	}
	return false
}

// blockCandidates времена начала (в минутах) внутри блока, у которых конец не выходит за EndTime
func blockCandidates(block *domain.AvailabilityBlock, durationMinutes int) []int {
	blockStart := block.StartMinutes()
	blockEnd := block.EndMinutes()
	if blockStart < 0 || blockEnd <= blockStart {
		return nil
	}

	starts := make([]int, 0, (blockEnd-blockStart)/SlotStepMinutes+1)
	for start := blockStart; start < blockEnd; start += SlotStepMinutes {
		if start+durationMinutes > blockEnd {
			break
		}
		starts = append(starts, start)
	}
	return starts
}
