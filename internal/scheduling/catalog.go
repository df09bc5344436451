// Package scheduling содержит чистую логику расписания: каталог доступности,
// генерацию слотов, проверку пересечений и разворачивание повторяющихся занятий.
// Пакет не ходит в хранилище и не держит глобального состояния.
package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
)

// Catalog проекция над набором блоков доступности тренера
type Catalog struct {
	blocks []*domain.AvailabilityBlock
}

// NewCatalog создает каталог. Неактивные блоки хранятся, но не попадают в выборки.
func NewCatalog(blocks []*domain.AvailabilityBlock) *Catalog {
	copied := make([]*domain.AvailabilityBlock, 0, len(blocks))
	for _, b := range blocks {
		if b != nil {
			copied = append(copied, b)
		}
	}
	return &Catalog{blocks: copied}
}

// BlocksForDay возвращает активные блоки на день недели в исходном порядке
func (c *Catalog) BlocksForDay(day time.Weekday) []*domain.AvailabilityBlock {
	result := make([]*domain.AvailabilityBlock, 0)
	for _, b := range c.blocks {
		if b.Active && b.DayOfWeek == day {
			result = append(result, b)
		}
	}
	return result
}

// BlocksFor возвращает активные блоки на день недели с указанной длительностью слота
func (c *Catalog) BlocksFor(day time.Weekday, durationMinutes int) []*domain.AvailabilityBlock {
	result := make([]*domain.AvailabilityBlock, 0)
	for _, b := range c.BlocksForDay(day) {
		if b.SlotDurationMinutes == durationMinutes {
			result = append(result, b)
		}
	}
	return result
}

// ActiveDays возвращает отсортированные дни недели, в которых есть хотя бы один активный блок
func (c *Catalog) ActiveDays() []time.Weekday {
	seen := make(map[time.Weekday]struct{})
	days := make([]time.Weekday, 0, 7)
	for _, b := range c.blocks {
		if !b.Active {
			continue
		}
		if _, ok := seen[b.DayOfWeek]; ok {
			continue
		}
		seen[b.DayOfWeek] = struct{}{}
		days = append(days, b.DayOfWeek)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// DurationsOffered возвращает отсортированные уникальные длительности по активным блокам
func (c *Catalog) DurationsOffered() []int {
	seen := make(map[int]struct{})
	durations := make([]int, 0)
	for _, b := range c.blocks {
		if !b.Active {
			continue
		}
		if _, ok := seen[b.SlotDurationMinutes]; ok {
			continue
		}
		seen[b.SlotDurationMinutes] = struct{}{}
		durations = append(durations, b.SlotDurationMinutes)
	}
	sort.Ints(durations)
	return durations
}

// IsEmpty возвращает true, если активных блоков нет
func (c *Catalog) IsEmpty() bool {
	return len(c.ActiveDays()) == 0
}
