// Package pricing вычисляет цену занятия по тарифной сетке тренера.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// ErrInvalidQuery возвращается при некорректных параметрах запроса цены
var ErrInvalidQuery = errors.New("pricing: invalid query")

// Query параметры поиска цены
type Query struct {
	Sport           domain.SportType
	DurationMinutes int
	TimeOfDay       *types.TimeString // nil - берётся первый объявленный слот вида спорта
	Participants    int               // 0 - не указано, считается как 1
}

// Result итог поиска цены. Found == false - цена не найдена (это не ошибка).
type Result struct {
	Amount              decimal.Decimal
	Found               bool
	Tier                domain.DemandTier
	ParticipantFallback bool // цена взята для 1 участника, т.к. точного количества нет в сетке
}

// NotFound пустой результат "цена не найдена"
func NotFound() Result {
	return Result{}
}

// Resolve ищет цену занятия.
//
// Порядок:
// 1. Нет вида спорта в сетке или у него нет слотов → не найдено
// 2. Время не указано → первый объявленный слот (порядок конфигурации, не приоритет тарифа)
// 3. Время указано → слот, где StartTime <= время < EndTime; если такого нет → не найдено, соседний слот не берём
// 4. Нет цен для длительности → не найдено
// 5. Нет цены для количества участников → цена для 1 участника; если и её нет → не найдено
func Resolve(table domain.PricingTable, q Query) (Result, error) {
	if err := validateQuery(q); err != nil {
		return NotFound(), err
	}

	sportPricing, ok := table[q.Sport]
	if !ok || len(sportPricing.Slots) == 0 {
		return NotFound(), nil
	}

	slot, ok := matchSlot(sportPricing.Slots, q.TimeOfDay)
	if !ok {
		return NotFound(), nil
	}

	byParticipants, ok := slot.PricesByDuration[q.DurationMinutes]
	if !ok || len(byParticipants) == 0 {
		return NotFound(), nil
	}

	participants := q.Participants
	if participants == 0 {
		participants = domain.DefaultParticipants
	}

	if amount, ok := byParticipants[participants]; ok {
		return Result{Amount: amount, Found: true, Tier: slot.Tier}, nil
	}

	if amount, ok := byParticipants[domain.DefaultParticipants]; ok {
		return Result{Amount: amount, Found: true, Tier: slot.Tier, ParticipantFallback: true}, nil
	}

	return NotFound(), nil
}

func matchSlot(slots []domain.PriceSlot, timeOfDay *types.TimeString) (domain.PriceSlot, bool) {
	if timeOfDay == nil {
		return slots[0], true
	}
	for _, slot := range slots {
		if slot.Contains(*timeOfDay) {
			return slot, true
		}
	}
	return domain.PriceSlot{}, false
}

func validateQuery(q Query) error {
	if q.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidQuery)
	}
	if q.Participants < 0 {
		return fmt.Errorf("%w: participants must not be negative", ErrInvalidQuery)
	}
	if q.TimeOfDay != nil {
		if err := q.TimeOfDay.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
	}
	return nil
}
