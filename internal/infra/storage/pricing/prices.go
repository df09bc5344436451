package pricing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
)

// DecodePricesByDuration разбирает JSONB колонку prices_by_duration.
//
// Значение для длительности бывает двух видов:
//   - число (старый формат): одна цена на любое количество участников,
//     разворачивается в {1..4: цена}
//   - объект {"<участники>": цена}
//
// Дальше по коду ходит только нормализованная карта по участникам.
func DecodePricesByDuration(raw []byte) (map[int]domain.ParticipantPrices, error) {
	result := make(map[int]domain.ParticipantPrices)
	if len(bytes.TrimSpace(raw)) == 0 {
		return result, nil
	}

	var byDuration map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byDuration); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrices, err)
	}

	for durationKey, value := range byDuration {
		duration, err := strconv.Atoi(durationKey)
		if err != nil || duration <= 0 {
			return nil, fmt.Errorf("%w: duration key %q", ErrInvalidPrices, durationKey)
		}

		prices, err := decodeParticipantPrices(value)
		if err != nil {
			return nil, fmt.Errorf("%w: duration %d: %v", ErrInvalidPrices, duration, err)
		}
		result[duration] = prices
	}

	return result, nil
}

func decodeParticipantPrices(value json.RawMessage) (domain.ParticipantPrices, error) {
	trimmed := bytes.TrimSpace(value)

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var byParticipants map[string]decimal.Decimal
		if err := json.Unmarshal(trimmed, &byParticipants); err != nil {
			return nil, err
		}

		prices := make(domain.ParticipantPrices, len(byParticipants))
		for key, amount := range byParticipants {
			participants, err := strconv.Atoi(key)
			if err != nil || participants <= 0 {
				return nil, fmt.Errorf("participants key %q", key)
			}
			prices[participants] = amount
		}
		return prices, nil
	}

	var amount decimal.Decimal
	if err := json.Unmarshal(trimmed, &amount); err != nil {
		return nil, err
	}
	return domain.UniformParticipantPrices(amount), nil
}
