package get_available_slots

import (
	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/internal/pricing"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// buildSlots собирает ответ по свободным временам начала.
// table == nil - цены не запрашивались.
func buildSlots(starts []types.TimeString, req *Request, table domain.PricingTable) ([]Slot, error) {
	slots := make([]Slot, 0, len(starts))

	for _, start := range starts {
		end, err := start.AddMinutes(req.DurationMinutes)
		if err != nil {
			continue
		}

		slot := Slot{
			StartTime:       start,
			EndTime:         end,
			DurationMinutes: req.DurationMinutes,
		}

		if table != nil && req.Sport != nil {
			at := start
			res, err := pricing.Resolve(table, pricing.Query{
				Sport:           *req.Sport,
				DurationMinutes: req.DurationMinutes,
				TimeOfDay:       &at,
				Participants:    req.Participants,
			})
			if err != nil {
				return nil, err
			}
			if res.Found {
				amount := res.Amount
				slot.Price = &amount
				slot.Tier = res.Tier
			}
		}

		slots = append(slots, slot)
	}

	return slots, nil
}
