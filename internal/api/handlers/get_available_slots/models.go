package get_available_slots

import (
	"strings"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CoachScheduling/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// SlotResponse свободное время начала
type SlotResponse struct {
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           *string `json:"price,omitempty"`
	Tier            string  `json:"tier,omitempty"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	TenantID         int64          `json:"tenantId"`
	Date             string         `json:"date"`
	DurationMinutes  int            `json:"durationMinutes"`
	Slots            []SlotResponse `json:"slots"`
	DurationsOffered []int          `json:"durationsOffered"`
}

// ToUseCaseRequest формирует запрос к use case из параметров запроса
func ToUseCaseRequest(tenantID int64, dateStr string, duration int, sportStr string, participants int) (*getAvailableSlots.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		TenantID:        tenantID,
		Date:            date,
		DurationMinutes: duration,
		Participants:    participants,
	}
	if sportStr != "" {
		sport := domain.SportType(strings.ToLower(sportStr))
		req.Sport = &sport
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		item := SlotResponse{
			StartTime:       slot.StartTime.String(),
			EndTime:         slot.EndTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Tier:            string(slot.Tier),
		}
		if slot.Price != nil {
			price := slot.Price.StringFixed(2)
			item.Price = &price
		}
		slots = append(slots, item)
	}

	return &AvailableSlotsResponse{
		TenantID:         resp.TenantID,
		Date:             resp.Date.String(),
		DurationMinutes:  resp.DurationMinutes,
		Slots:            slots,
		DurationsOffered: resp.DurationsOffered,
	}
}
