package get_price

import (
	"strings"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	getPrice "github.com/m04kA/SMC-CoachScheduling/internal/usecase/get_price"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// PriceResponse HTTP response model
type PriceResponse struct {
	Found               bool    `json:"found"`
	Amount              *string `json:"amount,omitempty"`
	Tier                string  `json:"tier,omitempty"`
	ParticipantFallback bool    `json:"participantFallback,omitempty"`
	TimeOfDayDefaulted  bool    `json:"timeOfDayDefaulted,omitempty"`
}

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(tenantID int64, sport string, duration int, timeStr *string, participants int) (*getPrice.Request, error) {
	req := &getPrice.Request{
		TenantID:        tenantID,
		Sport:           domain.SportType(strings.ToLower(sport)),
		DurationMinutes: duration,
		Participants:    participants,
	}
	if timeStr != nil {
		at, err := types.NewTimeStringFromString(*timeStr)
		if err != nil {
			return nil, err
		}
		req.TimeOfDay = &at
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getPrice.Response) *PriceResponse {
	out := &PriceResponse{
		Found:               resp.Found,
		Tier:                string(resp.Tier),
		ParticipantFallback: resp.ParticipantFallback,
		TimeOfDayDefaulted:  resp.TimeOfDayDefaulted,
	}
	if resp.Amount != nil {
		amount := resp.Amount.StringFixed(2)
		out.Amount = &amount
	}
	return out
}
