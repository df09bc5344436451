package create_booking

import (
	"strings"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences/models"
	createBooking "github.com/m04kA/SMC-CoachScheduling/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientID        int64   `json:"clientId"`
	Date            string  `json:"date"`      // "2026-10-20"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	Sport           string  `json:"sport"`
	Participants    int     `json:"participants,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Occurrence          *models.OccurrenceResponse `json:"occurrence"`
	PriceFound          bool                       `json:"priceFound"`
	ParticipantFallback bool                       `json:"participantFallback,omitempty"`
	PaymentNotified     bool                       `json:"paymentNotified"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(tenantID int64) (*createBooking.Request, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		TenantID:        tenantID,
		ClientID:        r.ClientID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Sport:           domain.SportType(strings.ToLower(r.Sport)),
		Participants:    r.Participants,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Occurrence:          models.FromDomainOccurrence(resp.Occurrence),
		PriceFound:          resp.PriceFound,
		ParticipantFallback: resp.ParticipantFallback,
		PaymentNotified:     resp.PaymentNotified,
	}
}
