package payments

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
)

// EventPaymentRequired тип события для внешнего сервиса платежей
const EventPaymentRequired = "occurrence.payment_required"

// PaymentRequest данные созданного занятия, по которому нужно выставить оплату
type PaymentRequest struct {
	OccurrenceID    int64            `json:"occurrence_id"`
	TenantID        int64            `json:"tenant_id"`
	ClientID        int64            `json:"client_id"`
	AcademyID       *int64           `json:"academy_id,omitempty"`
	SeriesID        *string          `json:"series_id,omitempty"`
	Sport           domain.SportType `json:"sport"`
	Date            string           `json:"date"`
	StartTime       string           `json:"start_time"`
	DurationMinutes int              `json:"duration_minutes"`
	Participants    int              `json:"participants"`
	Amount          decimal.Decimal  `json:"amount"`
}

// NewPaymentRequest собирает запрос на оплату из сохранённого занятия с найденной ценой
func NewPaymentRequest(occ *domain.Occurrence, amount decimal.Decimal) PaymentRequest {
	req := PaymentRequest{
		OccurrenceID:    occ.ID,
		TenantID:        occ.TenantID,
		ClientID:        occ.ClientID,
		AcademyID:       occ.AcademyID,
		Sport:           occ.Sport,
		Date:            occ.Date.String(),
		StartTime:       occ.StartTime.String(),
		DurationMinutes: occ.DurationMinutes,
		Participants:    occ.Participants,
		Amount:          amount,
	}
	if occ.SeriesID != nil {
		id := occ.SeriesID.String()
		req.SeriesID = &id
	}
	return req
}

// ErrorResponse модель ошибки от сервиса платежей
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
