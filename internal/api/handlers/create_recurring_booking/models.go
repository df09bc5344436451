package create_recurring_booking

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences/models"
	createRecurring "github.com/m04kA/SMC-CoachScheduling/internal/usecase/create_recurring_booking"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// CreateRecurringBookingRequest HTTP request model
type CreateRecurringBookingRequest struct {
	ClientID        int64   `json:"clientId"`
	Weekday         int     `json:"weekday"`           // 0 - воскресенье
	StartDate       string  `json:"startDate"`         // "2026-10-21"
	EndDate         *string `json:"endDate,omitempty"` // без даты - 90 дней
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Sport           string  `json:"sport"`
	Participants    int     `json:"participants,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// DateOutcomeResponse итог по одной дате
type DateOutcomeResponse struct {
	Date         string `json:"date"`
	Status       string `json:"status"`
	Reason       string `json:"reason,omitempty"`
	OccurrenceID *int64 `json:"occurrenceId,omitempty"`
}

// SeriesResponse HTTP response model
type SeriesResponse struct {
	SeriesID     string                      `json:"seriesId"`
	StartDate    string                      `json:"startDate"`
	EndDate      string                      `json:"endDate"`
	Price        *string                     `json:"price,omitempty"`
	CreatedCount int                         `json:"createdCount"`
	SkippedCount int                         `json:"skippedCount"`
	FailedCount  int                         `json:"failedCount"`
	Aborted      bool                        `json:"aborted"`
	Dates        []DateOutcomeResponse       `json:"dates"`
	Occurrences  []models.OccurrenceResponse `json:"occurrences"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRecurringBookingRequest) ToUseCaseRequest(tenantID int64) (*createRecurring.Request, error) {
	startDate, err := types.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	var endDate *types.Date
	if r.EndDate != nil && *r.EndDate != "" {
		parsed, err := types.ParseDate(*r.EndDate)
		if err != nil {
			return nil, err
		}
		endDate = &parsed
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createRecurring.Request{
		TenantID:        tenantID,
		ClientID:        r.ClientID,
		Weekday:         time.Weekday(r.Weekday),
		StartDate:       startDate,
		EndDate:         endDate,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Sport:           domain.SportType(strings.ToLower(r.Sport)),
		Participants:    r.Participants,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createRecurring.Response) *SeriesResponse {
	result := resp.Result
	out := &SeriesResponse{
		CreatedCount: result.Created,
		SkippedCount: result.Skipped,
		FailedCount:  result.Failed,
		Aborted:      result.Aborted,
		Dates:        make([]DateOutcomeResponse, 0, len(resp.Outcomes)),
		Occurrences:  models.FromDomainOccurrenceList(result.Occurrences).Occurrences,
	}

	if len(result.Series) > 0 {
		series := result.Series[0]
		out.SeriesID = series.ID.String()
		out.StartDate = series.StartDate.String()
		out.EndDate = series.EndDate.String()
	}
	if resp.Price != nil {
		price := resp.Price.StringFixed(2)
		out.Price = &price
	}

	for _, outcome := range resp.Outcomes {
		out.Dates = append(out.Dates, DateOutcomeResponse{
			Date:         outcome.Date.String(),
			Status:       string(outcome.Status),
			Reason:       outcome.Reason,
			OccurrenceID: outcome.OccurrenceID,
		})
	}

	return out
}
