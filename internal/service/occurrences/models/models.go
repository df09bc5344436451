package models

import (
	"time"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
)

// Request модели

// CancelRequest запрос на отмену занятия
type CancelRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса занятия
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListRequest фильтр списка занятий тенанта
type ListRequest struct {
	TenantID         int64
	ClientID         *int64
	Date             *string // "2026-10-20"
	SeriesID         *string
	Status           *string
	IncludeCancelled bool
}

// Response модели

// OccurrenceResponse ответ с данными занятия
type OccurrenceResponse struct {
	ID              int64   `json:"id"`
	TenantID        int64   `json:"tenantId"`
	ClientID        int64   `json:"clientId"`
	AcademyID       *int64  `json:"academyId,omitempty"`
	CourtID         *int64  `json:"courtId,omitempty"`
	SeriesID        *string `json:"seriesId,omitempty"`
	Date            string  `json:"date"`      // "2026-10-20"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	Sport           string  `json:"sport"`
	Participants    int     `json:"participants"`
	Status          string  `json:"status"`
	Price           *string `json:"price,omitempty"` // десятичная строка, без потери точности
	Notes           *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OccurrenceListResponse ответ со списком занятий
type OccurrenceListResponse struct {
	Occurrences []OccurrenceResponse `json:"occurrences"`
}

// CancelSeriesResponse итог отмены серии
type CancelSeriesResponse struct {
	SeriesID  string `json:"seriesId"`
	Cancelled int64  `json:"cancelled"`
}

// Методы конвертации

// FromDomainOccurrence конвертирует domain модель в DTO
func FromDomainOccurrence(o *domain.Occurrence) *OccurrenceResponse {
	if o == nil {
		return nil
	}

	resp := &OccurrenceResponse{
		ID:                 o.ID,
		TenantID:           o.TenantID,
		ClientID:           o.ClientID,
		AcademyID:          o.AcademyID,
		CourtID:            o.CourtID,
		Date:               o.Date.String(),
		StartTime:          o.StartTime.String(),
		DurationMinutes:    o.DurationMinutes,
		Sport:              string(o.Sport),
		Participants:       o.Participants,
		Status:             string(o.Status),
		Notes:              o.Notes,
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}

	if o.SeriesID != nil {
		id := o.SeriesID.String()
		resp.SeriesID = &id
	}
	if o.Price != nil {
		price := o.Price.StringFixed(2)
		resp.Price = &price
	}
	if o.CancelledAt != nil {
		cancelledStr := o.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainOccurrenceList конвертирует список domain моделей в DTO
func FromDomainOccurrenceList(occurrences []*domain.Occurrence) *OccurrenceListResponse {
	resp := &OccurrenceListResponse{
		Occurrences: make([]OccurrenceResponse, 0, len(occurrences)),
	}

	for _, occ := range occurrences {
		if occResp := FromDomainOccurrence(occ); occResp != nil {
			resp.Occurrences = append(resp.Occurrences, *occResp)
		}
	}

	return resp
}
