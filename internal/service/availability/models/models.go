package models

import (
	"time"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
)

// CreateBlockRequest запрос на создание блока доступности
type CreateBlockRequest struct {
	DayOfWeek           int    `json:"dayOfWeek"` // 0 - воскресенье
	StartTime           string `json:"startTime"` // "09:00"
	EndTime             string `json:"endTime"`   // "12:00"
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	DemandTier          string `json:"demandTier,omitempty"` // low | high | unclassified
	Active              *bool  `json:"active,omitempty"`     // по умолчанию true
}

// BlockResponse ответ с данными блока доступности
type BlockResponse struct {
	ID                  int64     `json:"id"`
	DayOfWeek           int       `json:"dayOfWeek"`
	DayName             string    `json:"dayName"`
	StartTime           string    `json:"startTime"`
	EndTime             string    `json:"endTime"`
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
	DemandTier          string    `json:"demandTier"`
	Active              bool      `json:"active"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// CatalogResponse недельная доступность тенанта
type CatalogResponse struct {
	TenantID         int64           `json:"tenantId"`
	Blocks           []BlockResponse `json:"blocks"`
	ActiveDays       []int           `json:"activeDays"`
	DurationsOffered []int           `json:"durationsOffered"`
}

// FromDomainBlock конвертирует domain модель в DTO
func FromDomainBlock(b *domain.AvailabilityBlock) *BlockResponse {
	if b == nil {
		return nil
	}
	return &BlockResponse{
		ID:                  b.ID,
		DayOfWeek:           int(b.DayOfWeek),
		DayName:             b.DayOfWeek.String(),
		StartTime:           b.StartTime.String(),
		EndTime:             b.EndTime.String(),
		SlotDurationMinutes: b.SlotDurationMinutes,
		DemandTier:          string(b.DemandTier),
		Active:              b.Active,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}
