package schedule_academy

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	scheduleAcademy "github.com/m04kA/SMC-CoachScheduling/internal/usecase/schedule_academy"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// ScheduleAcademyRequest HTTP request model
type ScheduleAcademyRequest struct {
	StartDate string                 `json:"startDate"`
	EndDate   *string                `json:"endDate,omitempty"`
	Blocks    []ScheduleBlockRequest `json:"blocks"`
}

// ScheduleBlockRequest еженедельное занятие академии
type ScheduleBlockRequest struct {
	Weekday         int            `json:"weekday"`
	StartTime       string         `json:"startTime"`
	DurationMinutes int            `json:"durationMinutes"`
	Sport           string         `json:"sport"`
	Courts          []CourtRequest `json:"courts"`
}

// CourtRequest корт и клиенты на нём
type CourtRequest struct {
	CourtID   int64   `json:"courtId"`
	ClientIDs []int64 `json:"clientIds"`
}

// SeriesResponse серия одного блока расписания
type SeriesResponse struct {
	SeriesID  string `json:"seriesId"`
	Weekday   int    `json:"weekday"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ScheduleAcademyResponse HTTP response model
type ScheduleAcademyResponse struct {
	AcademyID    int64            `json:"academyId"`
	Series       []SeriesResponse `json:"series"`
	DatesCount   int              `json:"datesCount"`
	CreatedCount int              `json:"createdCount"`
	SkippedCount int              `json:"skippedCount"`
	FailedCount  int              `json:"failedCount"`
	Aborted      bool             `json:"aborted"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ScheduleAcademyRequest) ToUseCaseRequest(tenantID, academyID int64) (*scheduleAcademy.Request, error) {
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

	blocks := make([]scheduleAcademy.ScheduleBlock, 0, len(r.Blocks))
	for _, block := range r.Blocks {
		startTime, err := types.NewTimeStringFromString(block.StartTime)
		if err != nil {
			return nil, err
		}

		courts := make([]scheduleAcademy.Court, 0, len(block.Courts))
		for _, court := range block.Courts {
			courts = append(courts, scheduleAcademy.Court{CourtID: court.CourtID, ClientIDs: court.ClientIDs})
		}

		blocks = append(blocks, scheduleAcademy.ScheduleBlock{
			Weekday:         time.Weekday(block.Weekday),
			StartTime:       startTime,
			DurationMinutes: block.DurationMinutes,
			Sport:           domain.SportType(strings.ToLower(block.Sport)),
			Courts:          courts,
		})
	}

	return &scheduleAcademy.Request{
		TenantID:  tenantID,
		AcademyID: academyID,
		StartDate: startDate,
		EndDate:   endDate,
		Blocks:    blocks,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(academyID int64, resp *scheduleAcademy.Response) *ScheduleAcademyResponse {
	result := resp.Result
	out := &ScheduleAcademyResponse{
		AcademyID:    academyID,
		Series:       make([]SeriesResponse, 0, len(result.Series)),
		DatesCount:   len(result.Dates),
		CreatedCount: result.Created,
		SkippedCount: result.Skipped,
		FailedCount:  result.Failed,
		Aborted:      result.Aborted,
	}
	for _, series := range result.Series {
		out.Series = append(out.Series, SeriesResponse{
			SeriesID:  series.ID.String(),
			Weekday:   int(series.Weekday),
			StartDate: series.StartDate.String(),
			EndDate:   series.EndDate.String(),
		})
	}
	return out
}
