package schedule_academy

import (
	"time"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// Request модель запроса на расписание академии
type Request struct {
	TenantID  int64
	AcademyID int64
	StartDate types.Date
	EndDate   *types.Date // nil - горизонт по умолчанию (90 дней)
	Blocks    []ScheduleBlock
}

// ScheduleBlock еженедельное занятие академии
type ScheduleBlock struct {
	Weekday         time.Weekday
	StartTime       types.TimeString
	DurationMinutes int
	Sport           domain.SportType
	Courts          []Court
}

// Court корт и записанные на него клиенты
type Court struct {
	CourtID   int64
	ClientIDs []int64
}

// Response модель ответа: итог по всем блокам расписания
type Response struct {
	Result domain.BatchResult
}
