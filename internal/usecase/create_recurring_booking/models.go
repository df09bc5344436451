package create_recurring_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// Request модель запроса на создание еженедельной серии занятий
type Request struct {
	TenantID        int64
	ClientID        int64
	Weekday         time.Weekday
	StartDate       types.Date
	EndDate         *types.Date // nil - горизонт по умолчанию (90 дней)
	StartTime       types.TimeString
	DurationMinutes int
	Sport           domain.SportType
	Participants    int
	Notes           *string
}

// DateStatus итог по одной дате серии
type DateStatus string

const (
	DateCreated DateStatus = "created"
	DateSkipped DateStatus = "skipped"
	DateFailed  DateStatus = "failed"
)

// DateOutcome результат попытки создать занятие на конкретную дату
type DateOutcome struct {
	Date         types.Date
	Status       DateStatus
	Reason       string
	OccurrenceID *int64
}

// Response модель ответа. Частичный успех - нормальный результат.
type Response struct {
	Result   domain.BatchResult
	Outcomes []DateOutcome
	Price    *decimal.Decimal
}
