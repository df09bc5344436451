package get_price

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// Request модель запроса цены занятия
type Request struct {
	TenantID        int64
	Sport           domain.SportType
	DurationMinutes int
	TimeOfDay       *types.TimeString // nil - первый объявленный слот сетки
	Participants    int               // 0 - один участник
}

// Response модель ответа. Found == false - цены нет, это не ошибка.
type Response struct {
	Found               bool
	Amount              *decimal.Decimal
	Tier                domain.DemandTier
	ParticipantFallback bool
	TimeOfDayDefaulted  bool // время не передано, взят первый слот сетки
}
