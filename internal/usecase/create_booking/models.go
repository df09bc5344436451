package create_booking

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// Request модель запроса на создание разового занятия
type Request struct {
	TenantID        int64            // ID тренера/клуба
	ClientID        int64            // ID клиента
	Date            types.Date       // Дата занятия
	StartTime       types.TimeString // Время начала (HH:MM)
	DurationMinutes int              // Длительность занятия
	Sport           domain.SportType // Вид спорта (для цены)
	Participants    int              // Количество участников; 0 - один
	Notes           *string          // Комментарий клиента
}

// Response модель ответа на создание занятия
type Response struct {
	Occurrence *domain.Occurrence

	PriceFound          bool
	Price               *decimal.Decimal
	ParticipantFallback bool // цена взята для одного участника

	Created         bool // false - повтор запроса с тем же ключом идемпотентности
	PaymentNotified bool
}
