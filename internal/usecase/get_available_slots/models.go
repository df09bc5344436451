package get_available_slots

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	TenantID        int64             // ID тренера/клуба
	Date            types.Date        // Дата
	DurationMinutes int               // Желаемая длительность занятия
	Sport           *domain.SportType // Если указан - к слотам добавляется цена
	Participants    int               // Для цены; 0 - один участник
}

// Response модель ответа со списком свободных слотов
type Response struct {
	TenantID         int64
	Date             types.Date
	DurationMinutes  int
	Slots            []Slot // Пустой список - нормальный ответ
	DurationsOffered []int  // Какие длительности вообще бывают у тренера
}

// Slot модель свободного времени начала
type Slot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Price           *decimal.Decimal  // nil - цена не найдена или вид спорта не указан
	Tier            domain.DemandTier // Тариф слота цены, если цена найдена
}
