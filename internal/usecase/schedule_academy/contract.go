package schedule_academy

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/internal/integrations/payments"
)

// OccurrenceRepository интерфейс репозитория занятий.
// Create идемпотентен по ключу: повтор возвращает существующую запись и created == false.
type OccurrenceRepository interface {
	Create(ctx context.Context, occ *domain.Occurrence) (*domain.Occurrence, bool, error)
}

// PricingSource источник тарифной сетки
type PricingSource interface {
	GetTable(ctx context.Context, tenantID int64) (domain.PricingTable, error)
}

// PaymentNotifier уведомление сервиса платежей о созданном занятии
type PaymentNotifier interface {
	NotifyPaymentRequired(ctx context.Context, req payments.PaymentRequest) error
}

// Metrics счётчики созданных занятий
type Metrics interface {
	RecordOccurrences(source string, created, skipped, failed int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
