package create_recurring_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/internal/integrations/payments"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// BlockRepository интерфейс репозитория блоков доступности
type BlockRepository interface {
	ListActive(ctx context.Context, tenantID int64) ([]*domain.AvailabilityBlock, error)
}

// OccurrenceRepository интерфейс репозитория занятий (снимок на каждую дату серии)
type OccurrenceRepository interface {
	ListByDate(ctx context.Context, tenantID int64, date types.Date) ([]*domain.Occurrence, error)
}

// PricingSource источник тарифной сетки
type PricingSource interface {
	GetTable(ctx context.Context, tenantID int64) (domain.PricingTable, error)
}

// BookingWriter запись занятия с повторной проверкой пересечений
type BookingWriter interface {
	Commit(ctx context.Context, occ *domain.Occurrence) (*domain.Occurrence, bool, error)
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
