package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// BlockRepository интерфейс репозитория блоков доступности
type BlockRepository interface {
	ListActive(ctx context.Context, tenantID int64) ([]*domain.AvailabilityBlock, error)
}

// OccurrenceRepository интерфейс репозитория занятий
type OccurrenceRepository interface {
	// ListByDate получает неотменённые занятия тенанта на дату
	ListByDate(ctx context.Context, tenantID int64, date types.Date) ([]*domain.Occurrence, error)
}

// PricingSource источник тарифной сетки (репозиторий или кэш)
type PricingSource interface {
	GetTable(ctx context.Context, tenantID int64) (domain.PricingTable, error)
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
