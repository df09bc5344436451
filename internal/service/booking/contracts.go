package booking

import (
	"context"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// OccurrenceRepository интерфейс репозитория занятий
type OccurrenceRepository interface {
	Create(ctx context.Context, occ *domain.Occurrence) (*domain.Occurrence, bool, error)
	ListByDate(ctx context.Context, tenantID int64, date types.Date) ([]*domain.Occurrence, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчик отказов при повторной проверке
type Metrics interface {
	RecordWriteConflict()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
