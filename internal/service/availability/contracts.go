package availability

import (
	"context"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
)

// BlockRepository интерфейс репозитория блоков доступности
type BlockRepository interface {
	Create(ctx context.Context, block *domain.AvailabilityBlock) (*domain.AvailabilityBlock, error)
	ListAll(ctx context.Context, tenantID int64) ([]*domain.AvailabilityBlock, error)
	Deactivate(ctx context.Context, tenantID, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
