package pricing

import (
	"context"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
)

// TableSource источник тарифной сетки (репозиторий в БД)
type TableSource interface {
	GetTable(ctx context.Context, tenantID int64) (domain.PricingTable, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Debug(format string, v ...interface{})
}
