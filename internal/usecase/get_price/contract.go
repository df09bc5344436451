package get_price

import (
	"context"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
)

// PricingSource источник тарифной сетки
type PricingSource interface {
	GetTable(ctx context.Context, tenantID int64) (domain.PricingTable, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
