package get_availability

import (
	"context"

	"github.com/m04kA/SMC-CoachScheduling/internal/service/availability/models"
)

type AvailabilityService interface {
	GetCatalog(ctx context.Context, tenantID int64) (*models.CatalogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
