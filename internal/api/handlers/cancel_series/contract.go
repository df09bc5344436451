package cancel_series

import (
	"context"

	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences/models"
)

type OccurrenceService interface {
	CancelSeries(ctx context.Context, tenantID int64, seriesID string, req *models.CancelRequest) (*models.CancelSeriesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
