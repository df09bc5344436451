package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences/models"
)

type OccurrenceService interface {
	Cancel(ctx context.Context, tenantID, id int64, req *models.CancelRequest) (*models.OccurrenceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
