package update_booking_status

import (
	"context"

	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences/models"
)

type OccurrenceService interface {
	UpdateStatus(ctx context.Context, tenantID, id int64, req *models.UpdateStatusRequest) (*models.OccurrenceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
