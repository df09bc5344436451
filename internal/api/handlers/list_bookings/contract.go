package list_bookings

import (
	"context"

	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences/models"
)

type OccurrenceService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.OccurrenceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
