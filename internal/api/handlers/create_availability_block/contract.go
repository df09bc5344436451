package create_availability_block

import (
	"context"

	"github.com/m04kA/SMC-CoachScheduling/internal/service/availability/models"
)

type AvailabilityService interface {
	CreateBlock(ctx context.Context, tenantID int64, req *models.CreateBlockRequest) (*models.BlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
