package deactivate_availability_block

import "context"

type AvailabilityService interface {
	DeactivateBlock(ctx context.Context, tenantID, blockID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
