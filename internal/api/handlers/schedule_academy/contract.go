package schedule_academy

import (
	"context"

	scheduleAcademy "github.com/m04kA/SMC-CoachScheduling/internal/usecase/schedule_academy"
)

type ScheduleAcademyUseCase interface {
	Execute(ctx context.Context, req *scheduleAcademy.Request) (*scheduleAcademy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
