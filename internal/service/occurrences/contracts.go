package occurrences

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
)

// OccurrenceRepository интерфейс репозитория занятий
type OccurrenceRepository interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Occurrence, error)
	List(ctx context.Context, filter domain.OccurrencesFilter) ([]*domain.Occurrence, error)
	UpdateStatus(ctx context.Context, tenantID, id int64, status domain.OccurrenceStatus) error
	Cancel(ctx context.Context, tenantID, id int64, reason *string) error
	CancelScheduledBySeries(ctx context.Context, tenantID int64, seriesID uuid.UUID, reason *string) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
