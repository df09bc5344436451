// Package booking единственный путь записи одиночных занятий с проверкой пересечений.
package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/internal/scheduling"
	"github.com/m04kA/SMC-CoachScheduling/pkg/txmanager"
)

// Writer записывает занятие, повторно проверяя пересечения на свежих данных
type Writer struct {
	repo      OccurrenceRepository
	txManager TransactionManager
	metrics   Metrics
	logger    Logger
}

// NewWriter создает новый экземпляр Writer
func NewWriter(repo OccurrenceRepository, txManager TransactionManager, metrics Metrics, logger Logger) *Writer {
	return &Writer{
		repo:      repo,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Commit сохраняет занятие.
//
// Внутри SERIALIZABLE транзакции:
// 1. Заново читаем занятия на дату (FOR UPDATE)
// 2. Проверяем пересечение тем же предикатом, что и генератор слотов
// 3. Пишем
//
// Снимок, по которому запрос проверялся раньше, мог устареть - поэтому проверка здесь обязательна.
// Если пересечение найдено или PostgreSQL откатил транзакцию (40001) - ErrSlotNoLongerAvailable.
// Повтор с тем же ключом идемпотентности возвращает уже сохранённое занятие и created == false.
func (w *Writer) Commit(ctx context.Context, occ *domain.Occurrence) (*domain.Occurrence, bool, error) {
	if occ.IdempotencyKey == "" {
		occ.IdempotencyKey = domain.BuildIdempotencyKey(occ)
	}

	var (
		stored  *domain.Occurrence
		created bool
	)

	err := w.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := w.repo.ListByDate(txCtx, occ.TenantID, occ.Date)
		if err != nil {
			return fmt.Errorf("fresh read: %w", err)
		}

		if conflict := scheduling.FindConflict(occ.StartTime, occ.DurationMinutes, existing); conflict != nil {
			if conflict.IdempotencyKey == occ.IdempotencyKey {
				stored = conflict
				return nil
			}
			w.logger.Warn("Commit: tenant=%d date=%s %s/%dm overlaps occurrence id=%d",
				occ.TenantID, occ.Date, occ.StartTime, occ.DurationMinutes, conflict.ID)
			return ErrSlotNoLongerAvailable
		}

		stored, created, err = w.repo.Create(txCtx, occ)
		if err != nil {
			return fmt.Errorf("create: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNoLongerAvailable) || txmanager.IsSerializationFailure(err) {
			w.metrics.RecordWriteConflict()
			return nil, false, ErrSlotNoLongerAvailable
		}
		w.logger.Error("Commit: tenant=%d date=%s %s: %v", occ.TenantID, occ.Date, occ.StartTime, err)
		return nil, false, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if created {
		w.logger.Info("Commit: created occurrence id=%d tenant=%d date=%s %s",
			stored.ID, stored.TenantID, stored.Date, stored.StartTime)
	}
	return stored, created, nil
}
