package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/internal/scheduling"
)

// UseCase use case для получения свободных слотов на дату
type UseCase struct {
	blockRepo      BlockRepository
	occurrenceRepo OccurrenceRepository
	pricingSource  PricingSource
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	blockRepo BlockRepository,
	occurrenceRepo OccurrenceRepository,
	pricingSource PricingSource,
	logger Logger,
) *UseCase {
	return &UseCase{
		blockRepo:      blockRepo,
		occurrenceRepo: occurrenceRepo,
		pricingSource:  pricingSource,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tenant=%d, date=%s, duration=%d",
		req.TenantID, req.Date, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date)
		return nil, err
	}

	// 3. Недельная доступность
	blocks, err := uc.blockRepo.ListActive(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocks for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}
	catalog := scheduling.NewCatalog(blocks)

	// 4. Занятия на дату (отменённые репозиторий не возвращает)
	existing, err := uc.occurrenceRepo.ListByDate(ctx, req.TenantID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get occurrences: %v", err)
		return nil, fmt.Errorf("%w: failed to get occurrences: %v", ErrInternal, err)
	}

	// 5. Генерация слотов
	starts := scheduling.GenerateSlots(req.Date, req.DurationMinutes, catalog, existing)

	// 6. Цены, если указан вид спорта
	var table domain.PricingTable
	if req.Sport != nil && len(starts) > 0 {
		table, err = uc.pricingSource.GetTable(ctx, req.TenantID)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get pricing for tenant=%d: %v", req.TenantID, err)
			return nil, fmt.Errorf("%w: failed to get pricing: %v", ErrInternal, err)
		}
	}

	slots, err := buildSlots(starts, req, table)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("GetAvailableSlots: tenant=%d, date=%s: %d free slots of %d existing occurrences",
		req.TenantID, req.Date, len(slots), len(existing))

	return &Response{
		TenantID:         req.TenantID,
		Date:             req.Date,
		DurationMinutes:  req.DurationMinutes,
		Slots:            slots,
		DurationsOffered: catalog.DurationsOffered(),
	}, nil
}
