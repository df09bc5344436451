package get_price

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CoachScheduling/internal/pricing"
)

// UseCase use case для расчёта цены занятия
type UseCase struct {
	pricingSource PricingSource
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pricingSource PricingSource, logger Logger) *UseCase {
	return &UseCase{
		pricingSource: pricingSource,
		logger:        logger,
	}
}

// Execute выполняет use case расчёта цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetPrice: validation failed: %v", err)
		return nil, err
	}

	if req.TimeOfDay == nil {
		uc.logger.Warn("GetPrice: tenant=%d sport=%s requested without time of day, using first declared slot",
			req.TenantID, req.Sport)
	}

	// 2. Тарифная сетка
	table, err := uc.pricingSource.GetTable(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("GetPrice: failed to get pricing for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get pricing: %v", ErrInternal, err)
	}

	// 3. Поиск цены
	res, err := pricing.Resolve(table, pricing.Query{
		Sport:           req.Sport,
		DurationMinutes: req.DurationMinutes,
		TimeOfDay:       req.TimeOfDay,
		Participants:    req.Participants,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resp := &Response{
		Found:               res.Found,
		Tier:                res.Tier,
		ParticipantFallback: res.ParticipantFallback,
		TimeOfDayDefaulted:  req.TimeOfDay == nil,
	}
	if res.Found {
		amount := res.Amount
		resp.Amount = &amount
	}

	uc.logger.Info("GetPrice: tenant=%d sport=%s duration=%d participants=%d: found=%t",
		req.TenantID, req.Sport, req.DurationMinutes, req.Participants, res.Found)

	return resp, nil
}
