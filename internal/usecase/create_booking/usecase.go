package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/internal/integrations/payments"
	"github.com/m04kA/SMC-CoachScheduling/internal/pricing"
	"github.com/m04kA/SMC-CoachScheduling/internal/scheduling"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/booking"
)

// MetricsSource метка источника для счётчика созданных занятий
const MetricsSource = "single"

// UseCase use case для создания разового занятия
type UseCase struct {
	blockRepo      BlockRepository
	occurrenceRepo OccurrenceRepository
	pricingSource  PricingSource
	writer         BookingWriter
	notifier       PaymentNotifier
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	blockRepo BlockRepository,
	occurrenceRepo OccurrenceRepository,
	pricingSource PricingSource,
	writer BookingWriter,
	notifier PaymentNotifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		blockRepo:      blockRepo,
		occurrenceRepo: occurrenceRepo,
		pricingSource:  pricingSource,
		writer:         writer,
		notifier:       notifier,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания занятия
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tenant=%d, client=%d, date=%s, time=%s, duration=%d",
		req.TenantID, req.ClientID, req.Date, req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date)
		return nil, err
	}

	// 3. Время входит в расписание и свободно на текущем снимке
	if err := uc.checkAvailability(ctx, req); err != nil {
		return nil, err
	}

	// 4. Цена
	table, err := uc.pricingSource.GetTable(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get pricing for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get pricing: %v", ErrInternal, err)
	}

	startTime := req.StartTime
	price, err := pricing.Resolve(table, pricing.Query{
		Sport:           req.Sport,
		DurationMinutes: req.DurationMinutes,
		TimeOfDay:       &startTime,
		Participants:    req.Participants,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !price.Found {
		uc.logger.Warn("CreateBooking: no price for sport=%s duration=%d at %s, booking without price",
			req.Sport, req.DurationMinutes, req.StartTime)
	}

	// 5. Запись с повторной проверкой на свежих данных
	occ := newOccurrence(req, price)
	stored, created, err := uc.writer.Commit(ctx, occ)
	if err != nil {
		if errors.Is(err, booking.ErrSlotNoLongerAvailable) {
			uc.logger.Warn("CreateBooking: slot %s %s was taken concurrently", req.Date, req.StartTime)
			uc.metrics.RecordOccurrences(MetricsSource, 0, 1, 0)
			return nil, ErrSlotNoLongerAvailable
		}
		uc.logger.Error("CreateBooking: failed to save occurrence: %v", err)
		uc.metrics.RecordOccurrences(MetricsSource, 0, 0, 1)
		return nil, fmt.Errorf("%w: failed to save occurrence: %v", ErrInternal, err)
	}

	resp := &Response{
		Occurrence:          stored,
		PriceFound:          price.Found,
		Price:               stored.Price,
		ParticipantFallback: price.ParticipantFallback,
		Created:             created,
	}

	if !created {
		uc.logger.Info("CreateBooking: idempotent replay, returning occurrence id=%d", stored.ID)
		return resp, nil
	}
	uc.metrics.RecordOccurrences(MetricsSource, 1, 0, 0)

	// 6. Уведомление платежей (best effort: занятие уже создано)
	if price.Found {
		if err := uc.notifier.NotifyPaymentRequired(ctx, payments.NewPaymentRequest(stored, price.Amount)); err != nil {
			uc.logger.Warn("CreateBooking: failed to notify payments for occurrence id=%d: %v", stored.ID, err)
		} else {
			resp.PaymentNotified = true
		}
	}

	uc.logger.Info("CreateBooking: successfully created occurrence id=%d", stored.ID)
	return resp, nil
}

// checkAvailability различает "время вне расписания" и "время занято"
func (uc *UseCase) checkAvailability(ctx context.Context, req *Request) error {
	blocks, err := uc.blockRepo.ListActive(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get blocks for tenant=%d: %v", req.TenantID, err)
		return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}
	catalog := scheduling.NewCatalog(blocks)

	candidates := scheduling.CandidateStarts(req.Date, req.DurationMinutes, catalog)
	if !scheduling.ContainsSlot(candidates, req.StartTime) {
		uc.logger.Warn("CreateBooking: %s %s (%d min) is outside availability of tenant=%d",
			req.Date, req.StartTime, req.DurationMinutes, req.TenantID)
		return ErrInvalidTimeSlot
	}

	existing, err := uc.occurrenceRepo.ListByDate(ctx, req.TenantID, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get occurrences: %v", err)
		return fmt.Errorf("%w: failed to get occurrences: %v", ErrInternal, err)
	}

	if conflict := scheduling.FindConflict(req.StartTime, req.DurationMinutes, existing); conflict != nil {
		// Своё же занятие с тем же ключом - повтор запроса, его вернёт Writer
		if conflict.IdempotencyKey == newOccurrence(req, pricing.Result{}).IdempotencyKey {
			uc.logger.Info("CreateBooking: %s %s is already booked by this request, occurrence id=%d",
				req.Date, req.StartTime, conflict.ID)
			return nil
		}
		uc.logger.Warn("CreateBooking: %s %s overlaps occurrence id=%d", req.Date, req.StartTime, conflict.ID)
		return ErrSlotNotAvailable
	}

	return nil
}

func newOccurrence(req *Request, price pricing.Result) *domain.Occurrence {
	participants := req.Participants
	if participants == 0 {
		participants = domain.DefaultParticipants
	}

	occ := &domain.Occurrence{
		TenantID:        req.TenantID,
		ClientID:        req.ClientID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Sport:           req.Sport,
		Participants:    participants,
		Status:          domain.StatusScheduled,
		Notes:           req.Notes,
	}
	if price.Found {
		amount := price.Amount
		occ.Price = &amount
	}
	occ.IdempotencyKey = domain.BuildIdempotencyKey(occ)
	return occ
}
