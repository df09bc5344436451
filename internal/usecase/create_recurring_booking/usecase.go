package create_recurring_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/internal/integrations/payments"
	"github.com/m04kA/SMC-CoachScheduling/internal/pricing"
	"github.com/m04kA/SMC-CoachScheduling/internal/scheduling"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/booking"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// MetricsSource метка источника для счётчика созданных занятий
const MetricsSource = "recurring"

// UseCase use case для создания еженедельной серии занятий клиента
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

// Execute разворачивает серию и пытается создать занятие на каждую дату.
//
// Каждая дата проверяется и пишется независимо, через тот же Writer, что и разовое занятие:
// занятая или отсутствующая в расписании дата пропускается, ошибка записи учитывается как failed,
// остальные даты продолжают обрабатываться. Созданные занятия не откатываются.
// Отмена ctx останавливает разворачивание (Aborted), уже созданное остаётся.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRecurringBooking: tenant=%d, client=%d, weekday=%s, from=%s, time=%s, duration=%d",
		req.TenantID, req.ClientID, req.Weekday, req.StartDate, req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRecurringBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateStartDate(req.StartDate, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateRecurringBooking: start date %s is in the past", req.StartDate)
		return nil, err
	}

	// 2. Серия и её даты
	series := scheduling.NewSeries(req.TenantID, req.Weekday, req.StartDate, req.EndDate)
	series.ID = uuid.New()
	dates := scheduling.Expand(req.StartDate, req.EndDate, req.Weekday)

	// 3. Расписание и цена общие для всех дат
	blocks, err := uc.blockRepo.ListActive(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("CreateRecurringBooking: failed to get blocks for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}
	catalog := scheduling.NewCatalog(blocks)

	table, err := uc.pricingSource.GetTable(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("CreateRecurringBooking: failed to get pricing for tenant=%d: %v", req.TenantID, err)
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

	resp := &Response{
		Result: domain.BatchResult{
			Series:      []domain.Series{series},
			Dates:       dates,
			Occurrences: make([]*domain.Occurrence, 0, len(dates)),
		},
		Outcomes: make([]DateOutcome, 0, len(dates)),
	}
	if price.Found {
		amount := price.Amount
		resp.Price = &amount
	}

	// 4. По дате за раз
	for _, date := range dates {
		if ctx.Err() != nil {
			resp.Result.Aborted = true
			break
		}

		outcome := uc.bookDate(ctx, req, catalog, series, date, price)
		if outcome == nil {
			resp.Result.Aborted = true
			break
		}

		resp.Outcomes = append(resp.Outcomes, outcome.DateOutcome)
		switch outcome.Status {
		case DateCreated:
			resp.Result.Created++
			resp.Result.Occurrences = append(resp.Result.Occurrences, outcome.occurrence)
		case DateSkipped:
			resp.Result.Skipped++
		case DateFailed:
			resp.Result.Failed++
		}
	}

	uc.metrics.RecordOccurrences(MetricsSource, resp.Result.Created, resp.Result.Skipped, resp.Result.Failed)

	if resp.Result.Aborted {
		uc.logger.Warn("CreateRecurringBooking: series=%s aborted after %d of %d dates: %v",
			series.ID, len(resp.Outcomes), len(dates), ctx.Err())
	}
	uc.logger.Info("CreateRecurringBooking: series=%s: created=%d skipped=%d failed=%d",
		series.ID, resp.Result.Created, resp.Result.Skipped, resp.Result.Failed)

	return resp, nil
}

type dateResult struct {
	DateOutcome
	occurrence *domain.Occurrence
}

// bookDate обрабатывает одну дату серии. nil - обработка прервана отменой ctx.
func (uc *UseCase) bookDate(
	ctx context.Context,
	req *Request,
	catalog *scheduling.Catalog,
	series domain.Series,
	date types.Date,
	price pricing.Result,
) *dateResult {
	skipped := func(reason string) *dateResult {
		return &dateResult{DateOutcome: DateOutcome{Date: date, Status: DateSkipped, Reason: reason}}
	}
	failed := func() *dateResult {
		return &dateResult{DateOutcome: DateOutcome{Date: date, Status: DateFailed, Reason: reasonStorageError}}
	}

	if !scheduling.ContainsSlot(scheduling.CandidateStarts(date, req.DurationMinutes, catalog), req.StartTime) {
		uc.logger.Info("CreateRecurringBooking: %s %s is outside availability, skipping", date, req.StartTime)
		return skipped(reasonOutsideAvailability)
	}

	existing, err := uc.occurrenceRepo.ListByDate(ctx, req.TenantID, date)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		uc.logger.Error("CreateRecurringBooking: failed to get occurrences on %s: %v", date, err)
		return failed()
	}
	occ := newOccurrence(req, series, date, price)
	if conflict := scheduling.FindConflict(req.StartTime, req.DurationMinutes, existing); conflict != nil &&
		conflict.IdempotencyKey != occ.IdempotencyKey {
		uc.logger.Info("CreateRecurringBooking: %s %s is taken, skipping", date, req.StartTime)
		return skipped(reasonSlotTaken)
	}

	stored, created, err := uc.writer.Commit(ctx, occ)
	switch {
	case errors.Is(err, booking.ErrSlotNoLongerAvailable):
		return skipped(reasonSlotTaken)
	case err != nil:
		if ctx.Err() != nil {
			return nil
		}
		uc.logger.Error("CreateRecurringBooking: failed to save occurrence on %s: %v", date, err)
		return failed()
	case !created:
		return skipped(reasonAlreadyExists)
	}

	if price.Found {
		if err := uc.notifier.NotifyPaymentRequired(ctx, payments.NewPaymentRequest(stored, price.Amount)); err != nil {
			uc.logger.Warn("CreateRecurringBooking: failed to notify payments for occurrence id=%d: %v", stored.ID, err)
		}
	}

	id := stored.ID
	return &dateResult{
		DateOutcome: DateOutcome{Date: date, Status: DateCreated, OccurrenceID: &id},
		occurrence:  stored,
	}
}

func newOccurrence(req *Request, series domain.Series, date types.Date, price pricing.Result) *domain.Occurrence {
	participants := req.Participants
	if participants == 0 {
		participants = domain.DefaultParticipants
	}

	seriesID := series.ID
	occ := &domain.Occurrence{
		TenantID:        req.TenantID,
		ClientID:        req.ClientID,
		SeriesID:        &seriesID,
		Date:            date,
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
