package schedule_academy

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/internal/integrations/payments"
	"github.com/m04kA/SMC-CoachScheduling/internal/pricing"
	"github.com/m04kA/SMC-CoachScheduling/internal/scheduling"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// MetricsSource метка источника для счётчика созданных занятий
const MetricsSource = "academy"

// UseCase use case для массового расписания академии: даты × корты × клиенты
type UseCase struct {
	occurrenceRepo OccurrenceRepository
	pricingSource  PricingSource
	notifier       PaymentNotifier
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	occurrenceRepo OccurrenceRepository,
	pricingSource PricingSource,
	notifier PaymentNotifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		occurrenceRepo: occurrenceRepo,
		pricingSource:  pricingSource,
		notifier:       notifier,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute создаёт занятия академии.
//
// Для каждого блока расписания - своя серия. На каждую дату серии создаётся
// по занятию на каждого клиента каждого корта, у которого есть клиенты.
// Корты академии закреплены за ней, пересечения с доступностью тренера не проверяются.
// Ошибка одной записи не останавливает остальные; повтор запроса не создаёт дублей.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScheduleAcademy: tenant=%d, academy=%d, from=%s, blocks=%d",
		req.TenantID, req.AcademyID, req.StartDate, len(req.Blocks))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ScheduleAcademy: validation failed: %v", err)
		return nil, err
	}

	if err := validateStartDate(req.StartDate, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("ScheduleAcademy: start date %s is in the past", req.StartDate)
		return nil, err
	}

	// 2. Тарифная сетка одна на всё расписание
	table, err := uc.pricingSource.GetTable(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("ScheduleAcademy: failed to get pricing for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get pricing: %v", ErrInternal, err)
	}

	result := domain.BatchResult{
		Series:      make([]domain.Series, 0, len(req.Blocks)),
		Dates:       make([]types.Date, 0),
		Occurrences: make([]*domain.Occurrence, 0),
	}

	// 3. Блок за блоком
	for _, block := range req.Blocks {
		if ctx.Err() != nil {
			result.Aborted = true
			break
		}

		series := scheduling.NewSeries(req.TenantID, block.Weekday, req.StartDate, req.EndDate)
		series.ID = seriesIDFor(req, block, series.EndDate)
		dates := scheduling.Expand(req.StartDate, req.EndDate, block.Weekday)

		result.Series = append(result.Series, series)
		result.Dates = append(result.Dates, dates...)

		if !uc.scheduleBlock(ctx, req, block, series, dates, table, &result) {
			result.Aborted = true
			break
		}
	}

	uc.metrics.RecordOccurrences(MetricsSource, result.Created, result.Skipped, result.Failed)

	if result.Aborted {
		uc.logger.Warn("ScheduleAcademy: academy=%d aborted: %v", req.AcademyID, ctx.Err())
	}
	uc.logger.Info("ScheduleAcademy: academy=%d: series=%d created=%d skipped=%d failed=%d",
		req.AcademyID, len(result.Series), result.Created, result.Skipped, result.Failed)

	return &Response{Result: result}, nil
}

// scheduleBlock создаёт занятия одного блока. false - обработка прервана отменой ctx.
func (uc *UseCase) scheduleBlock(
	ctx context.Context,
	req *Request,
	block ScheduleBlock,
	series domain.Series,
	dates []types.Date,
	table domain.PricingTable,
	result *domain.BatchResult,
) bool {
	for _, court := range block.Courts {
		if len(court.ClientIDs) == 0 {
			continue
		}

		// Цена зависит от количества клиентов на корте, поэтому считается на корт
		startTime := block.StartTime
		price, err := pricing.Resolve(table, pricing.Query{
			Sport:           block.Sport,
			DurationMinutes: block.DurationMinutes,
			TimeOfDay:       &startTime,
			Participants:    len(court.ClientIDs),
		})
		if err != nil {
			uc.logger.Warn("ScheduleAcademy: price lookup failed for court=%d: %v", court.CourtID, err)
			price = pricing.NotFound()
		}

		for _, date := range dates {
			for _, clientID := range court.ClientIDs {
				if ctx.Err() != nil {
					return false
				}

				occ := newOccurrence(req, block, court, clientID, series.ID, date, price)
				stored, created, err := uc.occurrenceRepo.Create(ctx, occ)
				switch {
				case err != nil:
					if ctx.Err() != nil {
						return false
					}
					uc.logger.Error("ScheduleAcademy: failed to create occurrence court=%d client=%d date=%s: %v",
						court.CourtID, clientID, date, err)
					result.Failed++
					continue
				case !created:
					result.Skipped++
					continue
				}

				result.Created++
				result.Occurrences = append(result.Occurrences, stored)

				if price.Found {
					if err := uc.notifier.NotifyPaymentRequired(ctx, payments.NewPaymentRequest(stored, price.Amount)); err != nil {
						uc.logger.Warn("ScheduleAcademy: failed to notify payments for occurrence id=%d: %v", stored.ID, err)
					}
				}
			}
		}
	}

	return true
}

// seriesIDFor детерминированный ID серии блока: повтор того же запроса
// даёт те же ключи идемпотентности и не создаёт дублей
func seriesIDFor(req *Request, block ScheduleBlock, endDate types.Date) uuid.UUID {
	name := fmt.Sprintf("academy:%d:%d:%s:%s:%d:%s:%d:%s",
		req.TenantID, req.AcademyID, req.StartDate, endDate,
		int(block.Weekday), block.StartTime, block.DurationMinutes, block.Sport)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
}

func newOccurrence(
	req *Request,
	block ScheduleBlock,
	court Court,
	clientID int64,
	seriesID uuid.UUID,
	date types.Date,
	price pricing.Result,
) *domain.Occurrence {
	academyID := req.AcademyID
	courtID := court.CourtID

	occ := &domain.Occurrence{
		TenantID:        req.TenantID,
		ClientID:        clientID,
		AcademyID:       &academyID,
		CourtID:         &courtID,
		SeriesID:        &seriesID,
		Date:            date,
		StartTime:       block.StartTime,
		DurationMinutes: block.DurationMinutes,
		Sport:           block.Sport,
		Participants:    len(court.ClientIDs),
		Status:          domain.StatusScheduled,
	}
	if price.Found {
		amount := price.Amount
		occ.Price = &amount
	}
	occ.IdempotencyKey = domain.BuildIdempotencyKey(occ)
	return occ
}
