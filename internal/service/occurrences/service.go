package occurrences

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	occurrenceRepo "github.com/m04kA/SMC-CoachScheduling/internal/infra/storage/occurrence"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences/models"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// Service сервис для работы с уже созданными занятиями
type Service struct {
	repo   OccurrenceRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса занятий
func NewService(repo OccurrenceRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID получает занятие тенанта по ID
func (s *Service) GetByID(ctx context.Context, tenantID, id int64) (*models.OccurrenceResponse, error) {
	occ, err := s.get(ctx, "GetByID", tenantID, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainOccurrence(occ), nil
}

// List получает занятия тенанта с фильтрацией по дате, серии и статусу
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.OccurrenceListResponse, error) {
	filter := domain.OccurrencesFilter{
		TenantID:         req.TenantID,
		ClientID:         req.ClientID,
		IncludeCancelled: req.IncludeCancelled,
	}

	if req.Date != nil {
		date, err := types.ParseDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Date = &date
	}
	if req.SeriesID != nil {
		seriesID, err := uuid.Parse(*req.SeriesID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid series id", ErrInvalidInput)
		}
		filter.SeriesID = &seriesID
	}
	if req.Status != nil {
		status, err := domain.ParseOccurrenceStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d occurrences for tenant=%d", len(list), req.TenantID)
	return models.FromDomainOccurrenceList(list), nil
}

// Cancel отменяет занятие. Отменить можно только запланированное (scheduled).
func (s *Service) Cancel(ctx context.Context, tenantID, id int64, req *models.CancelRequest) (*models.OccurrenceResponse, error) {
	s.logger.Info("Cancel: cancelling occurrence id=%d tenant=%d", id, tenantID)

	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	occ, err := s.get(ctx, "Cancel", tenantID, id)
	if err != nil {
		return nil, err
	}

	if !occ.CanBeCancelled() {
		s.logger.Warn("Cancel: occurrence id=%d cannot be cancelled, status=%s", id, occ.Status)
		return nil, ErrCannotCancel
	}

	if err := s.repo.Cancel(ctx, tenantID, id, req.CancellationReason); err != nil {
		// Статус успел смениться между чтением и отменой
		if errors.Is(err, occurrenceRepo.ErrStatusChanged) {
			s.logger.Warn("Cancel: occurrence id=%d is no longer scheduled", id)
			return nil, ErrCannotCancel
		}
		return nil, s.mapRepoError("Cancel", id, err)
	}

	s.logger.Info("Cancel: successfully cancelled occurrence id=%d", id)
	return s.GetByID(ctx, tenantID, id)
}

// UpdateStatus меняет статус занятия (completed, no_show, ...).
// Из cancelled выйти нельзя; отмена идёт через Cancel.
func (s *Service) UpdateStatus(ctx context.Context, tenantID, id int64, req *models.UpdateStatusRequest) (*models.OccurrenceResponse, error) {
	s.logger.Info("UpdateStatus: occurrence id=%d tenant=%d to status=%s", id, tenantID, req.Status)

	next, err := domain.ParseOccurrenceStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for occurrence id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if next == domain.StatusCancelled {
		return s.Cancel(ctx, tenantID, id, &models.CancelRequest{})
	}

	occ, err := s.get(ctx, "UpdateStatus", tenantID, id)
	if err != nil {
		return nil, err
	}

	if !occ.CanTransitionTo(next) {
		s.logger.Warn("UpdateStatus: occurrence id=%d cannot move from %s to %s", id, occ.Status, next)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, occ.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, tenantID, id, next); err != nil {
		if errors.Is(err, occurrenceRepo.ErrStatusChanged) {
			s.logger.Warn("UpdateStatus: occurrence id=%d was cancelled concurrently", id)
			return nil, fmt.Errorf("%w: cancelled -> %s", ErrInvalidTransition, next)
		}
		return nil, s.mapRepoError("UpdateStatus", id, err)
	}

	s.logger.Info("UpdateStatus: successfully updated occurrence id=%d to status=%s", id, next)
	return s.GetByID(ctx, tenantID, id)
}

// CancelSeries отменяет ещё не прошедшие занятия серии.
// Завершённые и неявки остаются как история.
func (s *Service) CancelSeries(ctx context.Context, tenantID int64, seriesID string, req *models.CancelRequest) (*models.CancelSeriesResponse, error) {
	id, err := uuid.Parse(seriesID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid series id", ErrInvalidInput)
	}

	var reason *string
	if req != nil {
		reason = req.CancellationReason
	}

	cancelled, err := s.repo.CancelScheduledBySeries(ctx, tenantID, id, reason)
	if err != nil {
		s.logger.Error("CancelSeries: repository error for series=%s: %v", id, err)
		return nil, fmt.Errorf("%w: CancelSeries - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelSeries: cancelled %d scheduled occurrences of series=%s tenant=%d", cancelled, id, tenantID)
	return &models.CancelSeriesResponse{SeriesID: id.String(), Cancelled: cancelled}, nil
}

func (s *Service) get(ctx context.Context, op string, tenantID, id int64) (*domain.Occurrence, error) {
	occ, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, s.mapRepoError(op, id, err)
	}
	return occ, nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, occurrenceRepo.ErrOccurrenceNotFound) {
		s.logger.Warn("%s: occurrence id=%d not found", op, id)
		return ErrOccurrenceNotFound
	}
	s.logger.Error("%s: repository error for occurrence id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
