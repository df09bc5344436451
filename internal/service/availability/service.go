package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-CoachScheduling/internal/infra/storage/availability"
	"github.com/m04kA/SMC-CoachScheduling/internal/scheduling"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/availability/models"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

// Service сервис недельной доступности тренера
type Service struct {
	repo   BlockRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(repo BlockRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetCatalog возвращает все блоки тенанта и сводку по активным
func (s *Service) GetCatalog(ctx context.Context, tenantID int64) (*models.CatalogResponse, error) {
	blocks, err := s.repo.ListAll(ctx, tenantID)
	if err != nil {
		s.logger.Error("GetCatalog: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetCatalog - repository error: %v", ErrInternal, err)
	}

	catalog := scheduling.NewCatalog(blocks)

	resp := &models.CatalogResponse{
		TenantID:         tenantID,
		Blocks:           make([]models.BlockResponse, 0, len(blocks)),
		ActiveDays:       make([]int, 0, 7),
		DurationsOffered: catalog.DurationsOffered(),
	}
	for _, block := range blocks {
		resp.Blocks = append(resp.Blocks, *models.FromDomainBlock(block))
	}
	for _, day := range catalog.ActiveDays() {
		resp.ActiveDays = append(resp.ActiveDays, int(day))
	}

	s.logger.Info("GetCatalog: tenant=%d has %d blocks, %d active days", tenantID, len(blocks), len(resp.ActiveDays))
	return resp, nil
}

// CreateBlock создает блок доступности.
// Блоки могут перекрываться: разные длительности в одно время - нормальная конфигурация.
func (s *Service) CreateBlock(ctx context.Context, tenantID int64, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("CreateBlock: tenant=%d day=%d %s-%s duration=%d",
		tenantID, req.DayOfWeek, req.StartTime, req.EndTime, req.SlotDurationMinutes)

	block, err := toDomainBlock(tenantID, req)
	if err != nil {
		s.logger.Warn("CreateBlock: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, block)
	if err != nil {
		s.logger.Error("CreateBlock: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlock: created block id=%d for tenant=%d", created.ID, tenantID)
	return models.FromDomainBlock(created), nil
}

// DeactivateBlock отключает блок; уже созданные занятия остаются
func (s *Service) DeactivateBlock(ctx context.Context, tenantID, blockID int64) error {
	if err := s.repo.Deactivate(ctx, tenantID, blockID); err != nil {
		if errors.Is(err, availabilityRepo.ErrBlockNotFound) {
			s.logger.Warn("DeactivateBlock: block id=%d not found for tenant=%d", blockID, tenantID)
			return ErrBlockNotFound
		}
		s.logger.Error("DeactivateBlock: repository error for block id=%d: %v", blockID, err)
		return fmt.Errorf("%w: DeactivateBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeactivateBlock: block id=%d deactivated for tenant=%d", blockID, tenantID)
	return nil
}

func toDomainBlock(tenantID int64, req *models.CreateBlockRequest) (*domain.AvailabilityBlock, error) {
	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}
	tier, err := domain.ParseDemandTier(req.DemandTier)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	block := &domain.AvailabilityBlock{
		TenantID:            tenantID,
		DayOfWeek:           time.Weekday(req.DayOfWeek),
		StartTime:           start,
		EndTime:             end,
		SlotDurationMinutes: req.SlotDurationMinutes,
		DemandTier:          tier,
		Active:              req.Active == nil || *req.Active,
	}
	if err := block.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return block, nil
}
