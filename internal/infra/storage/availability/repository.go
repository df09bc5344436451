package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachScheduling/pkg/psqlbuilder"
)

const table = "availability_blocks"

var columns = []string{
	"id",
	"tenant_id",
	"day_of_week",
	"start_time",
	"end_time",
	"slot_duration_minutes",
	"demand_tier",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий недельных блоков доступности тренера
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блоков доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый блок доступности
func (r *Repository) Create(ctx context.Context, block *domain.AvailabilityBlock) (*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"tenant_id",
			"day_of_week",
			"start_time",
			"end_time",
			"slot_duration_minutes",
			"demand_tier",
			"active",
		).
		Values(
			block.TenantID,
			int(block.DayOfWeek),
			block.StartTime,
			block.EndTime,
			block.SlotDurationMinutes,
			string(block.DemandTier),
			block.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&block.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	block.UpdatedAt = updatedAt.Time

	return block, nil
}

// ListActive возвращает активные блоки тенанта
func (r *Repository) ListActive(ctx context.Context, tenantID int64) ([]*domain.AvailabilityBlock, error) {
	return r.list(ctx, squirrel.Eq{"tenant_id": tenantID, "active": true})
}

// ListAll возвращает все блоки тенанта, включая отключённые
func (r *Repository) ListAll(ctx context.Context, tenantID int64) ([]*domain.AvailabilityBlock, error) {
	return r.list(ctx, squirrel.Eq{"tenant_id": tenantID})
}

// Deactivate отключает блок. Сгенерированные ранее занятия не трогаем.
func (r *Repository) Deactivate(ctx context.Context, tenantID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, where squirrel.Eq) ([]*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		OrderBy("day_of_week ASC", "start_time ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.AvailabilityBlock, 0)

	for rows.Next() {
		var (
			block                domain.AvailabilityBlock
			dayOfWeek            int
			tier                 string
			createdAt, updatedAt sql.NullTime
		)

		err := rows.Scan(
			&block.ID,
			&block.TenantID,
			&dayOfWeek,
			&block.StartTime,
			&block.EndTime,
			&block.SlotDurationMinutes,
			&tier,
			&block.Active,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}

		block.DayOfWeek = time.Weekday(dayOfWeek)
		block.DemandTier = domain.DemandTier(tier)
		block.CreatedAt = createdAt.Time
		block.UpdatedAt = updatedAt.Time

		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %w", ErrScanRow, err)
	}

	return blocks, nil
}
