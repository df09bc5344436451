package occurrence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachScheduling/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

const table = "occurrences"

var columns = []string{
	"id",
	"tenant_id",
	"client_id",
	"academy_id",
	"court_id",
	"series_id",
	"occurrence_date",
	"start_time",
	"duration_minutes",
	"sport",
	"participants",
	"status",
	"price",
	"idempotency_key",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Повтор вставки с тем же ключом возвращает уже существующую запись.
// Отменённые занятия ключ не занимают (частичный уникальный индекс).
const upsertSuffix = "ON CONFLICT (idempotency_key) WHERE status <> 'cancelled' " +
	"DO UPDATE SET updated_at = occurrences.updated_at RETURNING "

// Repository репозиторий для работы с занятиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория занятий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет занятие.
// Идемпотентен по IdempotencyKey: повторный вызов вернёт ранее созданную запись и created == false.
// Если в контексте есть транзакция, использует её.
func (r *Repository) Create(ctx context.Context, occ *domain.Occurrence) (*domain.Occurrence, bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if occ.IdempotencyKey == "" {
		occ.IdempotencyKey = domain.BuildIdempotencyKey(occ)
	}
	if occ.Status == "" {
		occ.Status = domain.StatusScheduled
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"tenant_id",
			"client_id",
			"academy_id",
			"court_id",
			"series_id",
			"occurrence_date",
			"start_time",
			"duration_minutes",
			"sport",
			"participants",
			"status",
			"price",
			"idempotency_key",
			"notes",
		).
		Values(
			occ.TenantID,
			occ.ClientID,
			occ.AcademyID,
			occ.CourtID,
			occ.SeriesID,
			occ.Date,
			occ.StartTime,
			occ.DurationMinutes,
			string(occ.Sport),
			occ.Participants,
			string(occ.Status),
			occ.Price,
			occ.IdempotencyKey,
			occ.Notes,
		).
		Suffix(upsertSuffix + strings.Join(columns, ", ") + ", (xmax = 0) AS inserted").
		ToSql()

	if err != nil {
		return nil, false, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var inserted bool
	stored, err := scanOccurrence(executor.QueryRowContext(ctx, query, args...), &inserted)
	if err != nil {
		return nil, false, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return stored, inserted, nil
}

// GetByID получает занятие тенанта по ID
func (r *Repository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Occurrence, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	occ, err := scanOccurrence(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOccurrenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan occurrence: %w", ErrScanRow, err)
	}

	return occ, nil
}

// ListByDate возвращает неотменённые занятия тенанта на дату.
// Внутри транзакции строки блокируются (FOR UPDATE) - это свежее чтение перед записью.
func (r *Repository) ListByDate(ctx context.Context, tenantID int64, date types.Date) ([]*domain.Occurrence, error) {
	return r.List(ctx, domain.OccurrencesFilter{TenantID: tenantID, Date: &date})
}

// List получает занятия тенанта с фильтрацией.
// Поддерживает фильтрацию по:
// - клиенту (ClientID)
// - дате (Date)
// - серии (SeriesID)
// - статусу (Status); без статуса отменённые исключаются, если не указан IncludeCancelled
func (r *Repository) List(ctx context.Context, filter domain.OccurrencesFilter) ([]*domain.Occurrence, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"tenant_id": filter.TenantID})

	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"occurrence_date": *filter.Date})
	}
	if filter.SeriesID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"series_id": *filter.SeriesID})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	selectBuilder = selectBuilder.OrderBy("occurrence_date ASC", "start_time ASC", "id ASC")

	// Блокировка нужна только для проверки пересечений на конкретную дату
	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	occurrences := make([]*domain.Occurrence, 0)
	for rows.Next() {
		occ, err := scanOccurrence(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		occurrences = append(occurrences, occ)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return occurrences, nil
}

// UpdateStatus меняет статус занятия. Отменённое занятие не меняется:
// ноль затронутых строк у существующего ID - ErrStatusChanged.
func (r *Repository) UpdateStatus(ctx context.Context, tenantID, id int64, status domain.OccurrenceStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args, tenantID, id)
}

// Cancel отменяет занятие с указанием причины. Отменяется только запланированное (scheduled):
// проверка статуса идёт в том же UPDATE, завершённые и неявки не трогаем.
func (r *Repository) Cancel(ctx context.Context, tenantID, id int64, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", string(domain.StatusCancelled)).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID, "status": string(domain.StatusScheduled)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Cancel", query, args, tenantID, id)
}

// CancelScheduledBySeries отменяет только ещё не прошедшие (scheduled) занятия серии.
// Завершённые и неявки остаются в истории. Возвращает количество отменённых.
func (r *Repository) CancelScheduledBySeries(ctx context.Context, tenantID int64, seriesID uuid.UUID, reason *string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", string(domain.StatusCancelled)).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"tenant_id": tenantID,
			"series_id": seriesID,
			"status":    string(domain.StatusScheduled),
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CancelScheduledBySeries - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CancelScheduledBySeries - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelScheduledBySeries - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// execAffectingOne выполняет UPDATE одного занятия со статусным условием.
// Ноль строк: если занятие существует - ErrStatusChanged, иначе ErrOccurrenceNotFound.
func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}, tenantID, id int64) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected > 0 {
		return nil
	}

	if _, err := r.GetByID(ctx, tenantID, id); err != nil {
		if errors.Is(err, ErrOccurrenceNotFound) {
			return ErrOccurrenceNotFound
		}
		return fmt.Errorf("%s - check existence: %w", op, err)
	}
	return ErrStatusChanged
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanOccurrence сканирует строку в занятие; extra - дополнительные колонки после основных
func scanOccurrence(row rowScanner, extra ...interface{}) (*domain.Occurrence, error) {
	var (
		occ         domain.Occurrence
		seriesID    uuid.NullUUID
		price       decimal.NullDecimal
		sport       string
		status      string
		cancelledAt sql.NullTime
		createdAt   sql.NullTime
		updatedAt   sql.NullTime
	)

	dest := []interface{}{
		&occ.ID,
		&occ.TenantID,
		&occ.ClientID,
		&occ.AcademyID,
		&occ.CourtID,
		&seriesID,
		&occ.Date,
		&occ.StartTime,
		&occ.DurationMinutes,
		&sport,
		&occ.Participants,
		&status,
		&price,
		&occ.IdempotencyKey,
		&occ.Notes,
		&occ.CancellationReason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	}

	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	occ.Sport = domain.SportType(sport)
	occ.Status = domain.OccurrenceStatus(status)
	if seriesID.Valid {
		id := seriesID.UUID
		occ.SeriesID = &id
	}
	if price.Valid {
		amount := price.Decimal
		occ.Price = &amount
	}
	if cancelledAt.Valid {
		t := cancelledAt.Time
		occ.CancelledAt = &t
	}
	occ.CreatedAt = createdAt.Time
	occ.UpdatedAt = updatedAt.Time

	return &occ, nil
}
