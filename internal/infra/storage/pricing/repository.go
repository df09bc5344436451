package pricing

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	"github.com/m04kA/SMC-CoachScheduling/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachScheduling/pkg/psqlbuilder"
)

// Repository репозиторий тарифной сетки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тарифов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetTable собирает тарифную сетку тенанта.
// Порядок слотов внутри вида спорта - порядок объявления (position), от него зависит
// выбор слота, когда время не указано.
func (r *Repository) GetTable(ctx context.Context, tenantID int64) (domain.PricingTable, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"sport",
		"tier",
		"start_time",
		"end_time",
		"base_cost",
		"prices_by_duration",
	).
		From("price_slots").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("sport ASC", "position ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTable - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	table := make(domain.PricingTable)

	for rows.Next() {
		var (
			sport, tier string
			slot        domain.PriceSlot
			baseCost    decimal.NullDecimal
			rawPrices   []byte
		)

		err := rows.Scan(
			&sport,
			&tier,
			&slot.StartTime,
			&slot.EndTime,
			&baseCost,
			&rawPrices,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetTable - scan row: %v", ErrScanRow, err)
		}

		sportType, err := domain.ParseSportType(sport)
		if err != nil {
			// Строки неизвестных видов спорта не участвуют в расчёте
			continue
		}

		slot.Tier, err = domain.ParseDemandTier(tier)
		if err != nil {
			return nil, fmt.Errorf("%w: GetTable - sport %s: %v", ErrScanRow, sport, err)
		}
		if baseCost.Valid {
			cost := baseCost.Decimal
			slot.BaseCost = &cost
		}

		slot.PricesByDuration, err = DecodePricesByDuration(rawPrices)
		if err != nil {
			return nil, fmt.Errorf("GetTable - sport %s: %w", sport, err)
		}

		sportPricing := table[sportType]
		sportPricing.Slots = append(sportPricing.Slots, slot)
		table[sportType] = sportPricing
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTable - rows error: %w", ErrScanRow, err)
	}

	return table, nil
}
