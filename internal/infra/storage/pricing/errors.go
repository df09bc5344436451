package pricing

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pricing.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pricing.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pricing.repository: failed to scan row")

	// ErrInvalidPrices возвращается, когда prices_by_duration не удаётся разобрать
	ErrInvalidPrices = errors.New("pricing.repository: invalid prices_by_duration")
)
