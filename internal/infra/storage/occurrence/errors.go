package occurrence

import "errors"

var (
	// ErrOccurrenceNotFound возвращается, когда занятие не найдено
	ErrOccurrenceNotFound = errors.New("occurrence.repository: occurrence not found")

	// ErrStatusChanged возвращается, когда занятие есть, но его статус уже не допускает изменения
	ErrStatusChanged = errors.New("occurrence.repository: occurrence status does not allow the update")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("occurrence.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("occurrence.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("occurrence.repository: failed to scan row")
)
