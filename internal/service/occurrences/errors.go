package occurrences

import "errors"

var (
	// ErrOccurrenceNotFound возвращается, когда занятие не найдено
	ErrOccurrenceNotFound = errors.New("occurrence not found")

	// ErrCannotCancel возвращается, когда занятие не может быть отменено
	ErrCannotCancel = errors.New("occurrence cannot be cancelled")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
