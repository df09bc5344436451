package availability

import "errors"

var (
	// ErrBlockNotFound возвращается, когда блок доступности не найден
	ErrBlockNotFound = errors.New("availability block not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
