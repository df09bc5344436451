package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("get_available_slots: date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
