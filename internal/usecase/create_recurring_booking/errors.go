package create_recurring_booking

import "errors"

var (
	// ErrInvalidDate возвращается, когда серия начинается в прошлом
	ErrInvalidDate = errors.New("create_recurring_booking: start date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_recurring_booking: invalid input data")

	// ErrInternal возвращается, когда серию не удалось даже начать
	ErrInternal = errors.New("create_recurring_booking: internal error")
)

// Причины пропуска даты
const (
	reasonOutsideAvailability = "outside availability"
	reasonSlotTaken           = "slot is taken"
	reasonAlreadyExists       = "already exists"
	reasonStorageError        = "storage error"
)
