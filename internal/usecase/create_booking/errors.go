package create_booking

import "errors"

var (
	// ErrInvalidTimeSlot возвращается, когда время не входит в расписание тренера
	ErrInvalidTimeSlot = errors.New("create_booking: requested time is outside availability")

	// ErrSlotNotAvailable возвращается, когда слот уже занят на момент запроса
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrSlotNoLongerAvailable возвращается, когда слот заняли между проверкой и записью
	ErrSlotNoLongerAvailable = errors.New("create_booking: slot no longer available")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("create_booking: date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
