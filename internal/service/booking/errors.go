package booking

import "errors"

var (
	// ErrSlotNoLongerAvailable возвращается, когда слот заняли между чтением и записью.
	// Повторяется заново с генерации слотов.
	ErrSlotNoLongerAvailable = errors.New("slot no longer available")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("booking writer: internal error")
)
