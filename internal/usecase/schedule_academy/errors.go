package schedule_academy

import "errors"

var (
	// ErrInvalidDate возвращается, когда расписание начинается в прошлом
	ErrInvalidDate = errors.New("schedule_academy: start date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule_academy: invalid input data")

	// ErrInternal возвращается, когда расписание не удалось даже начать
	ErrInternal = errors.New("schedule_academy: internal error")
)
