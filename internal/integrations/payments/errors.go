package payments

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("payments client: invalid response")

	// ErrRejected возвращается, когда сервис платежей отклонил запрос (4xx)
	ErrRejected = errors.New("payments client: request rejected")

	// ErrPublish возвращается, когда событие не удалось отправить в Kafka
	ErrPublish = errors.New("payments publisher: failed to publish event")
)
