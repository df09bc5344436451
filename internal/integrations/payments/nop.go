package payments

import "context"

// Nop ничего не отправляет (payments.transport = "none")
type Nop struct{}

// NotifyPaymentRequired ничего не делает
func (Nop) NotifyPaymentRequired(context.Context, PaymentRequest) error {
	return nil
}
