package cancel_booking

import "github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences/models"

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelRequest {
	return &models.CancelRequest{
		CancellationReason: r.CancellationReason,
	}
}
