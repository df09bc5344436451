package create_recurring_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoachScheduling/internal/api/handlers"
	createRecurring "github.com/m04kA/SMC-CoachScheduling/internal/usecase/create_recurring_booking"
)

const (
	msgInvalidTenantID    = "некорректный ID тренера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidParams      = "некорректные параметры серии"
	msgStartDateInPast    = "дата начала серии уже прошла"
)

type Handler struct {
	useCase CreateRecurringBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateRecurringBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tenants/{tenantId}/recurring-bookings
// Частичный успех - 201 с количеством созданных, пропущенных и неудачных дат.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("POST /tenants/{id}/recurring-bookings - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	var req CreateRecurringBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tenants/{id}/recurring-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /tenants/{id}/recurring-bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createRecurring.ErrInvalidInput):
			h.logger.Warn("POST /tenants/{id}/recurring-bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, createRecurring.ErrInvalidDate):
			h.logger.Warn("POST /tenants/{id}/recurring-bookings - Start date in past: tenant_id=%d", tenantID)
			handlers.RespondBadRequest(w, msgStartDateInPast)

		default:
			h.logger.Error("POST /tenants/{id}/recurring-bookings - Failed to create series: tenant_id=%d, client_id=%d, error=%v",
				tenantID, req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tenants/{id}/recurring-bookings - Series processed: tenant_id=%d, client_id=%d, created=%d, skipped=%d, failed=%d",
		tenantID, req.ClientID, result.Result.Created, result.Result.Skipped, result.Result.Failed)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
