package cancel_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-CoachScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences"
)

const (
	msgInvalidTenantID     = "некорректный ID тренера"
	msgInvalidOccurrenceID = "некорректный ID занятия"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidParams       = "некорректная причина отмены"
	msgNotFound            = "занятие не найдено"
	msgCannotCancel        = "занятие не может быть отменено"
)

type Handler struct {
	service OccurrenceService
	logger  Logger
}

func NewHandler(service OccurrenceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/tenants/{tenantId}/bookings/{occurrenceId}/cancel
// Отмена освобождает слот: его снова можно забронировать.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("PATCH /tenants/{id}/bookings/{id}/cancel - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	occurrenceID, err := handlers.PathInt64(r, "occurrenceId")
	if err != nil {
		h.logger.Warn("PATCH /tenants/{id}/bookings/{id}/cancel - Invalid occurrence ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOccurrenceID)
		return
	}

	// Тело необязательно
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /tenants/{id}/bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	occurrence, err := h.service.Cancel(r.Context(), tenantID, occurrenceID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, occurrences.ErrOccurrenceNotFound):
			h.logger.Warn("PATCH /tenants/{id}/bookings/{id}/cancel - Occurrence not found: occurrence_id=%d", occurrenceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, occurrences.ErrCannotCancel):
			h.logger.Warn("PATCH /tenants/{id}/bookings/{id}/cancel - Cannot cancel: occurrence_id=%d", occurrenceID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, occurrences.ErrInvalidInput):
			h.logger.Warn("PATCH /tenants/{id}/bookings/{id}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("PATCH /tenants/{id}/bookings/{id}/cancel - Failed to cancel occurrence: occurrence_id=%d, error=%v",
				occurrenceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tenants/{id}/bookings/{id}/cancel - Occurrence cancelled successfully: occurrence_id=%d", occurrenceID)
	handlers.RespondJSON(w, http.StatusOK, occurrence)
}
