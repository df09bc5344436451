package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoachScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences/models"
)

const (
	msgInvalidTenantID     = "некорректный ID тренера"
	msgInvalidOccurrenceID = "некорректный ID занятия"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidStatus       = "некорректный статус, ожидается scheduled, completed, no_show или cancelled"
	msgNotFound            = "занятие не найдено"
	msgInvalidTransition   = "переход в этот статус невозможен"
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

// Handle PATCH /api/v1/tenants/{tenantId}/bookings/{occurrenceId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("PATCH /tenants/{id}/bookings/{id}/status - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	occurrenceID, err := handlers.PathInt64(r, "occurrenceId")
	if err != nil {
		h.logger.Warn("PATCH /tenants/{id}/bookings/{id}/status - Invalid occurrence ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOccurrenceID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tenants/{id}/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	occurrence, err := h.service.UpdateStatus(r.Context(), tenantID, occurrenceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, occurrences.ErrOccurrenceNotFound):
			h.logger.Warn("PATCH /tenants/{id}/bookings/{id}/status - Occurrence not found: occurrence_id=%d", occurrenceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, occurrences.ErrInvalidInput):
			h.logger.Warn("PATCH /tenants/{id}/bookings/{id}/status - Invalid status: %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, occurrences.ErrInvalidTransition), errors.Is(err, occurrences.ErrCannotCancel):
			h.logger.Warn("PATCH /tenants/{id}/bookings/{id}/status - Invalid transition: occurrence_id=%d, error=%v", occurrenceID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /tenants/{id}/bookings/{id}/status - Failed to update status: occurrence_id=%d, error=%v",
				occurrenceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tenants/{id}/bookings/{id}/status - Status updated successfully: occurrence_id=%d, status=%s",
		occurrenceID, occurrence.Status)
	handlers.RespondJSON(w, http.StatusOK, occurrence)
}
