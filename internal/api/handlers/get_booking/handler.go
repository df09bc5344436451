package get_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoachScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences"
)

const (
	msgInvalidTenantID     = "некорректный ID тренера"
	msgInvalidOccurrenceID = "некорректный ID занятия"
	msgNotFound            = "занятие не найдено"
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

// Handle GET /api/v1/tenants/{tenantId}/bookings/{occurrenceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/bookings/{id} - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	occurrenceID, err := handlers.PathInt64(r, "occurrenceId")
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/bookings/{id} - Invalid occurrence ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOccurrenceID)
		return
	}

	occurrence, err := h.service.GetByID(r.Context(), tenantID, occurrenceID)
	if err != nil {
		switch {
		case errors.Is(err, occurrences.ErrOccurrenceNotFound):
			h.logger.Warn("GET /tenants/{id}/bookings/{id} - Occurrence not found: occurrence_id=%d", occurrenceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /tenants/{id}/bookings/{id} - Failed to get occurrence: occurrence_id=%d, error=%v",
				occurrenceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{id}/bookings/{id} - Occurrence retrieved successfully: occurrence_id=%d", occurrenceID)
	handlers.RespondJSON(w, http.StatusOK, occurrence)
}
