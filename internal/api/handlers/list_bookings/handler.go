package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoachScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences"
)

const (
	msgInvalidTenantID = "некорректный ID тренера"
	msgInvalidParams   = "некорректные параметры запроса"
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

// Handle GET /api/v1/tenants/{tenantId}/bookings
// Query params: date, seriesId, status, includeCancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/bookings - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	serviceReq, err := ToServiceRequest(
		tenantID,
		handlers.QueryString(r, "date"),
		handlers.QueryString(r, "seriesId"),
		handlers.QueryString(r, "status"),
		r.URL.Query().Get("includeCancelled"),
	)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, occurrences.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /tenants/{id}/bookings - Failed to list occurrences: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{id}/bookings - Occurrences retrieved successfully: tenant_id=%d, count=%d",
		tenantID, len(result.Occurrences))
	handlers.RespondJSON(w, http.StatusOK, result)
}
