package get_client_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-CoachScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences/models"
)

const (
	msgInvalidTenantID = "некорректный ID тренера"
	msgInvalidClientID = "некорректный ID клиента"
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

// Handle GET /api/v1/tenants/{tenantId}/clients/{clientId}/bookings
// История занятий клиента у тренера, включая отменённые
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/clients/{id}/bookings - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	clientID, err := handlers.PathInt64(r, "clientId")
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/clients/{id}/bookings - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListRequest{
		TenantID:         tenantID,
		ClientID:         &clientID,
		IncludeCancelled: true,
	})
	if err != nil {
		h.logger.Error("GET /tenants/{id}/clients/{id}/bookings - Failed to get occurrences: client_id=%d, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tenants/{id}/clients/{id}/bookings - Occurrences retrieved successfully: client_id=%d, count=%d",
		clientID, len(result.Occurrences))
	handlers.RespondJSON(w, http.StatusOK, result)
}
