package get_availability

import (
	"net/http"

	"github.com/m04kA/SMC-CoachScheduling/internal/api/handlers"
)

const msgInvalidTenantID = "некорректный ID тренера"

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/availability
// Пустое расписание - 200 с пустым списком блоков
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/availability - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	catalog, err := h.service.GetCatalog(r.Context(), tenantID)
	if err != nil {
		h.logger.Error("GET /tenants/{id}/availability - Failed to get availability: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tenants/{id}/availability - Availability retrieved successfully: tenant_id=%d, blocks=%d",
		tenantID, len(catalog.Blocks))
	handlers.RespondJSON(w, http.StatusOK, catalog)
}
