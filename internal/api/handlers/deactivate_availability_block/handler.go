package deactivate_availability_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoachScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/availability"
)

const (
	msgInvalidTenantID = "некорректный ID тренера"
	msgInvalidBlockID  = "некорректный ID блока"
	msgNotFound        = "блок доступности не найден"
)

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

// Handle DELETE /api/v1/tenants/{tenantId}/availability/blocks/{blockId}
// Блок отключается, уже созданные по нему занятия остаются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("DELETE /tenants/{id}/availability/blocks/{id} - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	blockID, err := handlers.PathInt64(r, "blockId")
	if err != nil {
		h.logger.Warn("DELETE /tenants/{id}/availability/blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.DeactivateBlock(r.Context(), tenantID, blockID); err != nil {
		switch {
		case errors.Is(err, availability.ErrBlockNotFound):
			h.logger.Warn("DELETE /tenants/{id}/availability/blocks/{id} - Block not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /tenants/{id}/availability/blocks/{id} - Failed to deactivate block: block_id=%d, error=%v",
				blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tenants/{id}/availability/blocks/{id} - Block deactivated: tenant_id=%d, block_id=%d", tenantID, blockID)
	w.WriteHeader(http.StatusNoContent)
}
