package create_availability_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoachScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/availability"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/availability/models"
)

const (
	msgInvalidTenantID    = "некорректный ID тренера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBlock       = "некорректный блок доступности"
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

// Handle POST /api/v1/tenants/{tenantId}/availability/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("POST /tenants/{id}/availability/blocks - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	var req models.CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tenants/{id}/availability/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	block, err := h.service.CreateBlock(r.Context(), tenantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /tenants/{id}/availability/blocks - Invalid block: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondUnprocessable(w, msgInvalidBlock+": "+err.Error())

		default:
			h.logger.Error("POST /tenants/{id}/availability/blocks - Failed to create block: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tenants/{id}/availability/blocks - Block created successfully: tenant_id=%d, block_id=%d", tenantID, block.ID)
	handlers.RespondJSON(w, http.StatusCreated, block)
}
