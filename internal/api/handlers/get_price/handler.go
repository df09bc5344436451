package get_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoachScheduling/internal/api/handlers"
	getPrice "github.com/m04kA/SMC-CoachScheduling/internal/usecase/get_price"
)

const (
	msgInvalidTenantID = "некорректный ID тренера"
	msgInvalidDuration = "некорректная длительность занятия"
	msgInvalidTime     = "некорректный формат времени, ожидается HH:MM"
	msgInvalidParams   = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetPriceUseCase
	logger  Logger
}

func NewHandler(useCase GetPriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/prices
// Query params: sport, duration (required), time (HH:MM), participants (опционально)
// Цена не найдена - 200 с found=false.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/prices - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	duration, err := handlers.QueryInt(r, "duration", 0)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/prices - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	participants, err := handlers.QueryInt(r, "participants", 0)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/prices - Invalid participants: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(tenantID, r.URL.Query().Get("sport"), duration, handlers.QueryString(r, "time"), participants)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/prices - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getPrice.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/prices - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /tenants/{id}/prices - Failed to resolve price: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{id}/prices - Price resolved: tenant_id=%d, found=%t", tenantID, result.Found)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
