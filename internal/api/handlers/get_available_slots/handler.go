package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoachScheduling/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-CoachScheduling/internal/usecase/get_available_slots"
)

const (
	msgInvalidTenantID     = "некорректный ID тренера"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration     = "некорректная длительность занятия"
	msgInvalidParticipants = "некорректное количество участников"
	msgInvalidParams       = "некорректные параметры запроса"
	msgDateInPast          = "дата уже прошла"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/available-slots
// Query params: date (required, YYYY-MM-DD), duration (required, минуты), sport, participants (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/available-slots - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tenants/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	duration, err := handlers.QueryInt(r, "duration", 0)
	if err != nil || duration <= 0 {
		h.logger.Warn("GET /tenants/{id}/available-slots - Invalid duration: %q", r.URL.Query().Get("duration"))
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	participants, err := handlers.QueryInt(r, "participants", 0)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/available-slots - Invalid participants: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParticipants)
		return
	}

	useCaseReq, err := ToUseCaseRequest(tenantID, dateStr, duration, r.URL.Query().Get("sport"), participants)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/available-slots - Invalid input: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /tenants/{id}/available-slots - Date in past: tenant_id=%d, date=%s", tenantID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		default:
			h.logger.Error("GET /tenants/{id}/available-slots - Failed to get slots: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{id}/available-slots - Slots retrieved successfully: tenant_id=%d, date=%s, slots_count=%d",
		tenantID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
