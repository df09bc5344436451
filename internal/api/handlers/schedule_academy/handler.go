package schedule_academy

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoachScheduling/internal/api/handlers"
	scheduleAcademy "github.com/m04kA/SMC-CoachScheduling/internal/usecase/schedule_academy"
)

const (
	msgInvalidTenantID    = "некорректный ID тренера"
	msgInvalidAcademyID   = "некорректный ID академии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidParams      = "некорректное расписание академии"
	msgStartDateInPast    = "дата начала расписания уже прошла"
)

type Handler struct {
	useCase ScheduleAcademyUseCase
	logger  Logger
}

func NewHandler(useCase ScheduleAcademyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tenants/{tenantId}/academies/{academyId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("POST /tenants/{id}/academies/{id}/schedule - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	academyID, err := handlers.PathInt64(r, "academyId")
	if err != nil {
		h.logger.Warn("POST /tenants/{id}/academies/{id}/schedule - Invalid academy ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAcademyID)
		return
	}

	var req ScheduleAcademyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tenants/{id}/academies/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID, academyID)
	if err != nil {
		h.logger.Warn("POST /tenants/{id}/academies/{id}/schedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleAcademy.ErrInvalidInput):
			h.logger.Warn("POST /tenants/{id}/academies/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, scheduleAcademy.ErrInvalidDate):
			h.logger.Warn("POST /tenants/{id}/academies/{id}/schedule - Start date in past: academy_id=%d", academyID)
			handlers.RespondBadRequest(w, msgStartDateInPast)

		default:
			h.logger.Error("POST /tenants/{id}/academies/{id}/schedule - Failed to schedule: tenant_id=%d, academy_id=%d, error=%v",
				tenantID, academyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tenants/{id}/academies/{id}/schedule - Schedule processed: academy_id=%d, created=%d, skipped=%d, failed=%d",
		academyID, result.Result.Created, result.Result.Skipped, result.Result.Failed)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(academyID, result))
}
