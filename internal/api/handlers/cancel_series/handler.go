package cancel_series

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoachScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences/models"
)

const (
	msgInvalidTenantID    = "некорректный ID тренера"
	msgInvalidSeriesID    = "некорректный ID серии"
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle DELETE /api/v1/tenants/{tenantId}/series/{seriesId}
// Отменяет только ещё запланированные занятия серии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("DELETE /tenants/{id}/series/{id} - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	seriesID := mux.Vars(r)["seriesId"]

	var req models.CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("DELETE /tenants/{id}/series/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CancelSeries(r.Context(), tenantID, seriesID, &req)
	if err != nil {
		switch {
		case errors.Is(err, occurrences.ErrInvalidInput):
			h.logger.Warn("DELETE /tenants/{id}/series/{id} - Invalid series ID: %q", seriesID)
			handlers.RespondBadRequest(w, msgInvalidSeriesID)

		default:
			h.logger.Error("DELETE /tenants/{id}/series/{id} - Failed to cancel series: series_id=%s, error=%v", seriesID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tenants/{id}/series/{id} - Series cancelled: series_id=%s, cancelled=%d", seriesID, result.Cancelled)
	handlers.RespondJSON(w, http.StatusOK, result)
}
