package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoachScheduling/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-CoachScheduling/internal/usecase/create_booking"
)

const (
	msgInvalidTenantID       = "некорректный ID тренера"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDateOrTime     = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidParams         = "некорректные параметры занятия"
	msgInvalidBookingDate    = "дата занятия уже прошла"
	msgInvalidTimeSlot       = "выбранное время не входит в расписание тренера"
	msgSlotNotAvailable      = "выбранный временной слот занят"
	msgSlotNoLongerAvailable = "слот только что заняли, выберите другое время"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tenants/{tenantId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := handlers.PathInt64(r, "tenantId")
	if err != nil {
		h.logger.Warn("POST /tenants/{id}/bookings - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tenants/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /tenants/{id}/bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNoLongerAvailable):
			h.logger.Warn("POST /tenants/{id}/bookings - Slot taken concurrently: tenant_id=%d, client_id=%d", tenantID, req.ClientID)
			handlers.RespondConflict(w, msgSlotNoLongerAvailable)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /tenants/{id}/bookings - Slot not available: tenant_id=%d, client_id=%d", tenantID, req.ClientID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /tenants/{id}/bookings - Invalid time slot: tenant_id=%d, client_id=%d", tenantID, req.ClientID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /tenants/{id}/bookings - Invalid booking date: tenant_id=%d, client_id=%d", tenantID, req.ClientID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /tenants/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /tenants/{id}/bookings - Failed to create booking: tenant_id=%d, client_id=%d, error=%v",
				tenantID, req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if !result.Created {
		status = http.StatusOK
	}

	h.logger.Info("POST /tenants/{id}/bookings - Booking created successfully: occurrence_id=%d, tenant_id=%d, client_id=%d",
		result.Occurrence.ID, tenantID, req.ClientID)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
