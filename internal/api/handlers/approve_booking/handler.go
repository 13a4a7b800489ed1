package approve_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aldarwish/Studio-BookingService/internal/api/handlers"
	"github.com/aldarwish/Studio-BookingService/internal/api/middleware"
	"github.com/aldarwish/Studio-BookingService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgNotFound           = "бронирование не найдено"
	msgNotInquiry         = "бронирование не находится в статусе inquiry"
	msgForbidden          = "доступ запрещен"
	msgMissingIdentity    = "не удалось определить оператора"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/approve
// Только для менеджеров: решение по inquiry-бронированию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId}/approve - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	operator, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/%d/approve - Missing operator identity", bookingID)
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req ApproveBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d/approve - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Approve(r.Context(), bookingID, req.ToServiceRequest(operator))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/%d/approve - Access denied: operator=%s", bookingID, operator.Name)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d/approve - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrNotInquiry):
			h.logger.Warn("PATCH /bookings/%d/approve - Not an inquiry", bookingID)
			handlers.RespondConflict(w, msgNotInquiry)

		default:
			h.logger.Error("PATCH /bookings/%d/approve - Failed to approve: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/approve - Decision applied: confirm=%t, manager=%s",
		bookingID, req.Confirm, operator.Name)
	w.WriteHeader(http.StatusNoContent)
}
