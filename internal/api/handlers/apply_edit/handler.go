package apply_edit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aldarwish/Studio-BookingService/internal/api/handlers"
	"github.com/aldarwish/Studio-BookingService/internal/api/middleware"
	applyEdit "github.com/aldarwish/Studio-BookingService/internal/usecase/apply_edit"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidInput       = "некорректные данные запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgMissingIdentity    = "не удалось определить оператора"
)

type Handler struct {
	useCase ApplyEditUseCase
	logger  Logger
}

func NewHandler(useCase ApplyEditUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
// Проигравшая запись не возвращает ошибку: правка сохраняется как
// pending-конфликт и в ответе приходит outcome = queued
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	editor, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/%d - Missing operator identity", bookingID)
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req ApplyEditRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID, editor))
	if err != nil {
		switch {
		case errors.Is(err, applyEdit.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/%d - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, applyEdit.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		default:
			h.logger.Error("PATCH /bookings/%d - Failed to apply edit: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Outcome == applyEdit.OutcomeQueued {
		h.logger.Info("PATCH /bookings/%d - Edit queued as conflict %s", bookingID, result.ConflictID)
		handlers.RespondJSON(w, http.StatusAccepted, FromUseCaseResponse(result))
		return
	}

	h.logger.Info("PATCH /bookings/%d - Edit applied", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
