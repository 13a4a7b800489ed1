package evaluate_booking

import (
	"errors"
	"net/http"

	"github.com/aldarwish/Studio-BookingService/internal/api/handlers"
	evaluateBooking "github.com/aldarwish/Studio-BookingService/internal/usecase/evaluate_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase EvaluateBookingUseCase
	logger  Logger
}

func NewHandler(useCase EvaluateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/evaluate
// Первая фаза двухфазного flow: только вердикт, без создания бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/evaluate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/evaluate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, evaluateBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/evaluate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /bookings/evaluate - Failed to evaluate: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/evaluate - Verdict: %s", result.Severity)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
