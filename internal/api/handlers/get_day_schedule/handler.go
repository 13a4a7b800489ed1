package get_day_schedule

import (
	"net/http"
	"time"

	"github.com/aldarwish/Studio-BookingService/internal/api/handlers"
	"github.com/aldarwish/Studio-BookingService/internal/domain"
)

const (
	msgMissingDate = "параметр date обязателен"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/schedule?date=YYYY-MM-DD
// Возвращает все активные бронирования дня, отсортированные по началу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	schedule, err := h.service.GetDaySchedule(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /schedule - Failed to get schedule: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule - Schedule retrieved: date=%s, bookings=%d", dateStr, schedule.Total)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
