package evaluate_booking

import (
	"fmt"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Некорректный диапазон (start >= end) отклоняется здесь и до детектора не доходит
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Exclusivity.IsValid() {
		return fmt.Errorf("%w: unknown exclusivity %q", ErrInvalidInput, req.Exclusivity)
	}

	proposed := domain.TimeRange{Date: req.Date, Start: req.StartTime, End: req.EndTime}
	if err := proposed.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// toScheduled конвертирует строки бронирований в read model детектора
func toScheduled(bookings []*domain.Booking) []domain.ScheduledBooking {
	scheduled := make([]domain.ScheduledBooking, 0, len(bookings))
	for _, b := range bookings {
		scheduled = append(scheduled, domain.ScheduledBooking{
			ID:          b.ID,
			Range:       b.Range(),
			Exclusivity: b.Exclusivity,
		})
	}
	return scheduled
}
