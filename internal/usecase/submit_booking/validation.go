package submit_booking

import (
	"fmt"
	"strings"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// ValidationError отклоняется здесь; до детектора доходят только корректные диапазоны
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName exceeds %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if len(req.SessionType) > domain.MaxSessionTypeLength {
		return fmt.Errorf("%w: sessionType exceeds %d characters", ErrInvalidInput, domain.MaxSessionTypeLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Exclusivity.IsValid() {
		return fmt.Errorf("%w: unknown exclusivity %q", ErrInvalidInput, req.Exclusivity)
	}

	if req.TotalAmount < 0 || req.PaidAmount < 0 {
		return fmt.Errorf("%w: amounts must be non-negative", ErrInvalidInput)
	}

	if strings.TrimSpace(req.DedupKey) == "" {
		return fmt.Errorf("%w: dedupKey is required", ErrInvalidInput)
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
