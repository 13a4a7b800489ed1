package apply_edit

import (
	"fmt"
	"strings"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Корректность снимка (форматы даты/времени, start < end) проверяется
// отдельно при конвертации в domain.Booking
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.BaseVersion <= 0 {
		return fmt.Errorf("%w: baseVersion must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Editor.Name) == "" {
		return fmt.Errorf("%w: editor identity is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Proposed.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if req.Proposed.Notes != nil && len(*req.Proposed.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Proposed.TotalAmount < 0 || req.Proposed.PaidAmount < 0 {
		return fmt.Errorf("%w: amounts must be non-negative", ErrInvalidInput)
	}

	return nil
}
