package cancel_booking

import (
	"github.com/aldarwish/Studio-BookingService/internal/domain"
	"github.com/aldarwish/Studio-BookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(cancelledBy domain.Identity) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		CancellationReason: r.CancellationReason,
		CancelledBy:        cancelledBy,
	}
}
