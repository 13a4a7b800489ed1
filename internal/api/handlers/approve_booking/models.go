package approve_booking

import (
	"github.com/aldarwish/Studio-BookingService/internal/domain"
	"github.com/aldarwish/Studio-BookingService/internal/service/bookings/models"
)

// ApproveBookingRequest HTTP request model
// confirm: true - перевести inquiry в confirmed, false - отклонить
type ApproveBookingRequest struct {
	Confirm bool `json:"confirm"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ApproveBookingRequest) ToServiceRequest(approvedBy domain.Identity) *models.ApproveBookingRequest {
	return &models.ApproveBookingRequest{
		Confirm:    r.Confirm,
		ApprovedBy: approvedBy,
	}
}
