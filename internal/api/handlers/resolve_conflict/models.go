package resolve_conflict

import (
	"github.com/aldarwish/Studio-BookingService/internal/domain"
	serviceModels "github.com/aldarwish/Studio-BookingService/internal/service/bookings/models"
	"github.com/aldarwish/Studio-BookingService/internal/service/conflicts/models"
)

// ResolveConflictRequest HTTP request model
type ResolveConflictRequest struct {
	Decision string `json:"decision"` // accept | reject
}

// ResolveConflictResponse HTTP response model
// alreadyResolved = true - информационный итог повторного запроса,
// состояние записи не менялось
type ResolveConflictResponse struct {
	AlreadyResolved bool                           `json:"alreadyResolved"`
	Status          string                         `json:"status"`
	Booking         *serviceModels.BookingResponse `json:"booking,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ResolveConflictRequest) ToServiceRequest(resolvedBy domain.Identity) *models.ResolveRequest {
	return &models.ResolveRequest{
		Decision:   domain.Decision(r.Decision),
		ResolvedBy: resolvedBy,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ResolveResponse) *ResolveConflictResponse {
	out := &ResolveConflictResponse{
		AlreadyResolved: resp.AlreadyResolved,
		Status:          string(resp.Status),
	}

	if resp.Booking != nil {
		out.Booking = serviceModels.FromDomainBooking(resp.Booking)
	}

	return out
}
