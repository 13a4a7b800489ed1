package apply_edit

import (
	"github.com/aldarwish/Studio-BookingService/internal/domain"
	serviceModels "github.com/aldarwish/Studio-BookingService/internal/service/bookings/models"
	applyEdit "github.com/aldarwish/Studio-BookingService/internal/usecase/apply_edit"
)

// ApplyEditRequest HTTP request model
// baseVersion - версия, которую редактор видел последней;
// snapshot - полный набор целевых значений полей
type ApplyEditRequest struct {
	BaseVersion int64                  `json:"baseVersion"`
	Snapshot    domain.BookingSnapshot `json:"snapshot"`
}

// ApplyEditResponse HTTP response model
// При outcome = queued заполнен conflictId, при applied - booking
type ApplyEditResponse struct {
	Outcome    string                         `json:"outcome"` // applied | queued
	Booking    *serviceModels.BookingResponse `json:"booking,omitempty"`
	ConflictID *string                        `json:"conflictId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ApplyEditRequest) ToUseCaseRequest(bookingID int64, editor domain.Identity) *applyEdit.Request {
	return &applyEdit.Request{
		BookingID:   bookingID,
		BaseVersion: r.BaseVersion,
		Proposed:    r.Snapshot,
		Editor:      editor,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *applyEdit.Response) *ApplyEditResponse {
	out := &ApplyEditResponse{Outcome: string(resp.Outcome)}

	if resp.Booking != nil {
		out.Booking = serviceModels.FromDomainBooking(resp.Booking)
	}
	if resp.ConflictID != nil {
		id := resp.ConflictID.String()
		out.ConflictID = &id
	}

	return out
}
