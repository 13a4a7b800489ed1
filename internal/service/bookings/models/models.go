package models

import (
	"time"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
)

// BookingResponse представление бронирования для API
type BookingResponse struct {
	ID              int64   `json:"id"`
	ClientName      string  `json:"clientName"`
	ClientPhone     string  `json:"clientPhone"`
	SessionType     string  `json:"sessionType"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Exclusivity     string  `json:"exclusivity"`
	Status          string  `json:"status"`
	ConflictDetails *string `json:"conflictDetails,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	TotalAmount     float64 `json:"totalAmount"`
	PaidAmount      float64 `json:"paidAmount"`
	Version         int64   `json:"version"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// DayScheduleResponse расписание одного дня
type DayScheduleResponse struct {
	Date     string             `json:"date"`
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string
	CancelledBy        domain.Identity
}

// ApproveBookingRequest решение менеджера по inquiry-бронированию
type ApproveBookingRequest struct {
	// Confirm true - подтвердить, false - отменить
	Confirm    bool
	ApprovedBy domain.Identity
}

// FromDomainBooking конвертирует domain-бронирование в response-модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:              b.ID,
		ClientName:      b.ClientName,
		ClientPhone:     b.ClientPhone,
		SessionType:     b.SessionType,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		Exclusivity:     string(b.Exclusivity),
		Status:          string(b.Status),
		ConflictDetails: b.ConflictDetails,
		Notes:           b.Notes,
		TotalAmount:     b.TotalAmount,
		PaidAmount:      b.PaidAmount,
		Version:         b.Version,

		CancellationReason: b.CancellationReason,

		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList конвертирует список domain-бронирований
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	responses := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, FromDomainBooking(b))
	}
	return responses
}
