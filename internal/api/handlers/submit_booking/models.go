package submit_booking

import (
	"time"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	serviceModels "github.com/aldarwish/Studio-BookingService/internal/service/bookings/models"
	submitBooking "github.com/aldarwish/Studio-BookingService/internal/usecase/submit_booking"
	"github.com/aldarwish/Studio-BookingService/pkg/types"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	ClientName   string  `json:"clientName"`
	ClientPhone  string  `json:"clientPhone"`
	SessionType  string  `json:"sessionType"`
	Date         string  `json:"date"`      // "2025-06-01"
	StartTime    string  `json:"startTime"` // "18:00"
	EndTime      string  `json:"endTime"`   // "22:00"
	Exclusivity  string  `json:"exclusivity"`
	Notes        *string `json:"notes,omitempty"`
	TotalAmount  float64 `json:"totalAmount"`
	PaidAmount   float64 `json:"paidAmount"`
	DedupKey     string  `json:"dedupKey"`
	ForcePending bool    `json:"forcePending"`
}

// VerdictPayload вердикт детектора в HTTP ответе
type VerdictPayload struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// SubmitBookingResponse HTTP response model
// При конфликте без forcePending заполнен только conflict
type SubmitBookingResponse struct {
	Outcome  string                         `json:"outcome"` // created | conflict
	Booking  *serviceModels.BookingResponse `json:"booking,omitempty"`
	Conflict *VerdictPayload                `json:"conflict,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest() (*submitBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &submitBooking.Request{
		ClientName:   r.ClientName,
		ClientPhone:  r.ClientPhone,
		SessionType:  r.SessionType,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		Exclusivity:  domain.Exclusivity(r.Exclusivity),
		Notes:        r.Notes,
		TotalAmount:  r.TotalAmount,
		PaidAmount:   r.PaidAmount,
		DedupKey:     r.DedupKey,
		ForcePending: r.ForcePending,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	out := &SubmitBookingResponse{Outcome: string(resp.Outcome)}

	if resp.Booking != nil {
		out.Booking = serviceModels.FromDomainBooking(resp.Booking)
	}
	if resp.Verdict != nil {
		out.Conflict = &VerdictPayload{
			Severity: string(resp.Verdict.Severity),
			Message:  resp.Verdict.Message,
		}
	}

	return out
}
