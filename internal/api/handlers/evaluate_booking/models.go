package evaluate_booking

import (
	"time"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	evaluateBooking "github.com/aldarwish/Studio-BookingService/internal/usecase/evaluate_booking"
	"github.com/aldarwish/Studio-BookingService/pkg/types"
)

// EvaluateRequest HTTP request model
type EvaluateRequest struct {
	Date             string `json:"date"`      // "2025-06-01"
	StartTime        string `json:"startTime"` // "18:00"
	EndTime          string `json:"endTime"`   // "22:00"
	Exclusivity      string `json:"exclusivity"`
	ExcludeBookingID *int64 `json:"excludeBookingId,omitempty"`
}

// VerdictResponse HTTP response model
type VerdictResponse struct {
	Severity string `json:"severity"`
	Message  string `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EvaluateRequest) ToUseCaseRequest() (*evaluateBooking.Request, error) {
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

	return &evaluateBooking.Request{
		Date:             date,
		StartTime:        startTime,
		EndTime:          endTime,
		Exclusivity:      domain.Exclusivity(r.Exclusivity),
		ExcludeBookingID: r.ExcludeBookingID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *evaluateBooking.Response) *VerdictResponse {
	return &VerdictResponse{
		Severity: string(resp.Severity),
		Message:  resp.Message,
	}
}
