package evaluate_booking

import (
	"context"

	evaluateBooking "github.com/aldarwish/Studio-BookingService/internal/usecase/evaluate_booking"
)

type EvaluateBookingUseCase interface {
	Execute(ctx context.Context, req *evaluateBooking.Request) (*evaluateBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
