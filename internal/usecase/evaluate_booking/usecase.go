package evaluate_booking

import (
	"context"
	"fmt"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	"github.com/aldarwish/Studio-BookingService/internal/scheduling"
)

// UseCase use case проверки слота без создания бронирования
// Вторая фаза (создание с учетом решения оператора) - submit_booking
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет проверку предложенного интервала против расписания дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EvaluateBooking: date=%s, time=%s-%s, exclusivity=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.Exclusivity)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EvaluateBooking: validation failed: %v", err)
		return nil, err
	}

	// Снимок бронирований дня (без отмененных, без редактируемого)
	bookings, err := uc.bookingRepo.GetForDate(ctx, req.Date, req.ExcludeBookingID)
	if err != nil {
		uc.logger.Error("EvaluateBooking: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	proposed := domain.TimeRange{Date: req.Date, Start: req.StartTime, End: req.EndTime}
	verdict := scheduling.Detect(proposed, req.Exclusivity, toScheduled(bookings))

	uc.logger.Info("EvaluateBooking: verdict=%s over %d bookings", verdict.Severity, len(bookings))

	return &Response{
		Severity: verdict.Severity,
		Message:  verdict.Message,
	}, nil
}
