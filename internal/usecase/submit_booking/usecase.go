package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	bookingRepo "github.com/aldarwish/Studio-BookingService/internal/infra/storage/booking"
	"github.com/aldarwish/Studio-BookingService/internal/scheduling"
	"github.com/aldarwish/Studio-BookingService/pkg/ptr"
)

// UseCase use case создания бронирования (вторая фаза двухфазного flow)
// Детектор и запись выполняются в одной сериализуемой транзакции с блокировкой
// снимка дня - два одновременных submit-а на пересекающиеся интервалы
// сериализуются, и второй увидит бронирование первого
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Итог по вердикту детектора:
//   - None - бронирование создается в статусе confirmed;
//   - Soft/Hard без forcePending - ничего не персистится, вердикт возвращается
//     оператору для решения;
//   - Soft/Hard с forcePending - бронирование создается в статусе inquiry,
//     message вердикта сохраняется в conflict_details для супервизора.
//
// Создается ровно одна строка или ни одной; частичных записей нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: client=%s, date=%s, time=%s-%s, exclusivity=%s, force=%t",
		req.ClientName, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime,
		req.Exclusivity, req.ForcePending)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	var response *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Снимок бронирований дня с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.GetForDate(txCtx, req.Date, nil)
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		proposed := domain.TimeRange{Date: req.Date, Start: req.StartTime, End: req.EndTime}
		verdict := scheduling.Detect(proposed, req.Exclusivity, toScheduled(existing))

		// Конфликт без явного решения оператора - возвращаем вердикт, ничего не пишем
		if verdict.HasConflict() && !req.ForcePending {
			uc.logger.Warn("SubmitBooking: %s conflict, returning verdict to operator", verdict.Severity)
			response = &Response{
				Outcome: OutcomeConflict,
				Verdict: ptr.Ptr(verdict),
			}
			return nil
		}

		booking := &domain.Booking{
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			SessionType: req.SessionType,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Exclusivity: req.Exclusivity,
			Status:      domain.StatusConfirmed,
			Notes:       req.Notes,
			TotalAmount: req.TotalAmount,
			PaidAmount:  req.PaidAmount,
			DedupKey:    req.DedupKey,
		}

		if verdict.HasConflict() {
			// Оператор настоял: создаем в статусе inquiry с деталями конфликта
			booking.Status = domain.StatusInquiry
			booking.ConflictDetails = ptr.Ptr(verdict.Message)
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateDedupKey) {
				// Повтор после retryable-ошибки: возвращаем уже созданную строку
				existing, getErr := uc.bookingRepo.GetByDedupKey(txCtx, req.DedupKey)
				if getErr != nil {
					uc.logger.Error("SubmitBooking: failed to get booking by dedup key: %v", getErr)
					return fmt.Errorf("%w: failed to get booking by dedup key: %v", ErrInternal, getErr)
				}
				uc.logger.Info("SubmitBooking: dedup key %s already used, returning booking id=%d",
					req.DedupKey, existing.ID)
				response = &Response{Outcome: OutcomeCreated, Booking: existing}
				return nil
			}
			uc.logger.Error("SubmitBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		response = &Response{Outcome: OutcomeCreated, Booking: created}
		if verdict.HasConflict() {
			response.Verdict = ptr.Ptr(verdict)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if response.Outcome == OutcomeCreated {
		uc.logger.Info("SubmitBooking: created booking id=%d status=%s",
			response.Booking.ID, response.Booking.Status)
	}

	return response, nil
}
