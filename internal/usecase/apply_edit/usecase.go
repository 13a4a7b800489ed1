package apply_edit

import (
	"context"
	"errors"
	"fmt"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	bookingRepo "github.com/aldarwish/Studio-BookingService/internal/infra/storage/booking"
	"github.com/aldarwish/Studio-BookingService/pkg/ptr"
)

// UseCase use case применения правки с оптимистичной блокировкой
//
// Блокировок на чтение нет: два оператора могут редактировать одно
// бронирование одновременно. Расхождение ловится одним атомарным
// compare-and-write по колонке version; проигравшая запись не теряется,
// а становится durable-записью о конфликте
type UseCase struct {
	bookingRepo  BookingRepository
	conflictRepo ConflictRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	conflictRepo ConflictRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		conflictRepo: conflictRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute применяет правку либо сохраняет её как pending-конфликт
// Каждая расходящаяся правка становится отдельной записью: вторая правка
// при уже существующем pending-конфликте встает в очередь за первой, слияния нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyEdit: booking=%d, baseVersion=%d, editor=%s",
		req.BookingID, req.BaseVersion, req.Editor.Name)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApplyEdit: validation failed: %v", err)
		return nil, err
	}

	upd, err := req.Proposed.ToBooking()
	if err != nil {
		uc.logger.Warn("ApplyEdit: invalid proposed data: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var response *Response

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		updated, err := uc.bookingRepo.ConditionalUpdate(txCtx, req.BookingID, req.BaseVersion, upd)
		if err == nil {
			response = &Response{Outcome: OutcomeApplied, Booking: updated}
			return nil
		}

		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ApplyEdit: booking id=%d not found", req.BookingID)
			return ErrBookingNotFound
		}

		if !errors.Is(err, bookingRepo.ErrStaleVersion) {
			uc.logger.Error("ApplyEdit: conditional update failed: %v", err)
			return fmt.Errorf("%w: conditional update failed: %v", ErrInternal, err)
		}

		// Версия ушла вперед: сохраняем проигравшую правку как конфликт
		record, err := uc.conflictRepo.Create(txCtx, &domain.ConflictRecord{
			BookingID:    req.BookingID,
			ProposedData: req.Proposed,
			ProposedBy:   req.Editor,
		})
		if err != nil {
			uc.logger.Error("ApplyEdit: failed to create conflict record: %v", err)
			return fmt.Errorf("%w: failed to create conflict record: %v", ErrInternal, err)
		}

		uc.logger.Warn("ApplyEdit: stale version for booking=%d (base=%d), stored conflict %s",
			req.BookingID, req.BaseVersion, record.ID)

		response = &Response{Outcome: OutcomeQueued, ConflictID: ptr.Ptr(record.ID)}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if response.Outcome == OutcomeApplied {
		uc.logger.Info("ApplyEdit: applied edit to booking=%d, version=%d",
			req.BookingID, response.Booking.Version)
	}

	return response, nil
}
