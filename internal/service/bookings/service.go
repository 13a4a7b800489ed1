package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	bookingRepo "github.com/aldarwish/Studio-BookingService/internal/infra/storage/booking"
	"github.com/aldarwish/Studio-BookingService/internal/service/bookings/models"
)

// Service сервис чтения и администрирования бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetDaySchedule возвращает расписание одного дня (без отмененных)
func (s *Service) GetDaySchedule(ctx context.Context, date time.Time) (*models.DayScheduleResponse, error) {
	s.logger.Info("GetDaySchedule: fetching schedule for %s", date.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.GetForDate(ctx, date, nil)
	if err != nil {
		s.logger.Error("GetDaySchedule: repository error for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDaySchedule - repository error: %v", ErrInternal, err)
	}

	return &models.DayScheduleResponse{
		Date:     date.Format(domain.DateFormat),
		Bookings: models.FromDomainBookingList(bookings),
		Total:    len(bookings),
	}, nil
}

// Cancel отменяет бронирование с указанием причины
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by %s", bookingID, req.CancelledBy.Name)

	if strings.TrimSpace(req.CancellationReason) == "" {
		return fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}
	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled", bookingID)
	return nil
}

// Approve решение менеджера по inquiry-бронированию: подтвердить или отменить
// Статусы confirmed и cancelled терминальны - повторного решения нет
func (s *Service) Approve(ctx context.Context, bookingID int64, req *models.ApproveBookingRequest) error {
	s.logger.Info("Approve: booking id=%d, confirm=%t, by=%s", bookingID, req.Confirm, req.ApprovedBy.Name)

	if !req.ApprovedBy.IsManager() {
		s.logger.Warn("Approve: access denied for %s (rank=%s)", req.ApprovedBy.Name, req.ApprovedBy.Rank)
		return ErrAccessDenied
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Approve: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Approve: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Approve - repository error: %v", ErrInternal, err)
	}

	if !booking.IsInquiry() {
		s.logger.Warn("Approve: booking id=%d is not an inquiry, status=%s", bookingID, booking.Status)
		return ErrNotInquiry
	}

	if req.Confirm {
		err = s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusConfirmed)
	} else {
		err = s.bookingRepo.Cancel(ctx, bookingID, "inquiry rejected by manager")
	}
	if err != nil {
		s.logger.Error("Approve: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Approve - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Approve: booking id=%d resolved, confirm=%t", bookingID, req.Confirm)
	return nil
}
