package conflicts

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	bookingRepo "github.com/aldarwish/Studio-BookingService/internal/infra/storage/booking"
	conflictRepo "github.com/aldarwish/Studio-BookingService/internal/infra/storage/conflict"
	"github.com/aldarwish/Studio-BookingService/internal/service/conflicts/models"
)

// Service сервис разрешения конфликтов редактирования
// Единственный владелец переходов ConflictRecord.status
type Service struct {
	conflictRepo ConflictRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса конфликтов
func NewService(
	conflictRepo ConflictRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		conflictRepo: conflictRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// ListPending возвращает все открытые конфликты, старые первыми
// Для каждой записи считается дифф с текущей строкой бронирования -
// исключительно для отображения оператору
func (s *Service) ListPending(ctx context.Context) (*models.ConflictListResponse, error) {
	s.logger.Info("ListPending: fetching open conflicts")

	records, err := s.conflictRepo.ListPending(ctx)
	if err != nil {
		s.logger.Error("ListPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPending - repository error: %v", ErrInternal, err)
	}

	conflicts := make([]*models.ConflictResponse, 0, len(records))
	for _, record := range records {
		resp := models.FromDomainConflict(record)

		current, err := s.bookingRepo.GetByID(ctx, record.BookingID)
		switch {
		case err == nil:
			resp.Diff = diffSnapshot(current, record.ProposedData)
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			resp.TargetMissing = true
		default:
			s.logger.Error("ListPending: failed to get booking id=%d: %v", record.BookingID, err)
			return nil, fmt.Errorf("%w: ListPending - failed to get booking: %v", ErrInternal, err)
		}

		conflicts = append(conflicts, resp)
	}

	s.logger.Info("ListPending: %d open conflicts", len(conflicts))
	return &models.ConflictListResponse{Conflicts: conflicts, Total: len(conflicts)}, nil
}

// Resolve применяет решение супервизора к конфликту
//
//   - Accept: строка бронирования перезаписывается снимком целиком, затем
//     запись помечается accepted - оба действия в одной транзакции;
//   - Reject: бронирование не трогается, запись помечается rejected;
//   - запись уже решена - идемпотентный ответ AlreadyResolved без мутаций;
//   - Accept по удаленному бронированию - ErrStaleTarget, запись остается pending.
//
// Решение окончательно: переоткрытия нет, корректировка - новая правка
// через обычный путь apply_edit
func (s *Service) Resolve(ctx context.Context, conflictID uuid.UUID, req *models.ResolveRequest) (*models.ResolveResponse, error) {
	s.logger.Info("Resolve: conflict=%s, decision=%s, by=%s", conflictID, req.Decision, req.ResolvedBy.Name)

	if !req.Decision.IsValid() {
		s.logger.Warn("Resolve: invalid decision %q", req.Decision)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDecision, req.Decision)
	}

	if !req.ResolvedBy.IsManager() {
		s.logger.Warn("Resolve: access denied for %s (rank=%s)", req.ResolvedBy.Name, req.ResolvedBy.Rank)
		return nil, ErrAccessDenied
	}

	var response *models.ResolveResponse

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// FOR UPDATE: одновременные resolve одного конфликта сериализуются здесь
		record, err := s.conflictRepo.GetByID(txCtx, conflictID)
		if err != nil {
			if errors.Is(err, conflictRepo.ErrConflictNotFound) {
				return ErrConflictNotFound
			}
			return fmt.Errorf("%w: Resolve - failed to get record: %v", ErrInternal, err)
		}

		if !record.IsPending() {
			s.logger.Info("Resolve: conflict %s already resolved (%s)", conflictID, record.Status)
			response = &models.ResolveResponse{AlreadyResolved: true, Status: record.Status}
			return nil
		}

		switch req.Decision {
		case domain.DecisionAccept:
			upd, err := record.ProposedData.ToBooking()
			if err != nil {
				return fmt.Errorf("%w: Resolve - corrupt proposed data: %v", ErrInternal, err)
			}

			booking, err := s.bookingRepo.Overwrite(txCtx, record.BookingID, upd)
			if err != nil {
				if errors.Is(err, bookingRepo.ErrBookingNotFound) {
					// Цель исчезла: откатываемся, запись остается pending
					return ErrStaleTarget
				}
				return fmt.Errorf("%w: Resolve - failed to overwrite booking: %v", ErrInternal, err)
			}

			if err := s.conflictRepo.MarkResolved(txCtx, conflictID, domain.ConflictAccepted, req.ResolvedBy.Name); err != nil {
				return fmt.Errorf("%w: Resolve - failed to mark accepted: %v", ErrInternal, err)
			}

			response = &models.ResolveResponse{Status: domain.ConflictAccepted, Booking: booking}

		case domain.DecisionReject:
			if err := s.conflictRepo.MarkResolved(txCtx, conflictID, domain.ConflictRejected, req.ResolvedBy.Name); err != nil {
				return fmt.Errorf("%w: Resolve - failed to mark rejected: %v", ErrInternal, err)
			}

			response = &models.ResolveResponse{Status: domain.ConflictRejected}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrStaleTarget) {
			s.logger.Warn("Resolve: target booking gone for conflict %s, record stays pending", conflictID)
		}
		return nil, err
	}

	s.logger.Info("Resolve: conflict %s -> %s", conflictID, response.Status)
	return response, nil
}

// diffSnapshot строит построчный дифф текущего бронирования и снимка
func diffSnapshot(current *domain.Booking, proposed domain.BookingSnapshot) []domain.FieldChange {
	cur := current.Snapshot()
	changes := make([]domain.FieldChange, 0)

	appendChange := func(field, curVal, propVal string) {
		if curVal != propVal {
			changes = append(changes, domain.FieldChange{Field: field, Current: curVal, Proposed: propVal})
		}
	}

	appendChange("clientName", cur.ClientName, proposed.ClientName)
	appendChange("clientPhone", cur.ClientPhone, proposed.ClientPhone)
	appendChange("sessionType", cur.SessionType, proposed.SessionType)
	appendChange("bookingDate", cur.BookingDate, proposed.BookingDate)
	appendChange("startTime", cur.StartTime, proposed.StartTime)
	appendChange("endTime", cur.EndTime, proposed.EndTime)
	appendChange("exclusivity", cur.Exclusivity, proposed.Exclusivity)
	appendChange("notes", derefOrEmpty(cur.Notes), derefOrEmpty(proposed.Notes))
	appendChange("totalAmount", formatAmount(cur.TotalAmount), formatAmount(proposed.TotalAmount))
	appendChange("paidAmount", formatAmount(cur.PaidAmount), formatAmount(proposed.PaidAmount))

	return changes
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
