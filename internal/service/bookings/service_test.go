package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	bookingRepo "github.com/aldarwish/Studio-BookingService/internal/infra/storage/booking"
	"github.com/aldarwish/Studio-BookingService/internal/service/bookings/models"
	"github.com/aldarwish/Studio-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelled     map[int64]string
	statusUpdates map[int64]domain.ApprovalStatus
}

func newFakeRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	m := make(map[int64]*domain.Booking)
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeBookingRepo{
		bookings:      m,
		cancelled:     make(map[int64]string),
		statusUpdates: make(map[int64]domain.ApprovalStatus),
	}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetForDate(_ context.Context, date time.Time, _ *int64) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.BookingDate.Equal(date) && !b.IsCancelled() {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.ApprovalStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	f.cancelled[id] = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	staff   = domain.Identity{Name: "operator-a", Rank: domain.RankStaff}
	manager = domain.Identity{Name: "supervisor", Rank: domain.RankManager}
)

func booking(id int64, status domain.ApprovalStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		ClientName:  "Omar",
		ClientPhone: "+971500000001",
		SessionType: "portrait",
		BookingDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("18:00"),
		EndTime:     types.TimeString("20:00"),
		Exclusivity: domain.ExclusivityZone,
		Status:      status,
		Version:     1,
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(newFakeRepo(booking(1, domain.StatusConfirmed)), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Omar", resp.ClientName)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetDaySchedule(t *testing.T) {
	repo := newFakeRepo(
		booking(1, domain.StatusConfirmed),
		booking(2, domain.StatusInquiry),
	)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetDaySchedule(context.Background(), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", resp.Date)
	assert.Equal(t, 2, resp.Total)
}

func TestCancel(t *testing.T) {
	repo := newFakeRepo(booking(1, domain.StatusConfirmed))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		CancellationReason: "клиент перенес съемку",
		CancelledBy:        staff,
	})
	require.NoError(t, err)
	assert.Equal(t, "клиент перенес съемку", repo.cancelled[1])
}

func TestCancel_RequiresReason(t *testing.T) {
	svc := NewService(newFakeRepo(booking(1, domain.StatusConfirmed)), nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		CancellationReason: "   ",
		CancelledBy:        staff,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	svc := NewService(newFakeRepo(booking(1, domain.StatusCancelled)), nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		CancellationReason: "повторная отмена",
		CancelledBy:        staff,
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestApprove_ConfirmsInquiry(t *testing.T) {
	repo := newFakeRepo(booking(1, domain.StatusInquiry))
	svc := NewService(repo, nopLogger{})

	err := svc.Approve(context.Background(), 1, &models.ApproveBookingRequest{
		Confirm:    true,
		ApprovedBy: manager,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.statusUpdates[1])
}

func TestApprove_RejectCancelsInquiry(t *testing.T) {
	repo := newFakeRepo(booking(1, domain.StatusInquiry))
	svc := NewService(repo, nopLogger{})

	err := svc.Approve(context.Background(), 1, &models.ApproveBookingRequest{
		Confirm:    false,
		ApprovedBy: manager,
	})
	require.NoError(t, err)
	assert.Equal(t, "inquiry rejected by manager", repo.cancelled[1])
}

func TestApprove_StaffIsDenied(t *testing.T) {
	svc := NewService(newFakeRepo(booking(1, domain.StatusInquiry)), nopLogger{})

	err := svc.Approve(context.Background(), 1, &models.ApproveBookingRequest{
		Confirm:    true,
		ApprovedBy: staff,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestApprove_NotInquiry(t *testing.T) {
	svc := NewService(newFakeRepo(booking(1, domain.StatusConfirmed)), nopLogger{})

	err := svc.Approve(context.Background(), 1, &models.ApproveBookingRequest{
		Confirm:    true,
		ApprovedBy: manager,
	})
	assert.ErrorIs(t, err, ErrNotInquiry)
}
