package conflicts

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	bookingRepo "github.com/aldarwish/Studio-BookingService/internal/infra/storage/booking"
	conflictRepo "github.com/aldarwish/Studio-BookingService/internal/infra/storage/conflict"
	"github.com/aldarwish/Studio-BookingService/internal/service/conflicts/models"
	"github.com/aldarwish/Studio-BookingService/pkg/types"
)

type fakeConflictRepo struct {
	records map[uuid.UUID]*domain.ConflictRecord

	resolved       []uuid.UUID
	resolvedStatus domain.ConflictStatus
	resolvedBy     string
}

func newFakeConflictRepo(records ...*domain.ConflictRecord) *fakeConflictRepo {
	m := make(map[uuid.UUID]*domain.ConflictRecord)
	for _, r := range records {
		m[r.ID] = r
	}
	return &fakeConflictRepo{records: m}
}

func (f *fakeConflictRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ConflictRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, conflictRepo.ErrConflictNotFound
	}
	return record, nil
}

func (f *fakeConflictRepo) ListPending(_ context.Context) ([]*domain.ConflictRecord, error) {
	var pending []*domain.ConflictRecord
	for _, r := range f.records {
		if r.IsPending() {
			pending = append(pending, r)
		}
	}
	return pending, nil
}

func (f *fakeConflictRepo) MarkResolved(_ context.Context, id uuid.UUID, status domain.ConflictStatus, resolvedBy string) error {
	record, ok := f.records[id]
	if !ok || !record.IsPending() {
		return conflictRepo.ErrAlreadyResolved
	}
	record.Status = status
	f.resolved = append(f.resolved, id)
	f.resolvedStatus = status
	f.resolvedBy = resolvedBy
	return nil
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	overwritten map[int64]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	m := make(map[int64]*domain.Booking)
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeBookingRepo{bookings: m, overwritten: make(map[int64]*domain.Booking)}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) Overwrite(_ context.Context, id int64, upd *domain.Booking) (*domain.Booking, error) {
	current, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	upd.ID = id
	upd.Version = current.Version + 1
	f.bookings[id] = upd
	f.overwritten[id] = upd
	return upd, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var manager = domain.Identity{Name: "supervisor", Rank: domain.RankManager}

func snapshot() domain.BookingSnapshot {
	return domain.BookingSnapshot{
		ClientName:  "Layla",
		ClientPhone: "+971500000002",
		SessionType: "wedding",
		BookingDate: "2025-06-01",
		StartTime:   "18:00",
		EndTime:     "22:00",
		Exclusivity: "full",
		TotalAmount: 1200,
		PaidAmount:  400,
	}
}

func pendingRecord(bookingID int64) *domain.ConflictRecord {
	return &domain.ConflictRecord{
		ID:           uuid.New(),
		BookingID:    bookingID,
		ProposedData: snapshot(),
		ProposedBy:   domain.Identity{Name: "operator-a", Rank: domain.RankStaff},
		Status:       domain.ConflictPending,
		CreatedAt:    time.Now(),
	}
}

func storedBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		ClientName:  "Omar",
		ClientPhone: "+971500000001",
		SessionType: "portrait",
		BookingDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("18:00"),
		EndTime:     types.TimeString("20:00"),
		Exclusivity: domain.ExclusivityZone,
		Status:      domain.StatusConfirmed,
		TotalAmount: 800,
		PaidAmount:  800,
		Version:     4,
	}
}

func TestResolve_AcceptOverwritesBooking(t *testing.T) {
	record := pendingRecord(10)
	conflicts := newFakeConflictRepo(record)
	bookings := newFakeBookingRepo(storedBooking(10))
	svc := NewService(conflicts, bookings, fakeTxManager{}, nopLogger{})

	resp, err := svc.Resolve(context.Background(), record.ID,
		&models.ResolveRequest{Decision: domain.DecisionAccept, ResolvedBy: manager})

	require.NoError(t, err)
	assert.False(t, resp.AlreadyResolved)
	assert.Equal(t, domain.ConflictAccepted, resp.Status)

	// Снимок выигрывает целиком и версия растет
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "Layla", resp.Booking.ClientName)
	assert.Equal(t, domain.ExclusivityFull, resp.Booking.Exclusivity)
	assert.Equal(t, int64(5), resp.Booking.Version)

	assert.Equal(t, domain.ConflictAccepted, conflicts.resolvedStatus)
	assert.Equal(t, "supervisor", conflicts.resolvedBy)
}

func TestResolve_RejectLeavesBookingUntouched(t *testing.T) {
	record := pendingRecord(10)
	conflicts := newFakeConflictRepo(record)
	bookings := newFakeBookingRepo(storedBooking(10))
	svc := NewService(conflicts, bookings, fakeTxManager{}, nopLogger{})

	resp, err := svc.Resolve(context.Background(), record.ID,
		&models.ResolveRequest{Decision: domain.DecisionReject, ResolvedBy: manager})

	require.NoError(t, err)
	assert.Equal(t, domain.ConflictRejected, resp.Status)
	assert.Nil(t, resp.Booking)
	assert.Empty(t, bookings.overwritten)
}

func TestResolve_RejectSucceedsForMissingTarget(t *testing.T) {
	// Цель удалена, но Reject не трогает бронирование и обязан пройти
	record := pendingRecord(99)
	conflicts := newFakeConflictRepo(record)
	bookings := newFakeBookingRepo()
	svc := NewService(conflicts, bookings, fakeTxManager{}, nopLogger{})

	resp, err := svc.Resolve(context.Background(), record.ID,
		&models.ResolveRequest{Decision: domain.DecisionReject, ResolvedBy: manager})

	require.NoError(t, err)
	assert.Equal(t, domain.ConflictRejected, resp.Status)
}

func TestResolve_AcceptMissingTargetIsStale(t *testing.T) {
	record := pendingRecord(99)
	conflicts := newFakeConflictRepo(record)
	bookings := newFakeBookingRepo()
	svc := NewService(conflicts, bookings, fakeTxManager{}, nopLogger{})

	_, err := svc.Resolve(context.Background(), record.ID,
		&models.ResolveRequest{Decision: domain.DecisionAccept, ResolvedBy: manager})

	assert.ErrorIs(t, err, ErrStaleTarget)

	// Запись остается pending для ручного разбора
	assert.Equal(t, domain.ConflictPending, record.Status)
	assert.Empty(t, conflicts.resolved)
}

func TestResolve_AlreadyResolvedIsIdempotent(t *testing.T) {
	record := pendingRecord(10)
	record.Status = domain.ConflictRejected
	conflicts := newFakeConflictRepo(record)
	bookings := newFakeBookingRepo(storedBooking(10))
	svc := NewService(conflicts, bookings, fakeTxManager{}, nopLogger{})

	resp, err := svc.Resolve(context.Background(), record.ID,
		&models.ResolveRequest{Decision: domain.DecisionAccept, ResolvedBy: manager})

	require.NoError(t, err)
	assert.True(t, resp.AlreadyResolved)
	assert.Equal(t, domain.ConflictRejected, resp.Status)
	assert.Empty(t, bookings.overwritten)
}

func TestResolve_StaffIsDenied(t *testing.T) {
	record := pendingRecord(10)
	svc := NewService(newFakeConflictRepo(record), newFakeBookingRepo(storedBooking(10)),
		fakeTxManager{}, nopLogger{})

	_, err := svc.Resolve(context.Background(), record.ID,
		&models.ResolveRequest{
			Decision:   domain.DecisionAccept,
			ResolvedBy: domain.Identity{Name: "operator-a", Rank: domain.RankStaff},
		})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestResolve_UnknownDecision(t *testing.T) {
	record := pendingRecord(10)
	svc := NewService(newFakeConflictRepo(record), newFakeBookingRepo(storedBooking(10)),
		fakeTxManager{}, nopLogger{})

	_, err := svc.Resolve(context.Background(), record.ID, &models.ResolveRequest{
		Decision:   domain.Decision("maybe"),
		ResolvedBy: manager,
	})

	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestResolve_NotFound(t *testing.T) {
	svc := NewService(newFakeConflictRepo(), newFakeBookingRepo(), fakeTxManager{}, nopLogger{})

	_, err := svc.Resolve(context.Background(), uuid.New(),
		&models.ResolveRequest{Decision: domain.DecisionReject, ResolvedBy: manager})

	assert.ErrorIs(t, err, ErrConflictNotFound)
}

func TestListPending_BuildsDiff(t *testing.T) {
	record := pendingRecord(10)
	conflicts := newFakeConflictRepo(record)
	bookings := newFakeBookingRepo(storedBooking(10))
	svc := NewService(conflicts, bookings, fakeTxManager{}, nopLogger{})

	resp, err := svc.ListPending(context.Background())

	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)

	item := resp.Conflicts[0]
	assert.False(t, item.TargetMissing)
	require.NotEmpty(t, item.Diff)

	fields := make(map[string]domain.FieldChange)
	for _, change := range item.Diff {
		fields[change.Field] = change
	}
	assert.Equal(t, "Omar", fields["clientName"].Current)
	assert.Equal(t, "Layla", fields["clientName"].Proposed)
	assert.Contains(t, fields, "exclusivity")
	assert.Contains(t, fields, "endTime")
	// Совпадающие поля в дифф не попадают
	assert.NotContains(t, fields, "bookingDate")
	assert.NotContains(t, fields, "startTime")
}

func TestListPending_MissingTargetIsFlagged(t *testing.T) {
	record := pendingRecord(42)
	svc := NewService(newFakeConflictRepo(record), newFakeBookingRepo(), fakeTxManager{}, nopLogger{})

	resp, err := svc.ListPending(context.Background())

	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.True(t, resp.Conflicts[0].TargetMissing)
	assert.Empty(t, resp.Conflicts[0].Diff)
}
