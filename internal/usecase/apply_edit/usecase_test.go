package apply_edit

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	bookingRepo "github.com/aldarwish/Studio-BookingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	updateErr error
	updated   *domain.Booking

	lastID      int64
	lastVersion int64
}

func (f *fakeBookingRepo) ConditionalUpdate(_ context.Context, id, expectedVersion int64, upd *domain.Booking) (*domain.Booking, error) {
	f.lastID = id
	f.lastVersion = expectedVersion
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	upd.ID = id
	upd.Version = expectedVersion + 1
	f.updated = upd
	return upd, nil
}

type fakeConflictRepo struct {
	created []*domain.ConflictRecord
}

func (f *fakeConflictRepo) Create(_ context.Context, record *domain.ConflictRecord) (*domain.ConflictRecord, error) {
	record.ID = uuid.New()
	record.Status = domain.ConflictPending
	f.created = append(f.created, record)
	return record, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		BookingID:   5,
		BaseVersion: 3,
		Proposed: domain.BookingSnapshot{
			ClientName:  "Layla",
			ClientPhone: "+971500000002",
			SessionType: "wedding",
			BookingDate: "2025-06-01",
			StartTime:   "18:00",
			EndTime:     "22:00",
			Exclusivity: "full",
			TotalAmount: 1200,
			PaidAmount:  400,
		},
		Editor: domain.Identity{Name: "operator-a", Rank: domain.RankStaff},
	}
}

func TestExecute_MatchingVersionApplies(t *testing.T) {
	repo := &fakeBookingRepo{}
	conflicts := &fakeConflictRepo{}
	uc := NewUseCase(repo, conflicts, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, resp.Outcome)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, int64(4), resp.Booking.Version)
	assert.Nil(t, resp.ConflictID)

	assert.Equal(t, int64(5), repo.lastID)
	assert.Equal(t, int64(3), repo.lastVersion)
	assert.Empty(t, conflicts.created)
}

func TestExecute_StaleVersionQueuesConflict(t *testing.T) {
	repo := &fakeBookingRepo{updateErr: bookingRepo.ErrStaleVersion}
	conflicts := &fakeConflictRepo{}
	uc := NewUseCase(repo, conflicts, fakeTxManager{}, nopLogger{})

	req := validRequest()
	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, OutcomeQueued, resp.Outcome)
	assert.Nil(t, resp.Booking)
	require.NotNil(t, resp.ConflictID)

	// Проигравшая правка сохранена целиком, с автором
	require.Len(t, conflicts.created, 1)
	record := conflicts.created[0]
	assert.Equal(t, *resp.ConflictID, record.ID)
	assert.Equal(t, int64(5), record.BookingID)
	assert.Equal(t, req.Proposed, record.ProposedData)
	assert.Equal(t, req.Editor, record.ProposedBy)
	assert.Equal(t, domain.ConflictPending, record.Status)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{updateErr: bookingRepo.ErrBookingNotFound}
	conflicts := &fakeConflictRepo{}
	uc := NewUseCase(repo, conflicts, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, conflicts.created)
}

func TestExecute_InvalidSnapshot(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeConflictRepo{}, fakeTxManager{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"zero booking id", func(req *Request) { req.BookingID = 0 }},
		{"zero base version", func(req *Request) { req.BaseVersion = 0 }},
		{"missing editor", func(req *Request) { req.Editor.Name = "" }},
		{"bad date format", func(req *Request) { req.Proposed.BookingDate = "01.06.2025" }},
		{"bad time format", func(req *Request) { req.Proposed.StartTime = "6pm" }},
		{"unknown exclusivity", func(req *Request) { req.Proposed.Exclusivity = "vip" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
