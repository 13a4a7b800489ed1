package submit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	bookingRepo "github.com/aldarwish/Studio-BookingService/internal/infra/storage/booking"
	"github.com/aldarwish/Studio-BookingService/pkg/types"
)

var testDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  []*domain.Booking

	createErr  error
	byDedupKey *domain.Booking

	nextID int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	booking.ID = f.nextID
	booking.Version = 1
	f.created = append(f.created, booking)
	return booking, nil
}

func (f *fakeBookingRepo) GetByDedupKey(_ context.Context, _ string) (*domain.Booking, error) {
	if f.byDedupKey == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.byDedupKey, nil
}

func (f *fakeBookingRepo) GetForDate(_ context.Context, _ time.Time, _ *int64) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		ClientName:  "Fatima",
		ClientPhone: "+971500000001",
		SessionType: "portrait",
		Date:        testDate,
		StartTime:   types.TimeString("18:00"),
		EndTime:     types.TimeString("22:00"),
		Exclusivity: domain.ExclusivityZone,
		TotalAmount: 500,
		DedupKey:    "op1-2025-06-01-a",
	}
}

func existingBooking(id int64, start, end string, excl domain.Exclusivity) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		ClientName:  "Omar",
		BookingDate: testDate,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Exclusivity: excl,
		Status:      domain.StatusConfirmed,
		Version:     1,
	}
}

func TestExecute_NoConflictCreatesConfirmed(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, resp.Outcome)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
	assert.Nil(t, resp.Booking.ConflictDetails)
	assert.Nil(t, resp.Verdict)
	assert.Len(t, repo.created, 1)
}

func TestExecute_ConflictWithoutForceReturnsVerdict(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{existingBooking(1, "18:00", "22:00", domain.ExclusivityFull)},
	}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, OutcomeConflict, resp.Outcome)
	assert.Nil(t, resp.Booking)
	require.NotNil(t, resp.Verdict)
	assert.Equal(t, domain.SeverityHard, resp.Verdict.Severity)
	assert.Equal(t, domain.MsgWholeVenueConflict, resp.Verdict.Message)

	// Ничего не персистится
	assert.Empty(t, repo.created)
}

func TestExecute_ConflictWithForceCreatesInquiry(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{existingBooking(1, "19:00", "20:00", domain.ExclusivityZone)},
	}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.ForcePending = true

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, resp.Outcome)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, domain.StatusInquiry, resp.Booking.Status)
	require.NotNil(t, resp.Booking.ConflictDetails)
	assert.Equal(t, domain.MsgPartialConflict, *resp.Booking.ConflictDetails)
	require.NotNil(t, resp.Verdict)
	assert.Equal(t, domain.SeveritySoft, resp.Verdict.Severity)
}

func TestExecute_DuplicateDedupKeyReturnsExisting(t *testing.T) {
	already := existingBooking(7, "18:00", "22:00", domain.ExclusivityZone)
	repo := &fakeBookingRepo{
		createErr:  bookingRepo.ErrDuplicateDedupKey,
		byDedupKey: already,
	}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, resp.Outcome)
	assert.Equal(t, already, resp.Booking)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, fakeTxManager{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty client name", func(req *Request) { req.ClientName = "  " }},
		{"missing dedup key", func(req *Request) { req.DedupKey = "" }},
		{"unknown exclusivity", func(req *Request) { req.Exclusivity = "vip" }},
		{"start equals end", func(req *Request) { req.EndTime = req.StartTime }},
		{"end before start", func(req *Request) {
			req.StartTime = types.TimeString("20:00")
			req.EndTime = types.TimeString("18:00")
		}},
		{"negative amount", func(req *Request) { req.TotalAmount = -1 }},
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

func TestExecute_AdjacentBookingIsNotConflict(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{existingBooking(1, "16:00", "18:00", domain.ExclusivityFull)},
	}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, resp.Outcome)
	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
}
