package evaluate_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	"github.com/aldarwish/Studio-BookingService/pkg/types"
)

var testDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	existing []*domain.Booking

	lastExcludeID *int64
}

func (f *fakeBookingRepo) GetForDate(_ context.Context, _ time.Time, excludeID *int64) ([]*domain.Booking, error) {
	f.lastExcludeID = excludeID
	return f.existing, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		Date:        testDate,
		StartTime:   types.TimeString("18:00"),
		EndTime:     types.TimeString("22:00"),
		Exclusivity: domain.ExclusivityZone,
	}
}

func existingBooking(id int64, start, end string, excl domain.Exclusivity) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		BookingDate: testDate,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Exclusivity: excl,
		Status:      domain.StatusConfirmed,
	}
}

func TestExecute_EmptyDayIsNone(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.SeverityNone, resp.Severity)
	assert.Empty(t, resp.Message)
}

func TestExecute_FullBookingIsHard(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{existingBooking(1, "18:00", "22:00", domain.ExclusivityFull)},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.SeverityHard, resp.Severity)
	assert.Equal(t, domain.MsgWholeVenueConflict, resp.Message)
}

func TestExecute_PassesExcludeID(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, nopLogger{})

	req := validRequest()
	id := int64(42)
	req.ExcludeBookingID = &id

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, repo.lastExcludeID)
	assert.Equal(t, int64(42), *repo.lastExcludeID)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	req := validRequest()
	req.EndTime = req.StartTime

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
