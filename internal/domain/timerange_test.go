package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldarwish/Studio-BookingService/pkg/types"
)

func mustRange(t *testing.T, start, end string) TimeRange {
	t.Helper()
	return TimeRange{
		Date:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Start: types.TimeString(start),
		End:   types.TimeString(end),
	}
}

func TestTimeRange_Validate(t *testing.T) {
	require.NoError(t, mustRange(t, "10:00", "12:00").Validate())

	err := mustRange(t, "12:00", "10:00").Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// нулевая длительность недопустима
	err = mustRange(t, "10:00", "10:00").Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	err = mustRange(t, "10-00", "11:00").Validate()
	require.Error(t, err)
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeRange
		b    TimeRange
		want bool
	}{
		{name: "contained", a: mustRange(t, "18:00", "22:00"), b: mustRange(t, "20:00", "21:00"), want: true},
		{name: "partial", a: mustRange(t, "10:00", "11:00"), b: mustRange(t, "10:30", "11:30"), want: true},
		{name: "identical", a: mustRange(t, "10:00", "11:00"), b: mustRange(t, "10:00", "11:00"), want: true},
		{name: "disjoint", a: mustRange(t, "08:00", "09:00"), b: mustRange(t, "12:00", "13:00"), want: false},
		// смежные интервалы не пересекаются - сравнение строгое
		{name: "adjacent after", a: mustRange(t, "10:00", "12:00"), b: mustRange(t, "12:00", "14:00"), want: false},
		{name: "adjacent before", a: mustRange(t, "12:00", "14:00"), b: mustRange(t, "10:00", "12:00"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}
