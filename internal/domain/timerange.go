package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/aldarwish/Studio-BookingService/pkg/types"
)

var (
	// ErrInvalidTimeRange возвращается, когда диапазон времени некорректен (start >= end)
	ErrInvalidTimeRange = errors.New("domain: invalid time range")
)

// TimeRange дата и интервал времени одного бронирования
// Значение неизменяемо; создается один раз на попытку бронирования
type TimeRange struct {
	Date  time.Time // Только дата, без времени
	Start types.TimeString
	End   types.TimeString
}

// Validate checks the start < end invariant and both time formats.
// Zero-length ranges (start == end) are invalid.
func (r TimeRange) Validate() error {
	if err := r.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidTimeRange, err)
	}
	if err := r.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidTimeRange, err)
	}
	if !r.Start.IsBefore(r.End) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidTimeRange, r.Start, r.End)
	}
	return nil
}

// Overlaps reports whether two ranges on the same day intersect.
// The comparison is strict: adjacent ranges (r.End == other.Start) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.IsBefore(other.End) && r.End.IsAfter(other.Start)
}
