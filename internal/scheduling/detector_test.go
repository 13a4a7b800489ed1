package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	"github.com/aldarwish/Studio-BookingService/pkg/types"
)

var testDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func rng(start, end string) domain.TimeRange {
	return domain.TimeRange{Date: testDate, Start: types.TimeString(start), End: types.TimeString(end)}
}

func scheduled(id int64, start, end string, excl domain.Exclusivity) domain.ScheduledBooking {
	return domain.ScheduledBooking{ID: id, Range: rng(start, end), Exclusivity: excl}
}

func TestDetect_EmptyDay(t *testing.T) {
	verdict := Detect(rng("10:00", "12:00"), domain.ExclusivityFull, nil)
	assert.Equal(t, domain.SeverityNone, verdict.Severity)
	assert.Empty(t, verdict.Message)
}

func TestDetect_FullExistingOverZoneRequest(t *testing.T) {
	// Бронирование X: full, 18:00-22:00. Запрос Y: zone, 20:00-21:00 -> Hard
	existing := []domain.ScheduledBooking{
		scheduled(1, "18:00", "22:00", domain.ExclusivityFull),
	}

	verdict := Detect(rng("20:00", "21:00"), domain.ExclusivityZone, existing)
	assert.Equal(t, domain.SeverityHard, verdict.Severity)
	assert.Equal(t, domain.MsgWholeVenueConflict, verdict.Message)
}

func TestDetect_FullRequestOverZoneExisting(t *testing.T) {
	existing := []domain.ScheduledBooking{
		scheduled(1, "10:00", "11:00", domain.ExclusivityZone),
	}

	verdict := Detect(rng("10:30", "12:00"), domain.ExclusivityFull, existing)
	assert.Equal(t, domain.SeverityHard, verdict.Severity)
	assert.Equal(t, domain.MsgWholeVenueConflict, verdict.Message)
}

func TestDetect_ZoneOverZone(t *testing.T) {
	// Бронирование X: zone, 10:00-11:00. Запрос Y: zone, 10:30-11:30 -> Soft
	existing := []domain.ScheduledBooking{
		scheduled(1, "10:00", "11:00", domain.ExclusivityZone),
	}

	verdict := Detect(rng("10:30", "11:30"), domain.ExclusivityZone, existing)
	assert.Equal(t, domain.SeveritySoft, verdict.Severity)
	assert.Equal(t, domain.MsgPartialConflict, verdict.Message)
}

func TestDetect_DisjointZones(t *testing.T) {
	existing := []domain.ScheduledBooking{
		scheduled(1, "08:00", "10:00", domain.ExclusivityZone),
		scheduled(2, "14:00", "16:00", domain.ExclusivityZone),
	}

	verdict := Detect(rng("10:30", "13:30"), domain.ExclusivityZone, existing)
	assert.Equal(t, domain.SeverityNone, verdict.Severity)
}

func TestDetect_AdjacencyIsNotOverlap(t *testing.T) {
	// [10:00,12:00) и [12:00,14:00) не пересекаются
	existing := []domain.ScheduledBooking{
		scheduled(1, "10:00", "12:00", domain.ExclusivityFull),
	}

	verdict := Detect(rng("12:00", "14:00"), domain.ExclusivityFull, existing)
	assert.Equal(t, domain.SeverityNone, verdict.Severity)

	verdict = Detect(rng("08:00", "10:00"), domain.ExclusivityFull, existing)
	assert.Equal(t, domain.SeverityNone, verdict.Severity)
}

func TestDetect_HardWinsRegardlessOfOrder(t *testing.T) {
	// Soft обнаруживается первым, Hard позже - итог должен быть Hard
	existing := []domain.ScheduledBooking{
		scheduled(1, "10:00", "11:00", domain.ExclusivityZone),
		scheduled(2, "10:30", "12:00", domain.ExclusivityFull),
	}

	verdict := Detect(rng("10:30", "11:30"), domain.ExclusivityZone, existing)
	assert.Equal(t, domain.SeverityHard, verdict.Severity)
	assert.Equal(t, domain.MsgWholeVenueConflict, verdict.Message)
}

func TestDetect_MultipleSoftStaysSoft(t *testing.T) {
	existing := []domain.ScheduledBooking{
		scheduled(1, "10:00", "11:00", domain.ExclusivityZone),
		scheduled(2, "10:15", "11:15", domain.ExclusivityZone),
	}

	verdict := Detect(rng("10:30", "11:30"), domain.ExclusivityZone, existing)
	assert.Equal(t, domain.SeveritySoft, verdict.Severity)
}
