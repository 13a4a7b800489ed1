package domain

// Severity classifies a scheduling collision
type Severity string

const (
	// SeverityNone пересечений нет
	SeverityNone Severity = "none"
	// SeveritySoft пересечение двух зонных бронирований; можно принудительно
	// создать бронирование в статусе inquiry
	SeveritySoft Severity = "soft"
	// SeverityHard пересечение, в котором участвует full-бронирование
	SeverityHard Severity = "hard"
)

// ConflictVerdict is the detector's answer for one proposed time range.
// Produced fresh per evaluation and never persisted; the message of a
// forced submission is copied into Booking.ConflictDetails.
type ConflictVerdict struct {
	Severity Severity
	Message  string
}

// HasConflict returns true for Soft and Hard verdicts
func (v ConflictVerdict) HasConflict() bool {
	return v.Severity != SeverityNone
}

// NoConflict возвращает вердикт без конфликта
func NoConflict() ConflictVerdict {
	return ConflictVerdict{Severity: SeverityNone}
}

// HardConflict возвращает вердикт о занятости всей студии
func HardConflict() ConflictVerdict {
	return ConflictVerdict{Severity: SeverityHard, Message: MsgWholeVenueConflict}
}

// SoftConflict возвращает вердикт о частичном пересечении зон
func SoftConflict() ConflictVerdict {
	return ConflictVerdict{Severity: SeveritySoft, Message: MsgPartialConflict}
}
