package domain

import (
	"time"

	"github.com/aldarwish/Studio-BookingService/pkg/types"
)

// ApprovalStatus represents the approval dimension of a booking
type ApprovalStatus string

const (
	// StatusConfirmed бронирование подтверждено (терминальный статус вместе с cancelled)
	StatusConfirmed ApprovalStatus = "confirmed"
	// StatusInquiry бронирование создано поверх конфликта и ждет решения менеджера
	StatusInquiry ApprovalStatus = "inquiry"
	// StatusCancelled бронирование отменено
	StatusCancelled ApprovalStatus = "cancelled"
)

// Exclusivity describes how much of the venue a booking occupies
type Exclusivity string

const (
	// ExclusivityFull бронирование занимает всю студию на свой интервал
	ExclusivityFull Exclusivity = "full"
	// ExclusivityZone бронирование занимает зону и может сосуществовать
	// с другими непересекающимися зонными бронированиями
	ExclusivityZone Exclusivity = "zone"
)

// IsValid returns true for a known exclusivity class
func (e Exclusivity) IsValid() bool {
	return e == ExclusivityFull || e == ExclusivityZone
}

// Booking represents a studio booking row
type Booking struct {
	ID          int64
	ClientName  string
	ClientPhone string
	SessionType string
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Exclusivity Exclusivity
	Status      ApprovalStatus

	// ConflictDetails вердикт детектора, с которым бронирование было
	// принудительно создано в статусе inquiry
	ConflictDetails *string

	Notes       *string
	TotalAmount float64
	PaidAmount  float64

	// DedupKey клиентский ключ идемпотентности повторной отправки
	DedupKey string

	// Version монотонно растущая версия строки; любая запись увеличивает её на 1
	Version int64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the booking's time range
func (b *Booking) Range() TimeRange {
	return TimeRange{Date: b.BookingDate, Start: b.StartTime, End: b.EndTime}
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsInquiry returns true if the booking awaits supervisor disposition
func (b *Booking) IsInquiry() bool {
	return b.Status == StatusInquiry
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed || b.Status == StatusInquiry
}

// Snapshot captures the booking's editable fields as a BookingSnapshot
func (b *Booking) Snapshot() BookingSnapshot {
	return BookingSnapshot{
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		SessionType: b.SessionType,
		BookingDate: b.BookingDate.Format(DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		Exclusivity: string(b.Exclusivity),
		Notes:       b.Notes,
		TotalAmount: b.TotalAmount,
		PaidAmount:  b.PaidAmount,
	}
}

// ScheduledBooking is the read model consumed by the conflict detector:
// one booking already on the day's schedule
type ScheduledBooking struct {
	ID          int64
	Range       TimeRange
	Exclusivity Exclusivity
}

// Identity identifies an operator and their privilege level
// Supplied by the surrounding session layer
type Identity struct {
	Name string
	Rank string
}

// IsManager returns true if the operator may resolve conflicts and
// approve inquiry bookings
func (i Identity) IsManager() bool {
	return i.Rank == RankManager
}
