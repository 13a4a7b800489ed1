package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aldarwish/Studio-BookingService/pkg/types"
)

// ConflictStatus состояние записи о конфликте редактирования
type ConflictStatus string

const (
	ConflictPending  ConflictStatus = "pending"
	ConflictAccepted ConflictStatus = "accepted"
	ConflictRejected ConflictStatus = "rejected"
)

// Decision решение супервизора по конфликту
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// IsValid returns true for a known decision
func (d Decision) IsValid() bool {
	return d == DecisionAccept || d == DecisionReject
}

// BookingSnapshot полный снимок редактируемых полей бронирования
// Имена JSON-полей стабильны между store и resolution слоями
type BookingSnapshot struct {
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	SessionType string  `json:"sessionType"`
	BookingDate string  `json:"bookingDate"` // YYYY-MM-DD
	StartTime   string  `json:"startTime"`   // HH:MM
	EndTime     string  `json:"endTime"`     // HH:MM
	Exclusivity string  `json:"exclusivity"` // full | zone
	Notes       *string `json:"notes,omitempty"`
	TotalAmount float64 `json:"totalAmount"`
	PaidAmount  float64 `json:"paidAmount"`
}

// ToBooking converts the snapshot into a Booking carrying only the
// editable fields, validating formats along the way
func (s BookingSnapshot) ToBooking() (*Booking, error) {
	date, err := time.Parse(DateFormat, s.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("invalid booking date %q: %v", s.BookingDate, err)
	}

	start, err := types.NewTimeStringFromString(s.StartTime)
	if err != nil {
		return nil, err
	}

	end, err := types.NewTimeStringFromString(s.EndTime)
	if err != nil {
		return nil, err
	}

	exclusivity := Exclusivity(s.Exclusivity)
	if !exclusivity.IsValid() {
		return nil, fmt.Errorf("invalid exclusivity %q", s.Exclusivity)
	}

	booking := &Booking{
		ClientName:  s.ClientName,
		ClientPhone: s.ClientPhone,
		SessionType: s.SessionType,
		BookingDate: date,
		StartTime:   start,
		EndTime:     end,
		Exclusivity: exclusivity,
		Notes:       s.Notes,
		TotalAmount: s.TotalAmount,
		PaidAmount:  s.PaidAmount,
	}

	if err := booking.Range().Validate(); err != nil {
		return nil, err
	}

	return booking, nil
}

// ConflictRecord durable-запись проигравшей конкурентной правки.
// Создается write path-ом при расхождении версий; статус меняет
// исключительно сервис разрешения конфликтов.
type ConflictRecord struct {
	ID           uuid.UUID
	BookingID    int64
	ProposedData BookingSnapshot
	ProposedBy   Identity
	Status       ConflictStatus
	CreatedAt    time.Time

	ResolvedBy *string
	ResolvedAt *time.Time
}

// IsPending returns true while the record still awaits a decision
func (c *ConflictRecord) IsPending() bool {
	return c.Status == ConflictPending
}

// FieldChange одна строка диффа между текущим бронированием и предложенным
// снимком; считается только для отображения оператору и не влияет на то,
// какие поля будут записаны при Accept
type FieldChange struct {
	Field    string `json:"field"`
	Current  string `json:"current"`
	Proposed string `json:"proposed"`
}
