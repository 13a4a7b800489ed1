package submit_booking

import (
	"time"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	"github.com/aldarwish/Studio-BookingService/pkg/types"
)

// Outcome исход отправки бронирования
type Outcome string

const (
	// OutcomeCreated бронирование создано (confirmed или inquiry)
	OutcomeCreated Outcome = "created"
	// OutcomeConflict ничего не создано: вердикт возвращен оператору
	// для решения (синхронный round-trip, не молчаливый отказ)
	OutcomeConflict Outcome = "conflict"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientName  string
	ClientPhone string
	SessionType string
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Exclusivity domain.Exclusivity
	Notes       *string
	TotalAmount float64
	PaidAmount  float64

	// DedupKey клиентский ключ идемпотентности: повтор после retryable-ошибки
	// с тем же ключом не создаст вторую строку
	DedupKey string

	// ForcePending явное решение оператора создать бронирование поверх
	// конфликта в статусе inquiry
	ForcePending bool
}

// Response результат отправки
type Response struct {
	Outcome Outcome

	// Booking заполнен при Outcome = created
	Booking *domain.Booking

	// Verdict заполнен при Outcome = conflict и при создании inquiry
	Verdict *domain.ConflictVerdict
}
