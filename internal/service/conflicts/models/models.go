package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
)

// ConflictResponse одна запись о конфликте для отображения супервизору
type ConflictResponse struct {
	ID           uuid.UUID              `json:"id"`
	BookingID    int64                  `json:"bookingId"`
	ProposedData domain.BookingSnapshot `json:"proposedData"`
	ProposedBy   ProposedBy             `json:"proposedBy"`
	Status       string                 `json:"status"`
	CreatedAt    time.Time              `json:"createdAt"`

	// Diff построчное сравнение текущей строки с предложенным снимком.
	// Только для отображения: при Accept снимок выигрывает целиком
	Diff []domain.FieldChange `json:"diff,omitempty"`

	// TargetMissing true, если целевое бронирование уже удалено
	TargetMissing bool `json:"targetMissing,omitempty"`
}

// ProposedBy идентичность автора проигравшей правки
type ProposedBy struct {
	Name string `json:"name"`
	Rank string `json:"rank"`
}

// ConflictListResponse список открытых конфликтов
type ConflictListResponse struct {
	Conflicts []*ConflictResponse `json:"conflicts"`
	Total     int                 `json:"total"`
}

// ResolveRequest запрос на решение конфликта
type ResolveRequest struct {
	Decision   domain.Decision
	ResolvedBy domain.Identity
}

// ResolveResponse результат решения
type ResolveResponse struct {
	// AlreadyResolved true, если запись уже была решена ранее -
	// информационный идемпотентный итог, состояние не изменилось
	AlreadyResolved bool                  `json:"alreadyResolved"`
	Status          domain.ConflictStatus `json:"status"`

	// Booking итоговое состояние бронирования после Accept
	Booking *domain.Booking `json:"-"`
}

// FromDomainConflict конвертирует domain-запись в response-модель
func FromDomainConflict(record *domain.ConflictRecord) *ConflictResponse {
	return &ConflictResponse{
		ID:           record.ID,
		BookingID:    record.BookingID,
		ProposedData: record.ProposedData,
		ProposedBy: ProposedBy{
			Name: record.ProposedBy.Name,
			Rank: record.ProposedBy.Rank,
		},
		Status:    string(record.Status),
		CreatedAt: record.CreatedAt,
	}
}
