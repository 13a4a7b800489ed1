package apply_edit

import (
	"github.com/google/uuid"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
)

// Outcome исход попытки применить правку
type Outcome string

const (
	// OutcomeApplied версии совпали, правка применена напрямую
	OutcomeApplied Outcome = "applied"
	// OutcomeQueued версия на сервере ушла вперед: правка не применена,
	// а сохранена как pending-конфликт для решения супервизора.
	// Это не ошибка - данные вызывающего не потеряны
	OutcomeQueued Outcome = "queued"
)

// Request модель запроса на правку бронирования
type Request struct {
	BookingID int64

	// BaseVersion версия бронирования, которую редактор видел последней
	BaseVersion int64

	// Proposed полный снимок целевых значений полей
	Proposed domain.BookingSnapshot

	// Editor личность и уровень прав редактора (из identity context)
	Editor domain.Identity
}

// Response результат попытки
type Response struct {
	Outcome Outcome

	// Booking заполнен при Outcome = applied
	Booking *domain.Booking

	// ConflictID заполнен при Outcome = queued
	ConflictID *uuid.UUID
}
