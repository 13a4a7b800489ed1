package apply_edit

import (
	"context"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ConditionalUpdate(ctx context.Context, id, expectedVersion int64, upd *domain.Booking) (*domain.Booking, error)
}

// ConflictRepository интерфейс репозитория конфликтов
type ConflictRepository interface {
	Create(ctx context.Context, record *domain.ConflictRecord) (*domain.ConflictRecord, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
