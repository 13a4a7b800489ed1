package conflicts

import (
	"context"

	"github.com/google/uuid"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
)

// ConflictRepository интерфейс репозитория конфликтов
type ConflictRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ConflictRecord, error)
	ListPending(ctx context.Context) ([]*domain.ConflictRecord, error)
	MarkResolved(ctx context.Context, id uuid.UUID, status domain.ConflictStatus, resolvedBy string) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Overwrite(ctx context.Context, id int64, upd *domain.Booking) (*domain.Booking, error)
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
