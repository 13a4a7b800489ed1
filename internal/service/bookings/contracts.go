package bookings

import (
	"context"
	"time"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetForDate(ctx context.Context, date time.Time, excludeID *int64) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ApprovalStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
