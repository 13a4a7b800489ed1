package get_day_schedule

import (
	"context"
	"time"

	"github.com/aldarwish/Studio-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetDaySchedule(ctx context.Context, date time.Time) (*models.DayScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
