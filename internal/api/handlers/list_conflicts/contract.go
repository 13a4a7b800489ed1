package list_conflicts

import (
	"context"

	"github.com/aldarwish/Studio-BookingService/internal/service/conflicts/models"
)

type ConflictService interface {
	ListPending(ctx context.Context) (*models.ConflictListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
