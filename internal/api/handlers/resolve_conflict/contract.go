package resolve_conflict

import (
	"context"

	"github.com/google/uuid"

	"github.com/aldarwish/Studio-BookingService/internal/service/conflicts/models"
)

type ConflictService interface {
	Resolve(ctx context.Context, conflictID uuid.UUID, req *models.ResolveRequest) (*models.ResolveResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
