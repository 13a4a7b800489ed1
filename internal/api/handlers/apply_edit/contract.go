package apply_edit

import (
	"context"

	applyEdit "github.com/aldarwish/Studio-BookingService/internal/usecase/apply_edit"
)

// ApplyEditUseCase интерфейс usecase применения правки
type ApplyEditUseCase interface {
	Execute(ctx context.Context, req *applyEdit.Request) (*applyEdit.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
