package list_conflicts

import (
	"net/http"

	"github.com/aldarwish/Studio-BookingService/internal/api/handlers"
)

type Handler struct {
	service ConflictService
	logger  Logger
}

func NewHandler(service ConflictService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/conflicts
// Открытые конфликты редактирования, старые первыми
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPending(r.Context())
	if err != nil {
		h.logger.Error("GET /conflicts - Failed to list pending conflicts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /conflicts - Pending conflicts listed: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
