package resolve_conflict

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/aldarwish/Studio-BookingService/internal/api/handlers"
	"github.com/aldarwish/Studio-BookingService/internal/api/middleware"
	"github.com/aldarwish/Studio-BookingService/internal/service/conflicts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidConflictID  = "некорректный ID конфликта"
	msgInvalidDecision    = "некорректное решение, ожидается accept или reject"
	msgNotFound           = "запись о конфликте не найдена"
	msgStaleTarget        = "целевое бронирование больше не существует"
	msgForbidden          = "доступ запрещен"
	msgMissingIdentity    = "не удалось определить оператора"
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

// Handle POST /api/v1/conflicts/{conflictId}/resolve
// Повторный запрос по уже решенной записи возвращает 200 с
// alreadyResolved = true, состояние не меняется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	conflictID, err := uuid.Parse(vars["conflictId"])
	if err != nil {
		h.logger.Warn("POST /conflicts/{conflictId}/resolve - Invalid conflict ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConflictID)
		return
	}

	operator, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("POST /conflicts/%s/resolve - Missing operator identity", conflictID)
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req ResolveConflictRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /conflicts/%s/resolve - Invalid request body: %v", conflictID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Resolve(r.Context(), conflictID, req.ToServiceRequest(operator))
	if err != nil {
		switch {
		case errors.Is(err, conflicts.ErrInvalidDecision):
			h.logger.Warn("POST /conflicts/%s/resolve - Invalid decision %q", conflictID, req.Decision)
			handlers.RespondBadRequest(w, msgInvalidDecision)

		case errors.Is(err, conflicts.ErrAccessDenied):
			h.logger.Warn("POST /conflicts/%s/resolve - Access denied: operator=%s", conflictID, operator.Name)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, conflicts.ErrConflictNotFound):
			h.logger.Warn("POST /conflicts/%s/resolve - Conflict not found", conflictID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, conflicts.ErrStaleTarget):
			h.logger.Warn("POST /conflicts/%s/resolve - Target booking missing", conflictID)
			handlers.RespondConflict(w, msgStaleTarget)

		default:
			h.logger.Error("POST /conflicts/%s/resolve - Failed to resolve: %v", conflictID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /conflicts/%s/resolve - Resolved: decision=%s, status=%s, alreadyResolved=%t",
		conflictID, req.Decision, result.Status, result.AlreadyResolved)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
