package refresh_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	refresh "github.com/m04kA/SMC-AvailabilityService/internal/usecase/refresh_next_available"
)

const (
	msgInvalidCleanerID = "некорректный ID уборщика"
	msgCleanerNotFound  = "уборщик не найден"
)

type Handler struct {
	useCase RefreshUseCase
	logger  Logger
}

func NewHandler(useCase RefreshUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cleaners/{cleanerId}/availability/refresh
// Хук для сервисов, изменяющих расписание или бронирования уборщика
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cleanerIDStr := mux.Vars(r)["cleanerId"]
	cleanerID, err := strconv.ParseInt(cleanerIDStr, 10, 64)
	if err != nil || cleanerID <= 0 {
		h.logger.Warn("POST /cleaners/{id}/availability/refresh - Invalid cleaner ID: %q", cleanerIDStr)
		handlers.RespondBadRequest(w, msgInvalidCleanerID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &refresh.Request{CleanerID: cleanerID, Source: refresh.SourceHTTP})
	if err != nil {
		switch {
		case errors.Is(err, refresh.ErrCleanerNotFound):
			h.logger.Warn("POST /cleaners/{id}/availability/refresh - Cleaner not found: cleaner_id=%d", cleanerID)
			handlers.RespondNotFound(w, msgCleanerNotFound)

		case errors.Is(err, refresh.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCleanerID)

		default:
			h.logger.Error("POST /cleaners/{id}/availability/refresh - Failed: cleaner_id=%d, error=%v", cleanerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cleaners/{id}/availability/refresh - Refreshed: cleaner_id=%d", cleanerID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
