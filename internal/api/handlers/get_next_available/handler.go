package get_next_available

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getNextAvailable "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_next_available"
)

const (
	msgInvalidCleanerID = "некорректный ID уборщика"
	msgInvalidDuration  = "длительность должна быть от 30 до 720 минут"
	msgCleanerNotFound  = "уборщик не найден"
)

type Handler struct {
	useCase GetNextAvailableUseCase
	logger  Logger
}

func NewHandler(useCase GetNextAvailableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cleaners/{cleanerId}/next-available?duration=120
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cleanerIDStr := mux.Vars(r)["cleanerId"]
	cleanerID, err := strconv.ParseInt(cleanerIDStr, 10, 64)
	if err != nil || cleanerID <= 0 {
		h.logger.Warn("GET /cleaners/{id}/next-available - Invalid cleaner ID: %q", cleanerIDStr)
		handlers.RespondBadRequest(w, msgInvalidCleanerID)
		return
	}

	duration, err := strconv.Atoi(r.URL.Query().Get("duration"))
	if err != nil {
		h.logger.Warn("GET /cleaners/{id}/next-available - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getNextAvailable.Request{
		CleanerID:       cleanerID,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getNextAvailable.ErrInvalidDuration):
			h.logger.Warn("GET /cleaners/{id}/next-available - Duration out of range: %d", duration)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getNextAvailable.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCleanerID)

		case errors.Is(err, getNextAvailable.ErrCleanerNotFound):
			h.logger.Warn("GET /cleaners/{id}/next-available - Cleaner not found: cleaner_id=%d", cleanerID)
			handlers.RespondNotFound(w, msgCleanerNotFound)

		default:
			h.logger.Error("GET /cleaners/{id}/next-available - Failed: cleaner_id=%d, error=%v", cleanerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
