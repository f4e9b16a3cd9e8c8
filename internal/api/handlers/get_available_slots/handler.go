package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgInvalidCleanerID = "некорректный ID уборщика"
	msgMissingDuration  = "длительность обязательна"
	msgInvalidParams    = "некорректные параметры duration, offset или mode"
	msgInvalidDuration  = "длительность должна быть от 30 до 720 минут"
	msgCleanerNotFound  = "уборщик не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cleaners/{cleanerId}/available-slots
// Query params: duration (required, minutes), offset (optional, days), mode (paged|full)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cleanerID, err := strconv.ParseInt(vars["cleanerId"], 10, 64)
	if err != nil || cleanerID <= 0 {
		h.logger.Warn("GET /cleaners/{id}/available-slots - Invalid cleaner ID: %q", vars["cleanerId"])
		handlers.RespondBadRequest(w, msgInvalidCleanerID)
		return
	}

	query := r.URL.Query()
	durationStr := query.Get("duration")
	if durationStr == "" {
		h.logger.Warn("GET /cleaners/{id}/available-slots - Missing duration")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	useCaseReq, err := ToUseCaseRequest(cleanerID, durationStr, query.Get("offset"), query.Get("mode"))
	if err != nil {
		h.logger.Warn("GET /cleaners/{id}/available-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /cleaners/{id}/available-slots - Invalid duration: cleaner_id=%d, duration=%s",
				cleanerID, durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /cleaners/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableSlots.ErrCleanerNotFound):
			h.logger.Warn("GET /cleaners/{id}/available-slots - Cleaner not found: cleaner_id=%d", cleanerID)
			handlers.RespondNotFound(w, msgCleanerNotFound)

		default:
			h.logger.Error("GET /cleaners/{id}/available-slots - Failed to get slots: cleaner_id=%d, error=%v",
				cleanerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cleaners/{id}/available-slots - Slots retrieved: cleaner_id=%d, days=%d, has_more=%t",
		cleanerID, len(result.Days), result.HasMore)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
