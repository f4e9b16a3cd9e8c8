package rank_cleaners

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	rankCleaners "github.com/m04kA/SMC-AvailabilityService/internal/usecase/rank_cleaners"
)

const (
	msgInvalidTier  = "тариф должен быть standard или deep"
	msgInvalidLimit = "некорректный limit"
)

type Handler struct {
	useCase RankCleanersUseCase
	logger  Logger
}

func NewHandler(useCase RankCleanersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cleaners/ranking?tier=standard&limit=10
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	tier := domain.ServiceTier(query.Get("tier"))
	if tier == "" {
		tier = domain.TierStandard
	}

	limit := 0
	if limitStr := query.Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			h.logger.Warn("GET /cleaners/ranking - Invalid limit: %q", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &rankCleaners.Request{Tier: tier, Limit: limit})
	if err != nil {
		switch {
		case errors.Is(err, rankCleaners.ErrInvalidTier):
			h.logger.Warn("GET /cleaners/ranking - Invalid tier: %q", tier)
			handlers.RespondBadRequest(w, msgInvalidTier)

		case errors.Is(err, rankCleaners.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidLimit)

		default:
			h.logger.Error("GET /cleaners/ranking - Failed: tier=%s, error=%v", tier, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cleaners/ranking - tier=%s, count=%d, source=%s", tier, len(result.Cleaners), result.Source)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
