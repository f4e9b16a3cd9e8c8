package rank_cleaners

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует запрос и подставляет лимит по умолчанию
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if !req.Tier.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTier, req.Tier)
	}

	if req.Limit == 0 {
		req.Limit = domain.DefaultRankLimit
	}
	if req.Limit < 0 || req.Limit > domain.MaxRankingLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, domain.MaxRankingLimit)
	}

	return nil
}
