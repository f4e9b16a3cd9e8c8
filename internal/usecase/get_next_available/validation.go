package get_next_available

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.CleanerID <= 0 {
		return fmt.Errorf("%w: cleanerID must be positive", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes, got %d",
			ErrInvalidDuration, domain.MinDurationMinutes, domain.MaxDurationMinutes, req.DurationMinutes)
	}

	return nil
}
