package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса и подставляет режим по умолчанию
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

	if req.Offset < 0 {
		return fmt.Errorf("%w: offset must not be negative", ErrInvalidInput)
	}

	switch req.Mode {
	case "":
		req.Mode = ModePaged
	case ModePaged, ModeFull:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}

	return nil
}
