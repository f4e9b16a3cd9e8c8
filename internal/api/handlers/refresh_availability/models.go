package refresh_availability

import (
	"time"

	refresh "github.com/m04kA/SMC-AvailabilityService/internal/usecase/refresh_next_available"
)

// RefreshResponse записанные значения ближайшей доступности
type RefreshResponse struct {
	CleanerID       int64   `json:"cleanerId"`
	NextAvailable2h *string `json:"nextAvailable2h"`
	NextAvailable6h *string `json:"nextAvailable6h"`
	UpdatedAt       *string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *refresh.Response) *RefreshResponse {
	return &RefreshResponse{
		CleanerID:       resp.CleanerID,
		NextAvailable2h: formatTime(resp.NextAvailability.Standard),
		NextAvailable6h: formatTime(resp.NextAvailability.Deep),
		UpdatedAt:       formatTime(resp.NextAvailability.UpdatedAt),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
