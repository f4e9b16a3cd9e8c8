package get_next_available

import (
	"time"

	getNextAvailable "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_next_available"
)

// NextAvailableResponse HTTP response model; nextAvailable = null, если слотов в горизонте нет
type NextAvailableResponse struct {
	CleanerID       int64   `json:"cleanerId"`
	DurationMinutes int     `json:"durationMinutes"`
	NextAvailable   *string `json:"nextAvailable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getNextAvailable.Response) *NextAvailableResponse {
	out := &NextAvailableResponse{
		CleanerID:       resp.CleanerID,
		DurationMinutes: resp.DurationMinutes,
	}
	if resp.NextAvailable != nil {
		formatted := resp.NextAvailable.Format(time.RFC3339)
		out.NextAvailable = &formatted
	}
	return out
}
