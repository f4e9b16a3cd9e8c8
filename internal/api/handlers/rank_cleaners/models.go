package rank_cleaners

import (
	"time"

	rankCleaners "github.com/m04kA/SMC-AvailabilityService/internal/usecase/rank_cleaners"
)

// RankingResponse HTTP response model
type RankingResponse struct {
	Tier     string          `json:"tier"`
	Cleaners []RankedCleaner `json:"cleaners"`
}

// RankedCleaner уборщик с ближайшей доступностью
type RankedCleaner struct {
	CleanerID     int64  `json:"cleanerId"`
	NextAvailable string `json:"nextAvailable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rankCleaners.Response) *RankingResponse {
	cleaners := make([]RankedCleaner, len(resp.Cleaners))
	for i, c := range resp.Cleaners {
		cleaners[i] = RankedCleaner{
			CleanerID:     c.CleanerID,
			NextAvailable: c.NextAvailable.UTC().Format(time.RFC3339),
		}
	}
	return &RankingResponse{Tier: string(resp.Tier), Cleaners: cleaners}
}
