package rank_cleaners

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// Источники рейтинга
const (
	SourceIndex    = "redis"
	SourceDatabase = "postgres"
)

// Request модель запроса рейтинга
type Request struct {
	Tier  domain.ServiceTier
	Limit int // 0 = по умолчанию
}

// Response уборщики по возрастанию ближайшей доступности
type Response struct {
	Tier     domain.ServiceTier
	Cleaners []domain.RankedCleaner
	Source   string // откуда взят рейтинг
}
