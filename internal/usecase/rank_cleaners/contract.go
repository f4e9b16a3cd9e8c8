package rank_cleaners

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// RankingIndex индекс рейтинга в Redis
type RankingIndex interface {
	Top(ctx context.Context, tier domain.ServiceTier, after time.Time, limit int) ([]domain.RankedCleaner, error)
}

// CleanerRepository источник рейтинга в PostgreSQL (используется, если индекс недоступен)
type CleanerRepository interface {
	ListByNextAvailable(ctx context.Context, tier domain.ServiceTier, after time.Time, limit int) ([]domain.RankedCleaner, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
