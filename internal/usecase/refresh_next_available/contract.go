package refresh_next_available

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// CleanerRepository интерфейс репозитория уборщиков
type CleanerRepository interface {
	// GetByID получает уборщика с расписанием и исключениями
	GetByID(ctx context.Context, id int64) (*domain.Cleaner, error)
	// UpdateNextAvailable перезаписывает предвычисленную доступность
	UpdateNextAvailable(ctx context.Context, cleanerID int64, values domain.NextAvailability) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveByCleaner получает активные бронирования уборщика в окне дат
	GetActiveByCleaner(ctx context.Context, cleanerID int64, window domain.BookingWindow) ([]domain.Booking, error)
}

// RankingIndex индекс рейтинга в Redis (может отсутствовать)
type RankingIndex interface {
	Update(ctx context.Context, cleanerID int64, values domain.NextAvailability) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики пересчета
type Metrics interface {
	IncRefresh(source, result string)
	ObserveComputation(operation, outcome string, started time.Time)
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
