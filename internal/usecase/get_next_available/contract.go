package get_next_available

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// CleanerRepository интерфейс репозитория уборщиков
type CleanerRepository interface {
	// GetByID получает уборщика с расписанием и исключениями
	GetByID(ctx context.Context, id int64) (*domain.Cleaner, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveByCleaner получает все активные бронирования уборщика в окне дат одним запросом
	GetActiveByCleaner(ctx context.Context, cleanerID int64, window domain.BookingWindow) ([]domain.Booking, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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
