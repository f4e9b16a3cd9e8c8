package events

import (
	"context"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	refresh "github.com/m04kA/SMC-AvailabilityService/internal/usecase/refresh_next_available"
)

// MessageReader источник сообщений (*kafka.Reader)
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RefreshUseCase пересчет ближайшей доступности
type RefreshUseCase interface {
	Execute(ctx context.Context, req *refresh.Request) (*refresh.Response, error)
}

// BookingRepository нужен, когда событие бронирования пришло без cleanerId
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// Metrics счетчик обработанных событий
type Metrics interface {
	IncEvent(eventType, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
