package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	refresh "github.com/m04kA/SMC-AvailabilityService/internal/usecase/refresh_next_available"
)

const retryDelay = time.Second

// Config параметры подписки
type Config struct {
	Brokers string
	Topic   string
	GroupID string
}

// Consumer читает события изменений и пересчитывает доступность затронутого уборщика.
// Сообщение коммитится после обработки; битые сообщения и ошибки пересчета
// логируются и тоже коммитятся, расхождения исправит периодический пересчет.
type Consumer struct {
	reader      MessageReader
	refresh     RefreshUseCase
	bookingRepo BookingRepository
	metrics     Metrics
	logger      Logger
}

// NewReader создает kafka.Reader группы потребителей
func NewReader(cfg Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  SplitBrokers(cfg.Brokers),
		GroupID:  cfg.GroupID,
		Topic:    cfg.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}

// NewConsumer создает обработчик событий; metrics может быть nil
func NewConsumer(
	reader MessageReader,
	refresh RefreshUseCase,
	bookingRepo BookingRepository,
	metrics Metrics,
	logger Logger,
) *Consumer {
	return &Consumer{
		reader:      reader,
		refresh:     refresh,
		bookingRepo: bookingRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Run обрабатывает сообщения до отмены контекста
func (c *Consumer) Run(ctx context.Context) error {
	defer func() {
		if err := c.reader.Close(); err != nil {
			c.logger.Warn("Consumer: failed to close reader: %v", err)
		}
	}()

	c.logger.Info("Consumer: started")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("Consumer: stopped")
				return nil
			}
			c.logger.Error("Consumer: failed to fetch message: %v", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(retryDelay):
			}
			continue
		}

		c.Handle(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("Consumer: failed to commit offset %d: %v", msg.Offset, err)
		}
	}
}

// Handle обрабатывает одно сообщение; ошибки не возвращаются, а логируются
func (c *Consumer) Handle(ctx context.Context, msg kafka.Message) {
	event, err := parseEvent(msg.Value)
	if err != nil {
		c.logger.Warn("Consumer: skipping message at offset %d: %v", msg.Offset, err)
		c.incEvent("unknown", "invalid")
		return
	}

	if !event.IsKnown() {
		c.logger.Info("Consumer: ignoring event type %s", event.EventType)
		c.incEvent(event.EventType, "ignored")
		return
	}

	cleanerID, err := c.resolveCleaner(ctx, event)
	if err != nil {
		c.logger.Warn("Consumer: %s: %v", event.EventType, err)
		c.incEvent(event.EventType, "invalid")
		return
	}

	_, err = c.refresh.Execute(ctx, &refresh.Request{CleanerID: cleanerID, Source: refresh.SourceEvent})
	if err != nil {
		if errors.Is(err, refresh.ErrCleanerNotFound) {
			c.logger.Warn("Consumer: %s for unknown cleaner id=%d", event.EventType, cleanerID)
			c.incEvent(event.EventType, "not_found")
			return
		}
		c.logger.Error("Consumer: refresh for cleaner id=%d failed: %v", cleanerID, err)
		c.incEvent(event.EventType, "error")
		return
	}

	c.incEvent(event.EventType, "ok")
}

// resolveCleaner берет cleanerId из события или из бронирования
func (c *Consumer) resolveCleaner(ctx context.Context, event Event) (int64, error) {
	if event.CleanerID > 0 {
		return event.CleanerID, nil
	}
	if c.bookingRepo == nil {
		return 0, ErrMissingCleaner
	}

	booking, err := c.bookingRepo.GetByID(ctx, event.BookingID)
	if err != nil {
		return 0, fmt.Errorf("%w: booking id=%d: %v", ErrMissingCleaner, event.BookingID, err)
	}
	return booking.CleanerID, nil
}

func (c *Consumer) incEvent(eventType, result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.IncEvent(eventType, result)
}
