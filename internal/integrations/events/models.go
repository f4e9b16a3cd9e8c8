package events

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Типы событий, влияющих на доступность
const (
	EventCleanerUpdated   = "cleaner.updated"
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingCancelled = "booking.cancelled"
)

var knownEvents = map[string]bool{
	EventCleanerUpdated:   true,
	EventBookingCreated:   true,
	EventBookingUpdated:   true,
	EventBookingCancelled: true,
}

// Event сообщение об изменении расписания уборщика или его бронирований
type Event struct {
	EventType string `json:"eventType"`
	CleanerID int64  `json:"cleanerId,omitempty"`
	BookingID int64  `json:"bookingId,omitempty"`
}

// IsKnown сообщает, влияет ли событие на доступность
func (e Event) IsKnown() bool {
	return knownEvents[e.EventType]
}

// parseEvent разбирает значение сообщения
func parseEvent(value []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(value, &event); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrDecodeEvent, err)
	}

	event.EventType = strings.ToLower(strings.TrimSpace(event.EventType))
	if event.EventType == "" {
		return Event{}, fmt.Errorf("%w: eventType is required", ErrDecodeEvent)
	}

	if event.CleanerID <= 0 && event.BookingID <= 0 {
		return Event{}, fmt.Errorf("%w: event %s", ErrMissingCleaner, event.EventType)
	}

	return event, nil
}

// SplitBrokers разбирает список брокеров через запятую
func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
