package events

import "errors"

var (
	// ErrDecodeEvent возвращается, когда сообщение не удалось разобрать
	ErrDecodeEvent = errors.New("events: failed to decode message")

	// ErrMissingCleaner возвращается, когда из события нельзя определить уборщика
	ErrMissingCleaner = errors.New("events: cleaner id is missing")
)
