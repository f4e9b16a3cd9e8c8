package get_next_available

import "time"

// Request модель запроса ближайшего слота
type Request struct {
	CleanerID       int64
	DurationMinutes int
}

// Response модель ответа; NextAvailable = nil, если в горизонте слотов нет
type Response struct {
	CleanerID       int64
	DurationMinutes int
	NextAvailable   *time.Time
}
