package refresh_next_available

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// Источники запуска пересчета (метка метрики refresh_total)
const (
	SourceEvent     = "event"
	SourceHTTP      = "http"
	SourceScheduler = "scheduler"
	SourceCLI       = "cli"
)

// Request модель запроса на пересчет ближайшей доступности
type Request struct {
	CleanerID int64  // ID уборщика
	Source    string // кто инициировал пересчет
}

// Response модель ответа с записанными значениями
type Response struct {
	CleanerID        int64
	NextAvailability domain.NextAvailability
}
