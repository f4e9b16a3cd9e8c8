package get_available_slots

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Mode режим просмотра
type Mode string

const (
	// ModePaged возвращает порцию непустых дней ("показать еще")
	ModePaged Mode = "paged"
	// ModeFull возвращает все непустые дни горизонта
	ModeFull Mode = "full"
)

// Request модель запроса на получение доступных слотов уборщика
type Request struct {
	CleanerID       int64 // ID уборщика
	DurationMinutes int   // Длительность услуги в минутах
	Offset          int   // Смещение в днях от сегодня (только для ModePaged)
	Mode            Mode  // Режим просмотра, по умолчанию ModePaged
}

// Response модель ответа со слотами по дням
type Response struct {
	CleanerID       int64
	DurationMinutes int
	Days            []Day // Только дни, где есть хотя бы один слот, по возрастанию даты
	NextOffset      int   // Смещение для следующей страницы
	HasMore         bool  // false, если горизонт исчерпан
}

// Day доступные времена начала на одну дату
type Day struct {
	Date  string             // YYYY-MM-DD
	Slots []types.TimeString // Времена начала, по возрастанию
}
