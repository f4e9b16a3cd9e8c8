package get_available_slots

import "errors"

var (
	// ErrCleanerNotFound возвращается, когда уборщик не найден
	ErrCleanerNotFound = errors.New("cleaner not found")

	// ErrInvalidDuration возвращается при длительности вне допустимого диапазона
	ErrInvalidDuration = errors.New("invalid service duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
