package cleaner

import "errors"

var (
	// ErrCleanerNotFound возвращается, когда уборщик не найден
	ErrCleanerNotFound = errors.New("cleaner.repository: cleaner not found")

	// ErrInvalidTier возвращается для неизвестного тарифа длительности
	ErrInvalidTier = errors.New("cleaner.repository: invalid service tier")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("cleaner.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("cleaner.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("cleaner.repository: failed to scan row")

	// ErrDecodeSchedule возвращается, когда weekly_schedule не является корректным JSON
	ErrDecodeSchedule = errors.New("cleaner.repository: failed to decode weekly schedule")
)
