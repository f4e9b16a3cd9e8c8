package rank_cleaners

import "errors"

var (
	// ErrInvalidTier возвращается при неизвестном тарифе
	ErrInvalidTier = errors.New("invalid service tier")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
