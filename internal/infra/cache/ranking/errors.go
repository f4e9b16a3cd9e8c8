package ranking

import "errors"

var (
	// ErrInvalidTier возвращается для неизвестного тарифа длительности
	ErrInvalidTier = errors.New("ranking.index: invalid service tier")

	// ErrRedis возвращается при ошибках Redis
	ErrRedis = errors.New("ranking.index: redis error")

	// ErrParseMember возвращается, когда член sorted set не является ID уборщика
	ErrParseMember = errors.New("ranking.index: failed to parse member")
)
