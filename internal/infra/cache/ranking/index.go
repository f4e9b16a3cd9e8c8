package ranking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const defaultKeyPrefix = "availability:next"

// Index индекс ближайшей доступности уборщиков в Redis.
// Для каждого тарифа хранится sorted set: member = ID уборщика, score = unix-время.
type Index struct {
	rdb    redis.Cmdable
	prefix string
}

// NewIndex создает индекс; пустой prefix заменяется значением по умолчанию
func NewIndex(rdb redis.Cmdable, prefix string) *Index {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &Index{rdb: rdb, prefix: prefix}
}

func (i *Index) key(tier domain.ServiceTier) string {
	return i.prefix + ":" + string(tier)
}

// Update записывает значения всех тарифов одного уборщика одним pipeline.
// nil убирает уборщика из рейтинга тарифа. Повторный вызов идемпотентен (ZADD перезаписывает score).
func (i *Index) Update(ctx context.Context, cleanerID int64, values domain.NextAvailability) error {
	member := strconv.FormatInt(cleanerID, 10)

	_, err := i.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, tier := range domain.ServiceTiers {
			at := values.Get(tier)
			if at == nil {
				pipe.ZRem(ctx, i.key(tier), member)
				continue
			}
			pipe.ZAdd(ctx, i.key(tier), redis.Z{Score: float64(at.Unix()), Member: member})
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Update cleaner=%d: %v", ErrRedis, cleanerID, err)
	}

	return nil
}

// Top возвращает до limit уборщиков, доступных по тарифу строго после after, по возрастанию времени
func (i *Index) Top(ctx context.Context, tier domain.ServiceTier, after time.Time, limit int) ([]domain.RankedCleaner, error) {
	if !tier.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTier, tier)
	}

	entries, err := i.rdb.ZRangeByScoreWithScores(ctx, i.key(tier), &redis.ZRangeBy{
		Min:    "(" + strconv.FormatInt(after.Unix(), 10),
		Max:    "+inf",
		Offset: 0,
		Count:  int64(limit),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: Top tier=%s: %v", ErrRedis, tier, err)
	}

	ranked := make([]domain.RankedCleaner, 0, len(entries))
	for _, entry := range entries {
		member, ok := entry.Member.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected member type %T", ErrParseMember, entry.Member)
		}
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrParseMember, member, err)
		}
		ranked = append(ranked, domain.RankedCleaner{
			CleanerID:     id,
			NextAvailable: time.Unix(int64(entry.Score), 0).UTC(),
		})
	}

	return ranked, nil
}
