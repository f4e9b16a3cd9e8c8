package rank_cleaners

import (
	"context"
	"fmt"
)

// UseCase рейтинг уборщиков по предвычисленной ближайшей доступности.
// Читает индекс в Redis; при его ошибке или отсутствии обращается к PostgreSQL.
type UseCase struct {
	index        RankingIndex
	cleanerRepo  CleanerRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case; index может быть nil
func NewUseCase(index RankingIndex, cleanerRepo CleanerRepository, logger Logger) *UseCase {
	return &UseCase{
		index:        index,
		cleanerRepo:  cleanerRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute возвращает уборщиков, доступных строго после текущего момента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RankCleaners: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if uc.index != nil {
		ranked, err := uc.index.Top(ctx, req.Tier, now, req.Limit)
		if err == nil {
			return &Response{Tier: req.Tier, Cleaners: ranked, Source: SourceIndex}, nil
		}
		uc.logger.Warn("RankCleaners: ranking index unavailable, falling back to database: %v", err)
	}

	ranked, err := uc.cleanerRepo.ListByNextAvailable(ctx, req.Tier, now, req.Limit)
	if err != nil {
		uc.logger.Error("RankCleaners: failed to list cleaners for tier=%s: %v", req.Tier, err)
		return nil, fmt.Errorf("%w: failed to list cleaners: %v", ErrInternal, err)
	}

	return &Response{Tier: req.Tier, Cleaners: ranked, Source: SourceDatabase}, nil
}
