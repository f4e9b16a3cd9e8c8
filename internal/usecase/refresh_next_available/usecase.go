package refresh_next_available

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	cleanerRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/cleaner"
)

// UseCase пересчитывает и сохраняет ближайшую доступность уборщика по каждому тарифу.
// Вызывается обработчиком событий, HTTP-хуком, планировщиком и CLI.
type UseCase struct {
	cleanerRepo  CleanerRepository
	bookingRepo  BookingRepository
	ranking      RankingIndex
	txManager    TxManager
	engine       *availability.Engine
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. ranking и metrics могут быть nil.
func NewUseCase(
	cleanerRepo CleanerRepository,
	bookingRepo BookingRepository,
	ranking RankingIndex,
	txManager TxManager,
	engine *availability.Engine,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		cleanerRepo:  cleanerRepo,
		bookingRepo:  bookingRepo,
		ranking:      ranking,
		txManager:    txManager,
		engine:       engine,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет пересчет для одного уборщика
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RefreshNextAvailable: validation failed: %v", err)
		return nil, err
	}

	resp, err := uc.execute(ctx, req)
	uc.incRefresh(req.Source, err)
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RefreshNextAvailable: cleaner=%d, source=%s", req.CleanerID, req.Source)

	// 1. Фиксируем "сейчас" один раз на весь пересчет
	now := uc.timeProvider.Now()

	// 2. Одним снимком читаем уборщика и его активные бронирования на весь горизонт
	var (
		cleaner  *domain.Cleaner
		bookings []domain.Booking
	)
	err := uc.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		cleaner, err = uc.cleanerRepo.GetByID(ctx, req.CleanerID)
		if err != nil {
			return err
		}

		window := domain.NewBookingWindow(now, uc.engine.HorizonDays())
		bookings, err = uc.bookingRepo.GetActiveByCleaner(ctx, req.CleanerID, window)
		return err
	})
	if err != nil {
		if errors.Is(err, cleanerRepo.ErrCleanerNotFound) {
			uc.logger.Warn("RefreshNextAvailable: cleaner id=%d not found", req.CleanerID)
			return nil, ErrCleanerNotFound
		}
		uc.logger.Error("RefreshNextAvailable: failed to load cleaner id=%d: %v", req.CleanerID, err)
		return nil, fmt.Errorf("%w: failed to load cleaner: %v", ErrInternal, err)
	}

	// 3. Ищем ближайший слот для каждого тарифа
	values := uc.compute(cleaner, bookings, now)

	// 4. Сохраняем оба значения (nil, если доступности в горизонте нет)
	if err := uc.cleanerRepo.UpdateNextAvailable(ctx, req.CleanerID, values); err != nil {
		if errors.Is(err, cleanerRepo.ErrCleanerNotFound) {
			uc.logger.Warn("RefreshNextAvailable: cleaner id=%d removed during refresh", req.CleanerID)
			return nil, ErrCleanerNotFound
		}
		uc.logger.Error("RefreshNextAvailable: failed to save cleaner id=%d: %v", req.CleanerID, err)
		return nil, fmt.Errorf("%w: failed to save next availability: %v", ErrInternal, err)
	}

	// 5. Зеркалим в индекс рейтинга; ошибки индекса не прерывают пересчет
	if uc.ranking != nil {
		if err := uc.ranking.Update(ctx, req.CleanerID, values); err != nil {
			uc.logger.Warn("RefreshNextAvailable: failed to update ranking index for cleaner id=%d: %v",
				req.CleanerID, err)
		}
	}

	uc.logger.Info("RefreshNextAvailable: cleaner=%d, standard=%s, deep=%s",
		req.CleanerID, formatInstant(values.Standard), formatInstant(values.Deep))

	return &Response{
		CleanerID:        req.CleanerID,
		NextAvailability: values,
	}, nil
}

// compute вычисляет ближайшую доступность по всем тарифам
func (uc *UseCase) compute(cleaner *domain.Cleaner, bookings []domain.Booking, now time.Time) domain.NextAvailability {
	updatedAt := now
	values := domain.NextAvailability{UpdatedAt: &updatedAt}

	for _, tier := range domain.ServiceTiers {
		started := time.Now()
		at, ok := uc.engine.FindNextAvailable(cleaner, bookings, tier.DurationMinutes(), now)
		if !ok {
			uc.observe("none", started)
			values.Set(tier, nil)
			continue
		}
		uc.observe("found", started)
		values.Set(tier, &at)
	}

	return values
}

func (uc *UseCase) observe(outcome string, started time.Time) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.ObserveComputation("find_next_available", outcome, started)
}

func (uc *UseCase) incRefresh(source string, err error) {
	if uc.metrics == nil {
		return
	}
	result := "ok"
	switch {
	case errors.Is(err, ErrCleanerNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	uc.metrics.IncRefresh(source, result)
}

func formatInstant(t *time.Time) string {
	if t == nil {
		return "none"
	}
	return t.Format(time.RFC3339)
}
