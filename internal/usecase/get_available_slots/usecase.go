package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	cleanerRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/cleaner"
)

// UseCase use case для многодневного просмотра доступных слотов уборщика
type UseCase struct {
	cleanerRepo  CleanerRepository
	bookingRepo  BookingRepository
	txManager    TxManager
	engine       *availability.Engine
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cleanerRepo CleanerRepository,
	bookingRepo BookingRepository,
	txManager TxManager,
	engine *availability.Engine,
	logger Logger,
) *UseCase {
	return &UseCase{
		cleanerRepo:  cleanerRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		engine:       engine,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: cleaner=%d, duration=%d, mode=%s, offset=%d",
		req.CleanerID, req.DurationMinutes, req.Mode, req.Offset)

	// 2. Получаем текущее время; просмотр всегда начинается с сегодняшней даты
	now := uc.timeProvider.Now()

	// 3. Читаем уборщика и бронирования на весь горизонт одним снимком
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
			uc.logger.Warn("GetAvailableSlots: cleaner id=%d not found", req.CleanerID)
			return nil, ErrCleanerNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to load cleaner id=%d: %v", req.CleanerID, err)
		return nil, fmt.Errorf("%w: failed to load cleaner: %v", ErrInternal, err)
	}

	resp := &Response{
		CleanerID:       req.CleanerID,
		DurationMinutes: req.DurationMinutes,
	}

	// 4. Перебираем дни движком
	if req.Mode == ModeFull {
		days := uc.engine.EnumerateAvailableSlots(cleaner, bookings, req.DurationMinutes, now, now)
		resp.Days = toDays(days)
		resp.NextOffset = uc.engine.HorizonDays()
		resp.HasMore = false
	} else {
		page := uc.engine.EnumeratePage(cleaner, bookings, req.DurationMinutes, now, req.Offset, now)
		resp.Days = toDays(page.Days)
		resp.NextOffset = page.NextOffset
		resp.HasMore = page.HasMore
	}

	uc.logger.Info("GetAvailableSlots: cleaner=%d, found %d days, nextOffset=%d, hasMore=%t",
		req.CleanerID, len(resp.Days), resp.NextOffset, resp.HasMore)

	return resp, nil
}

func toDays(days []availability.DaySlots) []Day {
	result := make([]Day, len(days))
	for i, d := range days {
		result[i] = Day{Date: d.Date, Slots: d.Slots}
	}
	return result
}
