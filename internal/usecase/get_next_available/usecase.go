package get_next_available

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	cleanerRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/cleaner"
)

// UseCase живой расчет ближайшего слота для одного уборщика и произвольной длительности
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

// Execute выполняет поиск ближайшего слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetNextAvailable: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

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
			uc.logger.Warn("GetNextAvailable: cleaner id=%d not found", req.CleanerID)
			return nil, ErrCleanerNotFound
		}
		uc.logger.Error("GetNextAvailable: failed to load cleaner id=%d: %v", req.CleanerID, err)
		return nil, fmt.Errorf("%w: failed to load cleaner: %v", ErrInternal, err)
	}

	resp := &Response{
		CleanerID:       req.CleanerID,
		DurationMinutes: req.DurationMinutes,
	}

	if at, ok := uc.engine.FindNextAvailable(cleaner, bookings, req.DurationMinutes, now); ok {
		resp.NextAvailable = &at
	} else {
		uc.logger.Info("GetNextAvailable: cleaner=%d has no availability for %d minutes within %d days",
			req.CleanerID, req.DurationMinutes, uc.engine.HorizonDays())
	}

	return resp, nil
}
