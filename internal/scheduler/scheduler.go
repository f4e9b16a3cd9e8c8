package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	refresh "github.com/m04kA/SMC-AvailabilityService/internal/usecase/refresh_next_available"
)

// ErrInvalidSchedule возвращается при некорректном cron-выражении
var ErrInvalidSchedule = errors.New("scheduler: invalid schedule")

// CleanerLister источник ID уборщиков
type CleanerLister interface {
	ListIDs(ctx context.Context) ([]int64, error)
}

// RefreshUseCase пересчет ближайшей доступности одного уборщика
type RefreshUseCase interface {
	Execute(ctx context.Context, req *refresh.Request) (*refresh.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры периодического пересчета
type Config struct {
	Schedule    string        // cron-выражение или @every
	Concurrency int           // одновременных пересчетов
	Timeout     time.Duration // ограничение на один прогон
}

// Result итог одного прогона
type Result struct {
	Total     int
	Refreshed int
	Failed    int
}

// Refresher периодически пересчитывает доступность всех уборщиков,
// так как "сейчас" сдвигается и сохраненные значения устаревают.
type Refresher struct {
	cleaners CleanerLister
	refresh  RefreshUseCase
	cfg      Config
	logger   Logger

	cron    *cron.Cron
	running sync.Mutex
}

// NewRefresher создает планировщик
func NewRefresher(cleaners CleanerLister, refresh RefreshUseCase, cfg Config, logger Logger) *Refresher {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &Refresher{
		cleaners: cleaners,
		refresh:  refresh,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start регистрирует задачу и запускает cron; ctx ограничивает выполняемые прогоны
func (r *Refresher) Start(ctx context.Context) error {
	c := cron.New()
	_, err := c.AddFunc(r.cfg.Schedule, func() {
		// Прогоны не накладываются: если предыдущий не закончился, тик пропускается
		if !r.running.TryLock() {
			r.logger.Warn("Refresher: previous run still in progress, skipping tick")
			return
		}
		defer r.running.Unlock()

		runCtx := ctx
		if r.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
			defer cancel()
		}

		if _, err := r.RunOnce(runCtx); err != nil {
			r.logger.Error("Refresher: run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, r.cfg.Schedule, err)
	}

	r.cron = c
	c.Start()
	r.logger.Info("Refresher: started with schedule %q, concurrency=%d", r.cfg.Schedule, r.cfg.Concurrency)
	return nil
}

// Stop останавливает cron и ждет завершения текущего прогона
func (r *Refresher) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
	r.logger.Info("Refresher: stopped")
}

// RunOnce пересчитывает всех уборщиков с ограниченным параллелизмом.
// Ошибка одного уборщика не прерывает прогон.
func (r *Refresher) RunOnce(ctx context.Context) (Result, error) {
	started := time.Now()

	ids, err := r.cleaners.ListIDs(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list cleaners: %w", err)
	}

	var refreshed, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)

	for _, id := range ids {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			_, err := r.refresh.Execute(gctx, &refresh.Request{CleanerID: id, Source: refresh.SourceScheduler})
			if err != nil {
				failed.Add(1)
				r.logger.Warn("Refresher: cleaner id=%d: %v", id, err)
				return nil
			}
			refreshed.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	result := Result{
		Total:     len(ids),
		Refreshed: int(refreshed.Load()),
		Failed:    int(failed.Load()),
	}

	r.logger.Info("Refresher: refreshed %d of %d cleaners (%d failed) in %s",
		result.Refreshed, result.Total, result.Failed, time.Since(started).Round(time.Millisecond))

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}
