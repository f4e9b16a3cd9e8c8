package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/ranking"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	cleanerRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/cleaner"
	refreshUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/refresh_next_available"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
)

// app общие зависимости всех команд
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics

	db            *sql.DB
	wrappedDB     *dbmetrics.DB
	stopMetricsCh chan struct{}
	redis         *redis.Client

	cleanerRepo *cleanerRepo.Repository
	bookingRepo *bookingRepo.Repository
	ranking     *ranking.Index
	txManager   *txmanager.TransactionManager
	engine      *availability.Engine

	refresh *refreshUC.UseCase
}

// newApp загружает конфигурацию и поднимает подключения
func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &app{
		cfg:           cfg,
		log:           log,
		stopMetricsCh: make(chan struct{}),
	}

	log.Info("Configuration loaded from %s", configPath)

	if cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// База данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a.db = db

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Metrics.Enabled {
		a.wrappedDB = dbmetrics.WrapWithDefault(db, a.metrics, a.stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		a.wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Индекс рейтинга в Redis (необязателен)
	if cfg.Redis.Enabled {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := a.redis.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis at %s is unavailable, ranking falls back to database: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Connected to redis at %s", cfg.Redis.Addr)
		}
		a.ranking = ranking.NewIndex(a.redis, cfg.Redis.KeyPrefix)
	}

	a.cleanerRepo = cleanerRepo.NewRepository(a.wrappedDB)
	a.bookingRepo = bookingRepo.NewRepository(a.wrappedDB)
	a.txManager = txmanager.NewTransactionManager(a.wrappedDB)
	a.engine = availability.New(
		availability.WithHorizonDays(cfg.Availability.HorizonDays),
		availability.WithPageSize(cfg.Availability.PageSize),
	)

	a.refresh = refreshUC.NewUseCase(
		a.cleanerRepo,
		a.bookingRepo,
		a.refreshRankingIndex(),
		a.txManager,
		a.engine,
		a.metrics,
		log,
	)

	return a, nil
}

// refreshRankingIndex возвращает nil-интерфейс, если Redis выключен
func (a *app) refreshRankingIndex() refreshUC.RankingIndex {
	if a.ranking == nil {
		return nil
	}
	return a.ranking
}

// Close освобождает ресурсы в обратном порядке
func (a *app) Close() {
	close(a.stopMetricsCh)

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("Failed to close redis client: %v", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn("Failed to close database: %v", err)
		}
	}
	_ = a.log.Close()
}
