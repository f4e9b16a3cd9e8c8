package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getNextAvailableHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_next_available"
	rankCleanersHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/rank_cleaners"
	refreshAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/refresh_availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/scheduler"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	getNextAvailableUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_next_available"
	rankCleanersUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/rank_cleaners"
)

func newServeCmd(configPath *string) *cobra.Command {
	var withConsumer bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the periodic refresher",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, a, withConsumer)
		},
	}
	cmd.Flags().BoolVar(&withConsumer, "with-consumer", false, "also consume change events from kafka in this process")

	return cmd
}

func runServe(ctx context.Context, a *app, withConsumer bool) error {
	cfg := a.cfg
	log := a.log

	log.Info("Starting SMC-AvailabilityService %s...", Version)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(a.cleanerRepo, a.bookingRepo, a.txManager, a.engine, log)
	getNextAvailableUseCase := getNextAvailableUC.NewUseCase(a.cleanerRepo, a.bookingRepo, a.txManager, a.engine, log)

	var rankingIndex rankCleanersUC.RankingIndex
	if a.ranking != nil {
		rankingIndex = a.ranking
	}
	rankCleanersUseCase := rankCleanersUC.NewUseCase(rankingIndex, a.cleanerRepo, log)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getNextAvailable := getNextAvailableHandler.NewHandler(getNextAvailableUseCase, log)
	rankCleaners := rankCleanersHandler.NewHandler(rankCleanersUseCase, log)
	refreshAvailability := refreshAvailabilityHandler.NewHandler(a.refresh, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(a.metrics))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitPerSec, cfg.HTTP.RateLimitBurst)
	api.Use(limiter.Limit)

	// ranking регистрируется раньше {cleanerId}, чтобы не совпасть с шаблоном
	api.HandleFunc("/cleaners/ranking", rankCleaners.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cleaners/{cleanerId:[0-9]+}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cleaners/{cleanerId:[0-9]+}/next-available", getNextAvailable.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cleaners/{cleanerId:[0-9]+}/availability/refresh", refreshAvailability.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.HTTP.AllowedOrigins)(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Периодический пересчет
	var refresher *scheduler.Refresher
	if cfg.Refresh.Enabled {
		refresher = scheduler.NewRefresher(a.cleanerRepo, a.refresh, scheduler.Config{
			Schedule:    cfg.Refresh.Schedule,
			Concurrency: cfg.Refresh.Concurrency,
			Timeout:     time.Duration(cfg.Refresh.Timeout) * time.Second,
		}, log)
		if err := refresher.Start(ctx); err != nil {
			return err
		}
		defer refresher.Stop()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	if withConsumer {
		g.Go(func() error {
			return newEventConsumer(a).Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server forced to shutdown: %v", err)
			return err
		}
		log.Info("Server stopped gracefully")
		return nil
	})

	return g.Wait()
}
