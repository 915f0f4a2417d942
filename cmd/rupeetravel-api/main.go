// README: Entry point; loads config, migrates and seeds the flight store,
// wires the planner and starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"rupeetravel/internal/ai"
	"rupeetravel/internal/config"
	httptransport "rupeetravel/internal/http"
	"rupeetravel/internal/infra"
	"rupeetravel/internal/modules/flights"
	"rupeetravel/internal/modules/gate"
	"rupeetravel/internal/modules/usage"
	"rupeetravel/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.Log.Mode)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}
	defer dbPool.Close()

	if err := infra.Migrate(ctx, dbPool); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	flightStore := flights.NewStore(dbPool)

	// The store is populated once here and read-only afterwards; requests
	// never mutate it, so no locking discipline is needed on the read path.
	loader := flights.NewLoader(flightStore, logger)
	if err := loader.PopulateFromFile(ctx, cfg.Flights.SeedFile); err != nil {
		logger.Fatal("flight seed failed", zap.Error(err))
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer func() { _ = redisClient.Close() }()
	usageSvc := usage.NewService(usage.NewStore(redisClient), logger)

	extractor, err := ai.NewGeminiExtractor(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		logger.Fatal("gemini init failed", zap.Error(err))
	}
	defer extractor.Close()

	planner := service.NewTripPlanner(
		gate.NewClassifier(),
		extractor,
		flightStore,
		usageSvc,
		logger,
	)

	handler := httptransport.NewRouter(planner, usageSvc, logger, cfg.HTTP.Mode)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("server starting", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
}
