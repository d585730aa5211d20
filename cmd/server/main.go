package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/harsh12garg/Kirana-billing-software/internal/config"
	"github.com/harsh12garg/Kirana-billing-software/internal/infra"
	"github.com/harsh12garg/Kirana-billing-software/internal/repository"
	"github.com/harsh12garg/Kirana-billing-software/internal/router"
	"github.com/harsh12garg/Kirana-billing-software/internal/service"
	"github.com/harsh12garg/Kirana-billing-software/internal/worker"
)

// @title Kirana Billing API
// @version 1.0
// @description Shop management backend: inventory, billing, customers, credit tracking.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setupLogger(cfg)

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Msg("database connected, migrations applied")

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	log.Info().Msg("redis connected")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	billRepo := repository.NewBillRepository(db)
	creditRepo := repository.NewCreditRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Background workers
	dispatcher := worker.NewDispatcher(rdb)
	mailer := infra.NewMailer(cfg)
	smtpCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	emailWorker := worker.NewEmailWorker(mailer, smtpCB, dispatcher, func(ctx context.Context, queue, jobType string, payload json.RawMessage, reason string, attempts int) {
		worker.SendToDLQ(ctx, rdb, queue, jobType, payload, reason, attempts)
	})
	worker.StartWorkerPool(ctx, rdb, &worker.WorkerHandlers{Email: emailWorker}, cfg.WorkerPoolSize)
	worker.StartReportCron(ctx, worker.ReportCronConfig{
		SettingsRepo: settingsRepo,
		BillRepo:     billRepo,
		Dispatcher:   dispatcher,
		RDB:          rdb,
	})

	// Services
	svcs := router.Services{
		Auth:      service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpirationHours),
		Product:   service.NewProductService(productRepo),
		Customer:  service.NewCustomerService(customerRepo, billRepo, creditRepo),
		Bill:      service.NewBillService(billRepo, productRepo, customerRepo, creditRepo, settingsRepo, dispatcher, cfg.ReceiptDir),
		Credit:    service.NewCreditService(creditRepo, customerRepo),
		Settings:  service.NewSettingsService(settingsRepo),
		Dashboard: service.NewDashboardService(productRepo, customerRepo, billRepo, creditRepo),
	}

	engine := router.New(cfg, db, rdb, svcs)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}
	log.Info().Msg("server stopped")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
