package app

import (
	"context"

	"github.com/VladPetriv/currency_exchange/config"
	"github.com/VladPetriv/currency_exchange/internal/api/exchange"
	"github.com/VladPetriv/currency_exchange/internal/api/telegram"
	"github.com/VladPetriv/currency_exchange/internal/migrations"
	"github.com/VladPetriv/currency_exchange/internal/service"
	"github.com/VladPetriv/currency_exchange/internal/store"
	"github.com/VladPetriv/currency_exchange/pkg/database"
	"github.com/VladPetriv/currency_exchange/pkg/logger"
	"github.com/VladPetriv/currency_exchange/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Run is used to start the application. It blocks until ctx is done.
func Run(ctx context.Context, cfg *config.Config, logger *logger.Logger) {
	registry := prometheus.NewRegistry()
	appMetrics := metrics.New(registry)

	if cfg.Metrics.Address != "" {
		metricsServer := newMetricsServer(registry)
		go func() {
			logger.Info().Str("address", cfg.Metrics.Address).Msg("starting metrics server")

			err := metricsServer.ListenAndServe(cfg.Metrics.Address)
			if err != nil {
				logger.Error().Err(err).Msg("run metrics server")
			}
		}()
		defer func() {
			err := metricsServer.Shutdown()
			if err != nil {
				logger.Error().Err(err).Msg("shutdown metrics server")
			}
		}()
	}

	stateStore, closeStore := newStateStore(ctx, cfg, logger)
	defer closeStore()

	exchangeAPI := exchange.New(exchange.Options{
		Host:    cfg.ExchangeAPI.Host,
		Timeout: cfg.ExchangeAPI.Timeout,
		Metrics: appMetrics,
	})
	defer func() {
		err := exchangeAPI.Close()
		if err != nil {
			logger.Error().Err(err).Msg("close exchange api client")
		}
	}()

	telegramMessenger, err := telegram.New(telegram.Options{
		Token:         cfg.Telegram.BotToken,
		UpdatesType:   cfg.Telegram.UpdatesType,
		ServerAddress: cfg.Telegram.ServerAddress,
		WebhookURL:    cfg.Telegram.WebhookURL,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("create telegram messenger")
	}
	defer func() {
		err := telegramMessenger.Close()
		if err != nil {
			logger.Error().Err(err).Msg("close telegram messenger")
		}
	}()

	apis := service.APIs{
		Messenger: telegramMessenger,
		Exchange:  exchangeAPI,
	}
	stores := service.Stores{
		State: stateStore,
	}

	services := service.Services{
		View: service.NewView(&service.ViewOptions{
			Logger:  logger,
			APIs:    apis,
			Metrics: appMetrics,
		}),
	}
	services.State = service.NewState(&service.StateOptions{
		Logger: logger,
		Stores: stores,
		APIs:   apis,
	})
	services.Handler = service.NewHandler(&service.HandlerOptions{
		Logger:   logger,
		APIs:     apis,
		Services: services,
		Stores:   stores,
	})
	services.Event = service.NewEvent(&service.EventOptions{
		Logger:       logger,
		APIs:         apis,
		Services:     services,
		WorkersCount: cfg.App.WorkersCount,
	})

	logger.Info().
		Str("updatesType", cfg.Telegram.UpdatesType).
		Str("stateStorage", cfg.App.StateStorage).
		Msg("listening for bot updates")

	services.Event.Listen(ctx)

	logger.Info().Msg("application stopped")
}

func newStateStore(ctx context.Context, cfg *config.Config, logger *logger.Logger) (service.StateStore, func()) {
	if cfg.App.StateStorage != config.StateStoragePostgres {
		return store.NewMemoryState(), func() {}
	}

	db, err := database.NewPostgreSQL(database.PostgreSQLOptions{
		User:     cfg.PostgreSQL.User,
		Password: cfg.PostgreSQL.Password,
		Database: cfg.PostgreSQL.Database,
		Host:     cfg.PostgreSQL.Host,
		Port:     cfg.PostgreSQL.Port,
		SSLMode:  cfg.PostgreSQL.SSLMode,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("create postgresql connection")
	}

	err = db.Ping(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("ping postgresql")
	}

	err = migrations.MigrateDB(logger, db.DB, cfg.PostgreSQL.Database, migrations.Migrations)
	if err != nil {
		logger.Fatal().Err(err).Msg("migrate database")
	}

	return store.NewState(db), func() {
		err := db.Close()
		if err != nil {
			logger.Error().Err(err).Msg("close postgresql connection")
		}
	}
}
