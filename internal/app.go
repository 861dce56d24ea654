package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shortlet-service/internal/adapters/cache"
	"shortlet-service/internal/adapters/embedded"
	logger_adapter "shortlet-service/internal/adapters/logger"
	postgres_adapter "shortlet-service/internal/adapters/postgres"
	rabbitmq_adapter "shortlet-service/internal/adapters/rabbitmq"
	"shortlet-service/internal/adapters/rest"
	"shortlet-service/internal/adapters/textfmt"
	"shortlet-service/internal/configs"
	"shortlet-service/internal/constants"
	"shortlet-service/internal/contextkeys"
	"shortlet-service/internal/core/port"
	"shortlet-service/internal/core/usecase"
	fluentlogger "shortlet-service/pkg/fluent_logger"
	"shortlet-service/pkg/postgres"
	"shortlet-service/pkg/rabbitmq/rabbitmq_common"
	"shortlet-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	startupTimeout  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server

	dbPool        *pgxpool.Pool
	rabbitManager *rabbitmq_common.ConnectionManager
	leadProducer  *rabbitmq_producer.Publisher
	filterCache   *cache.FilterCache

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	app := &App{config: appConfig}

	// --- 1. ЛОГГЕРЫ ---
	baseLogger, err := app.initLoggers()
	if err != nil {
		return nil, err
	}
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	app.logger = appLogger

	// при ошибке ниже закрываем все, что уже успели открыть
	ok := false
	defer func() {
		if !ok {
			app.closeResources()
		}
	}()

	// --- 2. КАТАЛОГ ---
	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	startupCtx = contextkeys.ContextWithLogger(startupCtx, appLogger)

	var catalogSource port.CatalogSourcePort
	switch appConfig.Catalog.Source {
	case configs.CatalogSourcePostgres:
		app.dbPool, err = postgres.NewClient(startupCtx, postgres.Config{
			DatabaseURL:    appConfig.Database.URL,
			ConnectTimeout: 5 * time.Second,
		})
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", err, nil)
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

		catalogSource, err = postgres_adapter.NewPostgresCatalogRepository(app.dbPool)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres catalog repository: %w", err)
		}
	default:
		catalogSource = embedded.NewCatalogSource()
	}

	catalog, err := catalogSource.Load(startupCtx)
	if err != nil {
		appLogger.Error("Failed to load catalog", err, port.Fields{"source": appConfig.Catalog.Source})
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	appLogger.Info("Catalog loaded", port.Fields{
		"source":     appConfig.Catalog.Source,
		"properties": len(catalog.Properties),
		"brand":      catalog.Brand,
	})

	// --- 3. ИСХОДЯЩИЕ АДАПТЕРЫ ---
	app.filterCache = cache.NewFilterCache(cache.Config{
		MaxSize: appConfig.FilterCache.Size,
		TTL:     appConfig.FilterCache.TTL,
	})
	formatter := textfmt.NewNairaFormatter()

	var leadPublisher port.LeadPublisherPort
	if appConfig.RabbitMQ.Enabled {
		leadPublisher, err = app.initLeadPublisher(baseLogger)
		if err != nil {
			return nil, err
		}
	}
	appLogger.Info("All outgoing adapters initialized.", port.Fields{"rabbitmq_enabled": appConfig.RabbitMQ.Enabled})

	// --- 4. USE CASES ---
	calculator := usecase.NewBookingCalculator(appConfig.Booking.ServiceFee, formatter)
	getHomeUseCase := usecase.NewGetHomeUseCase(catalog)
	findPropertiesUseCase := usecase.NewFindPropertiesUseCase(catalog, app.filterCache)
	getPropertyDetailsUseCase := usecase.NewGetPropertyDetailsUseCase(catalog, calculator)
	quoteBookingUseCase := usecase.NewQuoteBookingUseCase(catalog, calculator)
	buildBookingLinkUseCase := usecase.NewBuildBookingLinkUseCase(catalog, calculator, leadPublisher)
	getFilterOptionsUseCase := usecase.NewGetFilterOptionsUseCase(catalog)

	// --- 5. REST API ---
	catalogHandler := rest.NewCatalogHandler(getHomeUseCase, getFilterOptionsUseCase, formatter)
	propertyHandler := rest.NewPropertyHandler(findPropertiesUseCase, getPropertyDetailsUseCase,
		quoteBookingUseCase, buildBookingLinkUseCase, formatter)
	heroHandler := rest.NewHeroStreamHandler(getHomeUseCase, appConfig.Booking.HeroRotationInterval)

	app.apiServer = rest.NewServer(rest.ServerConfig{
		Port:           appConfig.Rest.PORT,
		AllowedOrigins: appConfig.Rest.CORSAllowedOrigins,
	}, catalogHandler, propertyHandler, heroHandler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	ok = true
	return app, nil
}

func (a *App) initLoggers() (port.LoggerPort, error) {
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    logger_adapter.ParseLevel(a.config.StdoutLogger.Level),
		IsJSON:   a.config.StdoutLogger.IsJSON,
		UseColor: !a.config.StdoutLogger.IsJSON,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	if a.config.FluentBit.Enabled {
		fluentClient, err := fluentlogger.NewClient(fluentlogger.Config{
			Host:      a.config.FluentBit.Host,
			Port:      a.config.FluentBit.Port,
			TagPrefix: a.config.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}
		a.fluentClient = fluentClient

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, logger_adapter.ParseLevel(a.config.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			_ = fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": a.config.AppName})
	baseLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers),
		"fluent_enabled": a.config.FluentBit.Enabled,
	})
	return baseLogger, nil
}

func (a *App) initLeadPublisher(baseLogger port.LoggerPort) (port.LeadPublisherPort, error) {
	rabbitLogger := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))

	manager, err := rabbitmq_common.NewManager(a.config.RabbitMQ.URL, rabbitLogger)
	if err != nil {
		a.logger.Error("Failed to connect to RabbitMQ", err, nil)
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	a.rabbitManager = manager

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: a.config.RabbitMQ.URL},
		ExchangeName:             constants.ExchangeLeads,
		ExchangeType:             constants.ExchangeLeadsType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitLogger,
	}, manager)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead producer: %w", err)
	}
	a.leadProducer = producer

	adapter, err := rabbitmq_adapter.NewRabbitMQBookingInquiryAdapter(producer, constants.RoutingKeyBookingInquiry)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking inquiry adapter: %w", err)
	}
	return adapter, nil
}

// Run запускает HTTP-сервер и ждет сигнала завершения
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.apiServer.Stop(ctx); err != nil {
			a.logger.Error("Error during API server shutdown", err, nil)
		}

		a.closeResources()
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		a.logger.Error("Server failed, shutting down", err, nil)
		return err
	}

	return nil
}

// closeResources закрывает ресурсы в порядке, обратном созданию
func (a *App) closeResources() {
	if a.leadProducer != nil {
		if err := a.leadProducer.Close(); err != nil {
			a.logger.Error("Error closing lead producer", err, nil)
		}
	}
	if a.rabbitManager != nil {
		if err := a.rabbitManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
	}
	if a.filterCache != nil {
		a.filterCache.Stop()
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("PostgreSQL pool closed.", nil)
	}

	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent может быть уже недоступен, пишем в stdout
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}
