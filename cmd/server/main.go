package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"ulascansenturk/weather-analytics-service/config"
	"ulascansenturk/weather-analytics-service/internal/api/v1/handlers"
	"ulascansenturk/weather-analytics-service/internal/db"
	"ulascansenturk/weather-analytics-service/internal/db/city"
	"ulascansenturk/weather-analytics-service/internal/db/weatherrecord"
	"ulascansenturk/weather-analytics-service/internal/providers"
	"ulascansenturk/weather-analytics-service/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Str("env", conf.Env).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	database, err := db.Open(conf.DSN(), db.Options{
		MaxOpenConns: conf.DBMaxOpenConns,
		MaxIdleConns: conf.DBMaxIdleConns,
		AutoMigrate:  conf.DBAutoMigrate,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}

	cityRepo := city.NewRepository(database)
	recordRepo := weatherrecord.NewRepository(database)

	var providerOpts []providers.Option
	if conf.CircuitBreakerEnabled {
		providerOpts = append(providerOpts, providers.WithCircuitBreaker(uint32(conf.CircuitBreakerFailures), conf.CircuitBreakerTimeout))
	}
	if conf.OpenWeatherAPIKey == "" {
		logger.Warn().Msg("OPENWEATHER_API_KEY is not set, fetch_weather calls will be rejected by the provider")
	}
	weatherProvider := providers.NewOpenWeatherClient(conf.OpenWeatherAPIKey, conf.OpenWeatherAPIURL, conf.WeatherAPITimeout, providerOpts...)

	cityService := service.NewCityService(cityRepo, recordRepo, weatherProvider, service.CityServiceConfig{
		PageSize:           conf.PageSize,
		RecentWeatherLimit: conf.RecentWeatherLimit,
	})
	recordService := service.NewWeatherRecordService(recordRepo, cityRepo, conf.PageSize)
	analyticsService := service.NewAnalyticsService(recordRepo, conf.AnalyticsDefaultDays, conf.AnalyticsMaxDays)
	overviewService := service.NewOverviewService(cityRepo, recordRepo, conf.RecentWeatherLimit)

	var limiter *rate.Limiter
	if conf.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(conf.RateLimitRPS), conf.RateLimitBurst)
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Logger:           logger,
		CityService:      cityService,
		RecordService:    recordService,
		AnalyticsService: analyticsService,
		OverviewService:  overviewService,
		Ping: func(ctx context.Context) error {
			return db.Ping(ctx, database)
		},
		Timeout:            conf.HTTPTimeoutDuration(),
		RateLimiter:        limiter,
		CORSAllowedOrigins: conf.CORSAllowedOrigins,
	})

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
		closeDatabase(database)
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
		log.Fatal().Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func closeDatabase(database *gorm.DB) {
	sqlDB, err := database.DB()
	if err != nil {
		log.Error().Err(err).Msg("failed to get database handle")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database")
	}
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
