package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	appservice "github.com/praxisgrc/praxis/internal/application/service"
	"github.com/praxisgrc/praxis/internal/config"
	domainservice "github.com/praxisgrc/praxis/internal/domain/service"
	"github.com/praxisgrc/praxis/internal/infrastructure/events"
	"github.com/praxisgrc/praxis/internal/infrastructure/monitoring"
	"github.com/praxisgrc/praxis/internal/infrastructure/persistence/postgres"
	"github.com/praxisgrc/praxis/internal/infrastructure/persistence/redis"
	"github.com/praxisgrc/praxis/internal/infrastructure/ratelimit"
	"github.com/praxisgrc/praxis/internal/infrastructure/secrets"
	httpiface "github.com/praxisgrc/praxis/internal/interfaces/http"
	"github.com/praxisgrc/praxis/internal/interfaces/http/handlers"
	"github.com/praxisgrc/praxis/pkg/logger"
)

func main() {
	startupLogger, _ := monitoring.NewZapLogger(&config.LogConfig{Level: "info", Format: "console"})

	cfg, err := config.LoadConfig(startupLogger)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := monitoring.NewZapLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	if setter, ok := appLogger.(monitoring.LevelSetter); ok {
		cfg.OnLogLevelChange(setter.SetLevel)
	}

	ctx := context.Background()

	tracer, err := monitoring.NewTracer(&cfg.Tracing)
	if err != nil {
		appLogger.Fatal(ctx, "failed to initialize tracing", err)
	}

	// When Vault holds the database credential it takes precedence over the
	// configured password.
	if cfg.Vault.Enabled {
		vault, err := secrets.NewVaultClient(&cfg.Vault, appLogger)
		if err != nil {
			appLogger.Fatal(ctx, "failed to create vault client", err)
		}
		password, err := vault.DatabasePassword(ctx)
		if err != nil {
			appLogger.Fatal(ctx, "failed to read database credential from vault", err)
		}
		cfg.Database.Password = password
	}

	db, err := postgres.NewDBConnection(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal(ctx, "failed to connect to database", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		appLogger.Fatal(ctx, "failed to run schema migration", err)
	}

	redisConn, err := redis.NewRedisConnection(ctx, &cfg.Redis, appLogger)
	if err != nil {
		appLogger.Fatal(ctx, "failed to connect to redis", err)
	}
	defer redisConn.Close()

	metrics := monitoring.NewMetrics()
	cacheManager := redis.NewCacheManager(redisConn, appLogger)

	tenantRepo := redis.NewCachedTenantRepo(
		postgres.NewTenantRepository(db.Gorm(), appLogger), cacheManager, appLogger)
	assessmentRepo := postgres.NewAssessmentRepository(db.Gorm(), appLogger)
	snapshotRepo := postgres.NewSnapshotRepository(db.Gorm(), appLogger)
	benchmarkRepo := redis.NewCachedBenchmarkRepo(
		postgres.NewBenchmarkRepository(db.Gorm(), appLogger), cacheManager, appLogger)

	var publisher appservice.EventPublisher
	if cfg.Kafka.Enabled {
		producer := events.NewKafkaProducer(&cfg.Kafka, appLogger)
		publisher = producer
		if closer, ok := producer.(interface{ Close() error }); ok {
			defer closer.Close()
		}
	}

	var limiter *ratelimit.RedisRateLimiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.NewRedisRateLimiter(redisConn.Client, &cfg.RateLimit, appLogger)
	}

	resolver := domainservice.NewMatrixResolver(appLogger)
	analyticsSvc := appservice.NewAnalyticsAppService(
		tenantRepo, assessmentRepo, snapshotRepo, benchmarkRepo, publisher, metrics, appLogger)
	classificationSvc := appservice.NewClassificationAppService(tenantRepo, resolver, appLogger)

	router := httpiface.NewRouter(
		cfg,
		appLogger,
		tracer.Tracer(),
		metrics,
		limiter,
		handlers.NewHealthHandler(db, redisConn, appLogger),
		handlers.NewAnalyticsHandler(analyticsSvc, appLogger),
		handlers.NewClassificationHandler(classificationSvc, metrics, appLogger),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- router.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			appLogger.Fatal(ctx, "http server failed", err)
		}
	case sig := <-quit:
		appLogger.Info(ctx, "shutting down", logger.Fields{"signal": sig.String()})
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := router.Stop(shutdownCtx); err != nil {
		appLogger.Error(shutdownCtx, "forced shutdown", err)
	}
	if err := tracer.Shutdown(shutdownCtx); err != nil {
		appLogger.Warn(shutdownCtx, "tracer shutdown failed", logger.Fields{"error": err.Error()})
	}
}
