package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/paper_signal_service/internal/auth"
	"github.com/shenikar/paper_signal_service/internal/broadcast"
	"github.com/shenikar/paper_signal_service/internal/config"
	v1 "github.com/shenikar/paper_signal_service/internal/handler/http/v1"
	"github.com/shenikar/paper_signal_service/internal/metrics"
	"github.com/shenikar/paper_signal_service/internal/realtime"
	"github.com/shenikar/paper_signal_service/internal/repository"
	"github.com/shenikar/paper_signal_service/internal/service"
	"github.com/shenikar/paper_signal_service/internal/worker"
	"github.com/shenikar/paper_signal_service/pkg/logger"
	"github.com/shenikar/paper_signal_service/pkg/postgres"
	redisclient "github.com/shenikar/paper_signal_service/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/paper_signal_service/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Paper Signal Service API
// @version 1.0
// @description Real-time "need toilet paper" signals for nearby restrooms.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, postgres.Options{
		URL:         cfg.DatabaseURL,
		MaxConns:    cfg.DBMaxConns,
		PingTimeout: 5 * time.Second,
	})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Хаб websocket-подписчиков локального инстанса
	hub := realtime.NewHub(log)
	go hub.Run(ctx)

	// События всех инстансов приходят через Redis и раздаются по комнатам
	subscriber := broadcast.NewSubscriber(redisClient, hub, log)
	if err := subscriber.Start(ctx); err != nil {
		log.Fatalf("Failed to subscribe to signal events: %v", err)
	}
	publisher := broadcast.NewBreakerPublisher(broadcast.NewRedisPublisher(redisClient), broadcast.BreakerSettings{
		FailureThreshold: cfg.BroadcastFailureThreshold,
		OpenTimeout:      cfg.BroadcastBreakerTimeout,
	}, log)

	// Инициализация репозиториев
	signalRepo := repository.NewSignalRepository(dbpool)

	// Инициализация сервисов
	signalService := service.NewSignalService(signalRepo, log, publisher)

	// Очистка истекших и отмененных сигналов
	reaper := worker.NewReaper(signalService, log, cfg.ReaperInterval, cfg.SignalRetention)
	reaper.Start(ctx)

	verifier, err := auth.NewVerifier(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to create token verifier: %v", err)
	}
	upgrader := realtime.NewUpgrader(hub, cfg.WSAllowedOrigins)

	// Инициализация хэндлеров
	handler := v1.NewHandler(signalService, upgrader, verifier, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(metrics.GinMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus-метрики
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// websocket-соединения не закрываются через Shutdown, их закрывает хаб
	cancel()
	hub.Close()

	log.Info("Server gracefully stopped")
}
