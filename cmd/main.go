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

	"github.com/safarnexus/hazard_reporting_system/internal/config"
	v1 "github.com/safarnexus/hazard_reporting_system/internal/handler/http/v1"
	"github.com/safarnexus/hazard_reporting_system/internal/redact"
	"github.com/safarnexus/hazard_reporting_system/internal/repository"
	"github.com/safarnexus/hazard_reporting_system/internal/service"
	"github.com/safarnexus/hazard_reporting_system/internal/storage"
	"github.com/safarnexus/hazard_reporting_system/internal/webhook"
	"github.com/safarnexus/hazard_reporting_system/pkg/logger"
	"github.com/safarnexus/hazard_reporting_system/pkg/postgres"
	redisclient "github.com/safarnexus/hazard_reporting_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/safarnexus/hazard_reporting_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Hazard Reporting System API
// @version 1.0
// @description Location-based road hazard reporting backend: geotagged photo ingestion with face redaction, durable image storage and proximity queries.
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
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newBlobStore выбирает бэкенд хранилища один раз при старте;
// бизнес-логика дальше работает только с интерфейсом
func newBlobStore(ctx context.Context, cfg *config.Config) (storage.BlobStore, error) {
	switch cfg.StorageBackend {
	case "cloudinary":
		return storage.NewCloudinaryStore(cfg.Cloudinary)
	default:
		return storage.NewMinioStore(ctx, cfg.Minio)
	}
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
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Загрузка каскада и сборка редактора изображений
	cascade, err := os.ReadFile(cfg.CascadeFile)
	if err != nil {
		log.Fatalf("Failed to read face cascade %s: %v", cfg.CascadeFile, err)
	}
	detector, err := redact.NewPigoDetector(cascade)
	if err != nil {
		log.Fatalf("Failed to initialize face detector: %v", err)
	}
	redactor := redact.NewRedactor(detector)

	// Явная сборка хранилища при старте, никаких ленивых синглтонов:
	// ошибки конфигурации всплывают здесь, а не на первом запросе
	blobStore, err := newBlobStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize blob storage (%s): %v", cfg.StorageBackend, err)
	}
	log.Infof("Blob storage backend initialized: %s", cfg.StorageBackend)

	// Инициализация издателя событий об опасностях
	eventPublisher := webhook.NewRedisEventPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	hazardRepo := repository.NewHazardRepository(dbpool, redisClient)
	userRepo := repository.NewUserRepository(dbpool)

	// Инициализация сервисов
	hazardService := service.NewHazardService(hazardRepo, redactor, blobStore, eventPublisher, log)
	authService := service.NewAuthService(userRepo, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(hazardService, authService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
