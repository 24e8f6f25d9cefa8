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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/animal_patrol_system/internal/config"
	v1 "github.com/shenikar/animal_patrol_system/internal/handler/http/v1"
	"github.com/shenikar/animal_patrol_system/internal/repository"
	"github.com/shenikar/animal_patrol_system/internal/repository/memory"
	"github.com/shenikar/animal_patrol_system/internal/service"
	"github.com/shenikar/animal_patrol_system/internal/webhook"
	"github.com/shenikar/animal_patrol_system/pkg/logger"
	"github.com/shenikar/animal_patrol_system/pkg/postgres"
	redisclient "github.com/shenikar/animal_patrol_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/animal_patrol_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// repositories - набор хранилищ, выбранный через STORAGE_DRIVER
type repositories struct {
	incidents service.IncidentRepository
	schedules service.ScheduleRepository
	staff     service.StaffRepository
	stats     service.StatsRepository
}

// @title Animal Patrol System API
// @version 1.0
// @description Dispatch API for animal-control incidents and field patrol scheduling.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
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

func postgresRepositories(dbpool *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config) repositories {
	return repositories{
		incidents: repository.NewIncidentRepository(dbpool, redisClient, cfg.IncidentCacheTTL),
		schedules: repository.NewScheduleRepository(dbpool),
		staff:     repository.NewStaffRepository(dbpool),
		stats:     repository.NewStatsRepository(dbpool),
	}
}

func memoryRepositories() repositories {
	store := memory.NewStore()
	return repositories{
		incidents: memory.NewIncidentRepository(store),
		schedules: memory.NewScheduleRepository(store),
		staff:     memory.NewStaffRepository(store),
		stats:     memory.NewStatsRepository(store),
	}
}

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Println(config.Usage())
		return
	}

	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		repos            repositories
		webhookPublisher webhook.Publisher = webhook.NopPublisher{}
		webhookWorker    *webhook.Worker
	)

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		log.Warn("Using in-memory storage, data will be lost on restart")
		repos = memoryRepositories()

	default:
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
		redisClient, err := redisclient.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		// Издатель и воркер вебхуков для обновления диспетчерского UI
		webhookPublisher = webhook.NewRedisPublisher(redisClient)
		webhookWorker = webhook.NewWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)

		repos = postgresRepositories(dbpool, redisClient, cfg)
	}

	// Инициализация сервисов
	detector := service.NewConflictDetector(repos.schedules, cfg.Location())
	incidentService := service.NewIncidentService(repos.incidents, log, webhookPublisher)
	scheduleService := service.NewScheduleService(repos.schedules, repos.incidents, repos.staff, detector, log, webhookPublisher)
	staffService := service.NewStaffService(repos.staff, log)
	statsService := service.NewStatsService(repos.stats, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, scheduleService, staffService, statsService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithFields(logrus.Fields{
		"port":     cfg.HTTPPort,
		"storage":  cfg.StorageDriver,
		"timezone": cfg.Location().String(),
	}).Info("HTTP server started")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Останавливаем воркер и ждем, пока он доработает текущее событие
	cancel()
	if webhookWorker != nil {
		select {
		case <-webhookWorker.Done():
		case <-shutdownCtx.Done():
			log.Warn("Webhook worker did not stop in time")
		}
	}

	log.Info("Server gracefully stopped")
}
