package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/api/router"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/config"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/infra/sessions"
	priceRepo "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/infra/storage/price"
	reservationRepo "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/infra/storage/reservation"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/infra/storage/schema"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/integrations/amqpnotify"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/integrations/notify"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/integrations/webhook"
	authService "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/auth"
	pricesService "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/prices"
	reservationsService "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/service/reservations"
	createReservationUC "github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/usecase/create_reservation"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/dbmetrics"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/logger"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/metrics"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/txmanager"
)

// sessionStore хранилище сессий с освобождением ресурсов
type sessionStore interface {
	authService.SessionStore
	Close() error
}

func main() {
	// .env необязателен, переменные окружения процесса имеют приоритет
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting reserva-cancha backend...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	log.Debug("Database pool: max_open=%d, max_idle=%d, max_lifetime=%ds",
		cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	// Проверяем соединение
	if err := db.PingContext(startupCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	if cfg.Database.URL != "" {
		log.Info("Successfully connected to database (url)")
	} else {
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	// Репозитории работают через обёртку с метриками или напрямую с *sql.DB
	var (
		executor dbmetrics.DBExecutor
		beginner txmanager.Beginner
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		beginner = wrappedDB
		log.Info("Database metrics collection started")
	} else {
		executor = db
		beginner = txmanager.SQLBeginner{DB: db}
	}

	// Схема и начальные цены
	if err := schema.Init(startupCtx, executor); err != nil {
		log.Fatal("Failed to initialize schema: %v", err)
	}

	seeds := make([]domain.Price, 0, len(cfg.Pricing.Canchas))
	for _, c := range cfg.Pricing.Canchas {
		seeds = append(seeds, domain.Price{Cancha: c.Nombre, Precio: c.Precio})
	}
	if err := schema.SeedPrices(startupCtx, executor, seeds); err != nil {
		log.Fatal("Failed to seed prices: %v", err)
	}
	log.Info("Schema ready, %d canchas seeded", len(seeds))

	// Хранилище сессий администратора
	var store sessionStore
	switch cfg.Sessions.Backend {
	case config.SessionBackendRedis:
		redisStore, err := sessions.NewRedisStore(startupCtx, sessions.RedisOptions{
			Addr:      cfg.Sessions.Redis.Addr,
			Password:  cfg.Sessions.Redis.Password,
			DB:        cfg.Sessions.Redis.DB,
			KeyPrefix: cfg.Sessions.Redis.KeyPrefix,
		})
		if err != nil {
			log.Fatal("Failed to initialize redis session store: %v", err)
		}
		store = redisStore
		log.Info("Admin sessions stored in redis (addr=%s)", cfg.Sessions.Redis.Addr)
	default:
		store = sessions.NewMemoryStore()
		log.Info("Admin sessions stored in memory")
	}
	defer store.Close()

	// Каналы уведомлений о новых бронированиях
	var notifiers []notify.Notifier
	notifyTimeout := time.Duration(cfg.Webhook.Timeout) * time.Second

	if cfg.Webhook.URL != "" {
		notifiers = append(notifiers, webhook.NewClient(cfg.Webhook.URL, notifyTimeout))
		log.Info("Webhook notifications enabled (timeout=%ds)", cfg.Webhook.Timeout)
	}

	if cfg.AMQP.URL != "" {
		publisher, err := amqpnotify.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.RoutingKey)
		if err != nil {
			log.Error("AMQP notifications disabled: %v", err)
		} else {
			defer publisher.Close()
			notifiers = append(notifiers, publisher)
			log.Info("AMQP notifications enabled (exchange=%s, routing_key=%s)", cfg.AMQP.Exchange, cfg.AMQP.RoutingKey)
		}
	}

	dispatcher := notify.NewDispatcher(notifiers, notifyTimeout, metricsCollector, log)
	if !dispatcher.Enabled() {
		log.Info("Reservation notifications disabled: no channel configured")
	}

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(executor)
	priceRepository := priceRepo.NewRepository(executor)
	txMgr := txmanager.NewTransactionManager(beginner)

	// Инициализируем сервисы
	authSvc := authService.NewService(authService.Credentials{
		Email:        cfg.Admin.Email,
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
	}, store, log)
	pricesSvc := pricesService.NewService(priceRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, uint64(cfg.Reservations.ListLimit), log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		priceRepository,
		txMgr,
		dispatcher,
		metricsCollector,
		log,
	)

	// Настраиваем роутер
	handler := router.NewRouter(router.Dependencies{
		Auth:              authSvc,
		Prices:            pricesSvc,
		Reservations:      reservationsSvc,
		CreateReservation: createReservationUseCase,
		Metrics:           metricsCollector,
		MetricsPath:       cfg.Metrics.Path,
		ServiceName:       cfg.Metrics.ServiceName,
		CORSOrigin:        cfg.Server.CORSOrigin,
		Logger:            log,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся уже запущенных уведомлений
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Warn("Pending notifications dropped: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
