package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	applyEditHandler "github.com/aldarwish/Studio-BookingService/internal/api/handlers/apply_edit"
	approveBookingHandler "github.com/aldarwish/Studio-BookingService/internal/api/handlers/approve_booking"
	cancelBookingHandler "github.com/aldarwish/Studio-BookingService/internal/api/handlers/cancel_booking"
	evaluateBookingHandler "github.com/aldarwish/Studio-BookingService/internal/api/handlers/evaluate_booking"
	getBookingHandler "github.com/aldarwish/Studio-BookingService/internal/api/handlers/get_booking"
	getDayScheduleHandler "github.com/aldarwish/Studio-BookingService/internal/api/handlers/get_day_schedule"
	listConflictsHandler "github.com/aldarwish/Studio-BookingService/internal/api/handlers/list_conflicts"
	resolveConflictHandler "github.com/aldarwish/Studio-BookingService/internal/api/handlers/resolve_conflict"
	submitBookingHandler "github.com/aldarwish/Studio-BookingService/internal/api/handlers/submit_booking"
	"github.com/aldarwish/Studio-BookingService/internal/api/middleware"
	"github.com/aldarwish/Studio-BookingService/internal/config"
	bookingRepo "github.com/aldarwish/Studio-BookingService/internal/infra/storage/booking"
	conflictRepo "github.com/aldarwish/Studio-BookingService/internal/infra/storage/conflict"
	bookingsService "github.com/aldarwish/Studio-BookingService/internal/service/bookings"
	conflictsService "github.com/aldarwish/Studio-BookingService/internal/service/conflicts"
	applyEditUC "github.com/aldarwish/Studio-BookingService/internal/usecase/apply_edit"
	evaluateBookingUC "github.com/aldarwish/Studio-BookingService/internal/usecase/evaluate_booking"
	submitBookingUC "github.com/aldarwish/Studio-BookingService/internal/usecase/submit_booking"
	"github.com/aldarwish/Studio-BookingService/internal/watcher"
	"github.com/aldarwish/Studio-BookingService/pkg/dbmetrics"
	"github.com/aldarwish/Studio-BookingService/pkg/logger"
	"github.com/aldarwish/Studio-BookingService/pkg/metrics"
	"github.com/aldarwish/Studio-BookingService/pkg/simpletxmanager"
	"github.com/aldarwish/Studio-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting Studio-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		conflictRepository *conflictRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		conflictRepository = conflictRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		conflictRepository = conflictRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	conflictSvc := conflictsService.NewService(
		conflictRepository,
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	evaluateBookingUseCase := evaluateBookingUC.NewUseCase(bookingRepository, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(bookingRepository, txMgr, log)
	applyEditUseCase := applyEditUC.NewUseCase(
		bookingRepository,
		conflictRepository,
		txMgr,
		log,
	)

	// Наблюдатель за pending-конфликтами: push через LISTEN/NOTIFY
	// плюс фолбэк-опрос по таймеру
	var conflictWatcher *watcher.Watcher
	if cfg.Watcher.Enabled {
		// Типизированный nil в интерфейсе обошел бы проверку gauge != nil
		var gauge watcher.ConflictGauge
		if metricsCollector != nil {
			gauge = metricsCollector
		}
		conflictWatcher = watcher.New(
			cfg.Database.DSN(),
			cfg.Watcher.Channel,
			time.Duration(cfg.Watcher.PollInterval)*time.Second,
			conflictRepository,
			gauge,
			func(count int) {
				if count > 0 {
					log.Warn("Pending edit conflicts awaiting resolution: %d", count)
				}
			},
			log,
		)
		conflictWatcher.Start()
		defer conflictWatcher.Stop()
		log.Info("Conflict watcher started (channel=%s, poll=%ds)",
			cfg.Watcher.Channel, cfg.Watcher.PollInterval)
	}

	// Инициализируем handlers
	evaluateBooking := evaluateBookingHandler.NewHandler(evaluateBookingUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	applyEdit := applyEditHandler.NewHandler(applyEditUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	approveBooking := approveBookingHandler.NewHandler(bookingSvc, log)
	listConflicts := listConflictsHandler.NewHandler(conflictSvc, log)
	resolveConflict := resolveConflictHandler.NewHandler(conflictSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без идентификации оператора)
	// ============================================================

	// Проверка слота без создания бронирования (первая фаза)
	api.HandleFunc("/bookings/evaluate", evaluateBooking.Handle).Methods(http.MethodPost)

	// Расписание дня
	api.HandleFunc("/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Operator-Name header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Identity)

	// --- Бронирования ---
	// Создание бронирования (вторая фаза)
	protected.HandleFunc("/bookings", submitBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Правка с optimistic-проверкой версии
	protected.HandleFunc("/bookings/{bookingId}", applyEdit.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Решение менеджера по inquiry-бронированию
	protected.HandleFunc("/bookings/{bookingId}/approve", approveBooking.Handle).Methods(http.MethodPatch)

	// --- Конфликты редактирования (для менеджеров) ---
	// Список открытых конфликтов
	protected.HandleFunc("/conflicts", listConflicts.Handle).Methods(http.MethodGet)

	// Решение по конфликту
	protected.HandleFunc("/conflicts/{conflictId}/resolve", resolveConflict.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
