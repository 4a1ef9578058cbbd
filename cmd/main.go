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

	cancelReservationHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/cancel_reservation"
	createBlockedTimeHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/create_blocked_time"
	createReservationHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/create_reservation"
	createServiceHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/create_service"
	deleteBlockedTimeHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/delete_blocked_time"
	deleteServiceHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/delete_service"
	getAvailabilityHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_availability"
	getCustomerHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_customer"
	getReservationHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_reservation"
	getSettingsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_settings"
	listBlockedTimesHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/list_blocked_times"
	listCustomersHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/list_customers"
	listReservationsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/list_reservations"
	listServicesHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/list_services"
	updateReservationStatusHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/update_reservation_status"
	updateServiceHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/update_service"
	updateSettingsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/update_settings"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	"github.com/m04kA/Salon-BookingService/internal/config"
	blockedRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/blockedtime"
	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	couponRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/coupon"
	customerRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/customer"
	reservationRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/reservation"
	settingsStore "github.com/m04kA/Salon-BookingService/internal/infra/storage/settingsstore"
	blockedTimesService "github.com/m04kA/Salon-BookingService/internal/service/blockedtimes"
	settingsService "github.com/m04kA/Salon-BookingService/internal/service/businesssettings"
	catalogService "github.com/m04kA/Salon-BookingService/internal/service/catalog"
	customersService "github.com/m04kA/Salon-BookingService/internal/service/customers"
	reservationsService "github.com/m04kA/Salon-BookingService/internal/service/reservations"
	"github.com/m04kA/Salon-BookingService/internal/settings"
	createReservationUC "github.com/m04kA/Salon-BookingService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/Salon-BookingService/internal/usecase/get_availability"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/logger"
	"github.com/m04kA/Salon-BookingService/pkg/metrics"
	"github.com/m04kA/Salon-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/Salon-BookingService/pkg/txmanager"
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

	log.Info("Starting Salon-BookingService...")
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
		reservationRepository *reservationRepo.Repository
		blockedRepository     *blockedRepo.Repository
		customerRepository    *customerRepo.Repository
		couponRepository      *couponRepo.Repository
		catalogRepository     *catalogRepo.Repository
		settingsRepository    *settingsStore.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		blockedRepository = blockedRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		couponRepository = couponRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		settingsRepository = settingsStore.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		blockedRepository = blockedRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		couponRepository = couponRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		settingsRepository = settingsStore.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Кэш бизнес-настроек: единственное разделяемое состояние процесса
	settingsCache := settings.NewCache(
		settingsRepository,
		time.Duration(cfg.Settings.CacheTTL)*time.Second,
		log,
	)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, customerRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, settingsCache, log)
	blockedSvc := blockedTimesService.NewService(blockedRepository, log)
	customersSvc := customersService.NewService(customerRepository, couponRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		settingsCache,
		reservationRepository,
		blockedRepository,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		settingsCache,
		reservationRepository,
		blockedRepository,
		customerRepository,
		couponRepository,
		catalogRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	createBlockedTime := createBlockedTimeHandler.NewHandler(blockedSvc, log)
	listBlockedTimes := listBlockedTimesHandler.NewHandler(blockedSvc, log)
	deleteBlockedTime := deleteBlockedTimeHandler.NewHandler(blockedSvc, log)
	listCustomers := listCustomersHandler.NewHandler(customersSvc, log)
	getCustomer := getCustomerHandler.NewHandler(customersSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность слотов на день
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Каталог услуг (только активные)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Настройки салона (нужны клиентскому календарю)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (HTTP Basic auth)
	// ============================================================

	auth := middleware.NewBasicAuth(cfg.Admin.Username, cfg.Admin.Password, log)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(auth.Middleware)

	// Доступность глазами админа (заблокированные слоты видны как свободные)
	admin.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Запись клиента админом (в том числе на заблокированное время)
	admin.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// --- Записи ---
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{id}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// --- Настройки ---
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// --- Блокировки времени ---
	admin.HandleFunc("/blocked-times", createBlockedTime.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-times", listBlockedTimes.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-times/{id}", deleteBlockedTime.Handle).Methods(http.MethodDelete)

	// --- Клиенты ---
	admin.HandleFunc("/customers", listCustomers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/customers/{id}", getCustomer.Handle).Methods(http.MethodGet)

	// --- Каталог услуг ---
	admin.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", deleteService.Handle).Methods(http.MethodDelete)

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
