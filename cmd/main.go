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

	cancelBookingHandler "github.com/larespalmas/hotel-booking-service/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/larespalmas/hotel-booking-service/internal/api/handlers/check_availability"
	createBookingHandler "github.com/larespalmas/hotel-booking-service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/larespalmas/hotel-booking-service/internal/api/handlers/get_booking"
	getRoomHandler "github.com/larespalmas/hotel-booking-service/internal/api/handlers/get_room"
	getRoomBookingsHandler "github.com/larespalmas/hotel-booking-service/internal/api/handlers/get_room_bookings"
	getSettingsHandler "github.com/larespalmas/hotel-booking-service/internal/api/handlers/get_settings"
	listRoomsHandler "github.com/larespalmas/hotel-booking-service/internal/api/handlers/list_rooms"
	updateBookingStatusHandler "github.com/larespalmas/hotel-booking-service/internal/api/handlers/update_booking_status"
	updateSettingHandler "github.com/larespalmas/hotel-booking-service/internal/api/handlers/update_setting"
	"github.com/larespalmas/hotel-booking-service/internal/api/middleware"
	"github.com/larespalmas/hotel-booking-service/internal/config"
	bookingRepo "github.com/larespalmas/hotel-booking-service/internal/infra/storage/booking"
	roomRepo "github.com/larespalmas/hotel-booking-service/internal/infra/storage/room"
	settingsRepo "github.com/larespalmas/hotel-booking-service/internal/infra/storage/settings"
	mailerClient "github.com/larespalmas/hotel-booking-service/internal/integrations/mailerservice"
	bookingsService "github.com/larespalmas/hotel-booking-service/internal/service/bookings"
	roomsService "github.com/larespalmas/hotel-booking-service/internal/service/rooms"
	settingsService "github.com/larespalmas/hotel-booking-service/internal/service/settings"
	checkAvailabilityUC "github.com/larespalmas/hotel-booking-service/internal/usecase/check_availability"
	createBookingUC "github.com/larespalmas/hotel-booking-service/internal/usecase/create_booking"
	"github.com/larespalmas/hotel-booking-service/pkg/dbmetrics"
	"github.com/larespalmas/hotel-booking-service/pkg/logger"
	"github.com/larespalmas/hotel-booking-service/pkg/metrics"
	"github.com/larespalmas/hotel-booking-service/pkg/simpletxmanager"
	"github.com/larespalmas/hotel-booking-service/pkg/txmanager"
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

	log.Info("Starting hotel-booking-service...")
	log.Info("Configuration loaded from config.toml")

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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		roomRepository     *roomRepo.Repository
		settingsRepository *settingsRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Клиент mailer-сервиса (опционален: без него бронирования создаются,
	// но письма-подтверждения не уходят)
	var mailer createBookingUC.MailerClient
	if cfg.Mailer.Enabled {
		mailer = mailerClient.NewClient(
			cfg.Mailer.URL,
			time.Duration(cfg.Mailer.Timeout)*time.Second,
			log,
		)
		log.Info("Mailer client initialized (url=%s, timeout=%ds)", cfg.Mailer.URL, cfg.Mailer.Timeout)
	}

	// Инициализируем сервисы
	bookingsSvc := bookingsService.NewService(bookingRepository, roomRepository, txMgr, log)
	roomsSvc := roomsService.NewService(roomRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		roomRepository,
		bookingRepository,
		settingsRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		settingsRepository,
		mailer,
		txMgr,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getRoomBookings := getRoomBookingsHandler.NewHandler(bookingsSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomsSvc, log)
	getRoom := getRoomHandler.NewHandler(roomsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSetting := updateSettingHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Каталог номеров
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{slug:[a-z0-9-]+}", getRoom.Handle).Methods(http.MethodGet)

	// Проверка доступности номера на интервал дат
	api.HandleFunc("/rooms/{roomId:[0-9]+}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Просмотр и отмена бронирования (гость подтверждает владение email-ом)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-ID header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth)

	// Бронирования номера
	admin.HandleFunc("/rooms/{roomId:[0-9]+}/bookings", getRoomBookings.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Настройки отеля
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings/{key}", updateSetting.Handle).Methods(http.MethodPut)

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
