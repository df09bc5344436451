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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/SMC-CoachScheduling/internal/api/handlers/cancel_booking"
	cancelSeriesHandler "github.com/m04kA/SMC-CoachScheduling/internal/api/handlers/cancel_series"
	createAvailabilityBlockHandler "github.com/m04kA/SMC-CoachScheduling/internal/api/handlers/create_availability_block"
	createBookingHandler "github.com/m04kA/SMC-CoachScheduling/internal/api/handlers/create_booking"
	createRecurringBookingHandler "github.com/m04kA/SMC-CoachScheduling/internal/api/handlers/create_recurring_booking"
	deactivateAvailabilityBlockHandler "github.com/m04kA/SMC-CoachScheduling/internal/api/handlers/deactivate_availability_block"
	getAvailabilityHandler "github.com/m04kA/SMC-CoachScheduling/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CoachScheduling/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-CoachScheduling/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/m04kA/SMC-CoachScheduling/internal/api/handlers/get_client_bookings"
	getPriceHandler "github.com/m04kA/SMC-CoachScheduling/internal/api/handlers/get_price"
	listBookingsHandler "github.com/m04kA/SMC-CoachScheduling/internal/api/handlers/list_bookings"
	scheduleAcademyHandler "github.com/m04kA/SMC-CoachScheduling/internal/api/handlers/schedule_academy"
	updateBookingStatusHandler "github.com/m04kA/SMC-CoachScheduling/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-CoachScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-CoachScheduling/internal/config"
	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	pricingCache "github.com/m04kA/SMC-CoachScheduling/internal/infra/cache/pricing"
	availabilityRepo "github.com/m04kA/SMC-CoachScheduling/internal/infra/storage/availability"
	occurrenceRepo "github.com/m04kA/SMC-CoachScheduling/internal/infra/storage/occurrence"
	pricingRepo "github.com/m04kA/SMC-CoachScheduling/internal/infra/storage/pricing"
	"github.com/m04kA/SMC-CoachScheduling/internal/integrations/payments"
	availabilityService "github.com/m04kA/SMC-CoachScheduling/internal/service/availability"
	bookingService "github.com/m04kA/SMC-CoachScheduling/internal/service/booking"
	occurrencesService "github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences"
	createBookingUC "github.com/m04kA/SMC-CoachScheduling/internal/usecase/create_booking"
	createRecurringBookingUC "github.com/m04kA/SMC-CoachScheduling/internal/usecase/create_recurring_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-CoachScheduling/internal/usecase/get_available_slots"
	getPriceUC "github.com/m04kA/SMC-CoachScheduling/internal/usecase/get_price"
	scheduleAcademyUC "github.com/m04kA/SMC-CoachScheduling/internal/usecase/schedule_academy"
	"github.com/m04kA/SMC-CoachScheduling/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachScheduling/pkg/logger"
	"github.com/m04kA/SMC-CoachScheduling/pkg/metrics"
	"github.com/m04kA/SMC-CoachScheduling/pkg/txmanager"
)

// pricingSource источник тарифной сетки: репозиторий или кэш поверх него
type pricingSource interface {
	GetTable(ctx context.Context, tenantID int64) (domain.PricingTable, error)
}

// paymentNotifier получатель уведомлений о необходимости оплаты
type paymentNotifier interface {
	NotifyPaymentRequired(ctx context.Context, req payments.PaymentRequest) error
}

func main() {
	configPath := "config.toml"
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		configPath = env
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

	log.Info("Starting SMC-CoachScheduling...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены). С nil коллектором обёртки работают без метрик.
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	blockRepository := availabilityRepo.NewRepository(wrappedDB)
	occurrenceRepository := occurrenceRepo.NewRepository(wrappedDB)
	pricingRepository := pricingRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Тарифы: через Redis кэш, если он включён
	var prices pricingSource = pricingRepository
	if cfg.PricingCache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.PricingCache.Addr,
			Password: cfg.PricingCache.Password,
			DB:       cfg.PricingCache.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Недоступный кэш не мешает работе: ошибки кэша деградируют до чтения из БД
			log.Warn("Pricing cache is unreachable at %s: %v", cfg.PricingCache.Addr, err)
		}
		cancelPing()

		prices = pricingCache.New(pricingRepository, redisClient, time.Duration(cfg.PricingCache.TTL)*time.Second, log)
		log.Info("Pricing cache enabled (addr=%s, ttl=%ds)", cfg.PricingCache.Addr, cfg.PricingCache.TTL)
	}

	// Инициализируем интеграцию с платежами
	var notifier paymentNotifier
	switch cfg.Payments.Transport {
	case config.PaymentsTransportHTTP:
		notifier = payments.NewClient(cfg.Payments.URL, time.Duration(cfg.Payments.Timeout)*time.Second, log)
		log.Info("Payments integration: http (url=%s, timeout=%ds)", cfg.Payments.URL, cfg.Payments.Timeout)
	case config.PaymentsTransportKafka:
		publisher := payments.NewPublisher(payments.NewKafkaWriter(cfg.Payments.Brokers), cfg.Payments.Topic, log)
		defer publisher.Close()
		notifier = publisher
		log.Info("Payments integration: kafka (brokers=%s, topic=%s)", cfg.Payments.Brokers, cfg.Payments.Topic)
	default:
		notifier = payments.Nop{}
		log.Info("Payments integration disabled")
	}

	// Инициализируем сервисы
	bookingWriter := bookingService.NewWriter(occurrenceRepository, txMgr, metricsCollector, log)
	occurrenceSvc := occurrencesService.NewService(occurrenceRepository, log)
	availabilitySvc := availabilityService.NewService(blockRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		blockRepository,
		occurrenceRepository,
		prices,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		blockRepository,
		occurrenceRepository,
		prices,
		bookingWriter,
		notifier,
		metricsCollector,
		log,
	)

	createRecurringBookingUseCase := createRecurringBookingUC.NewUseCase(
		blockRepository,
		occurrenceRepository,
		prices,
		bookingWriter,
		notifier,
		metricsCollector,
		log,
	)

	scheduleAcademyUseCase := scheduleAcademyUC.NewUseCase(
		occurrenceRepository,
		prices,
		notifier,
		metricsCollector,
		log,
	)

	getPriceUseCase := getPriceUC.NewUseCase(prices, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createRecurringBooking := createRecurringBookingHandler.NewHandler(createRecurringBookingUseCase, log)
	scheduleAcademy := scheduleAcademyHandler.NewHandler(scheduleAcademyUseCase, log)
	getPrice := getPriceHandler.NewHandler(getPriceUseCase, log)
	getBooking := getBookingHandler.NewHandler(occurrenceSvc, log)
	listBookings := listBookingsHandler.NewHandler(occurrenceSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(occurrenceSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(occurrenceSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(occurrenceSvc, log)
	cancelSeries := cancelSeriesHandler.NewHandler(occurrenceSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	createAvailabilityBlock := createAvailabilityBlockHandler.NewHandler(availabilitySvc, log)
	deactivateAvailabilityBlock := deactivateAvailabilityBlockHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все маршруты в рамках тренера (тенанта)
	api := r.PathPrefix("/api/v1/tenants/{tenantId}").Subrouter()

	// --- Расписание и цены ---
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/prices", getPrice.Handle).Methods(http.MethodGet)

	// --- Блоки доступности ---
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/blocks", createAvailabilityBlock.Handle).Methods(http.MethodPost)
	api.HandleFunc("/availability/blocks/{blockId}", deactivateAvailabilityBlock.Handle).Methods(http.MethodDelete)

	// --- Разовые занятия ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{occurrenceId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{occurrenceId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{occurrenceId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// --- Серии и академии ---
	api.HandleFunc("/recurring-bookings", createRecurringBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/series/{seriesId}", cancelSeries.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/academies/{academyId}/schedule", scheduleAcademy.Handle).Methods(http.MethodPost)

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
	close(stopMetricsCh)

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
