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

	cancelBookingHandler "github.com/m04kA/SMC-HotelDashboard/internal/api/handlers/cancel_booking"
	exportGridHandler "github.com/m04kA/SMC-HotelDashboard/internal/api/handlers/export_grid"
	getAvailabilityHandler "github.com/m04kA/SMC-HotelDashboard/internal/api/handlers/get_availability"
	getCompanyRoomsHandler "github.com/m04kA/SMC-HotelDashboard/internal/api/handlers/get_company_rooms"
	getFreeRoomsHandler "github.com/m04kA/SMC-HotelDashboard/internal/api/handlers/get_free_rooms"
	getGridHandler "github.com/m04kA/SMC-HotelDashboard/internal/api/handlers/get_grid"
	getJournalHandler "github.com/m04kA/SMC-HotelDashboard/internal/api/handlers/get_journal"
	getMonthlyStatsHandler "github.com/m04kA/SMC-HotelDashboard/internal/api/handlers/get_monthly_stats"
	getRoomGuestsHandler "github.com/m04kA/SMC-HotelDashboard/internal/api/handlers/get_room_guests"
	healthHandler "github.com/m04kA/SMC-HotelDashboard/internal/api/handlers/health"
	listRoomsHandler "github.com/m04kA/SMC-HotelDashboard/internal/api/handlers/list_rooms"
	refreshRoomsHandler "github.com/m04kA/SMC-HotelDashboard/internal/api/handlers/refresh_rooms"
	registerBookingHandler "github.com/m04kA/SMC-HotelDashboard/internal/api/handlers/register_booking"
	shaxmatkaPageHandler "github.com/m04kA/SMC-HotelDashboard/internal/api/handlers/shaxmatka_page"
	"github.com/m04kA/SMC-HotelDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-HotelDashboard/internal/config"
	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	journalRepo "github.com/m04kA/SMC-HotelDashboard/internal/infra/storage/journal"
	"github.com/m04kA/SMC-HotelDashboard/internal/integrations/hotelbackend"
	dashboardService "github.com/m04kA/SMC-HotelDashboard/internal/service/dashboard"
	"github.com/m04kA/SMC-HotelDashboard/internal/usecase/bookingform"
	cancelBookingUC "github.com/m04kA/SMC-HotelDashboard/internal/usecase/cancel_booking"
	getHomeSummaryUC "github.com/m04kA/SMC-HotelDashboard/internal/usecase/get_home_summary"
	registerBookingUC "github.com/m04kA/SMC-HotelDashboard/internal/usecase/register_booking"
	"github.com/m04kA/SMC-HotelDashboard/pkg/logger"
	"github.com/m04kA/SMC-HotelDashboard/pkg/metrics"
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

	log.Info("Starting SMC-HotelDashboard...")
	log.Info("Configuration loaded from config.toml")

	location, err := time.LoadLocation(cfg.Dashboard.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Dashboard.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		backendMetrics   hotelbackend.Metrics
		dashboardOpts    = []dashboardService.Option{
			dashboardService.WithLocation(location),
			dashboardService.WithGridDays(cfg.Dashboard.GridDays),
		}
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		backendMetrics = metricsCollector
		dashboardOpts = append(dashboardOpts, dashboardService.WithMetrics(metricsCollector))
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Журнал броней пишется в PostgreSQL, только если база включена
	type JournalStore interface {
		Record(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
		List(ctx context.Context, filter domain.JournalFilter) ([]*domain.JournalEntry, error)
	}
	var journal JournalStore = journalRepo.NewNopRepository()

	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := db.PingContext(pingCtx); err != nil {
			cancel()
			log.Fatal("Failed to ping database: %v", err)
		}

		repo := journalRepo.NewRepository(db)
		if err := repo.EnsureSchema(pingCtx); err != nil {
			cancel()
			log.Fatal("Failed to prepare journal schema: %v", err)
		}
		cancel()

		journal = repo
		log.Info("Booking journal enabled (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	} else {
		log.Info("Booking journal disabled")
	}

	// Клиент бэкенда гостиницы
	backend := hotelbackend.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
		backendMetrics,
	)
	log.Info("Hotel backend client initialized (url=%s, timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Инициализируем сервисы
	dashboardSvc := dashboardService.NewService(backend, log, dashboardOpts...)
	parser := bookingform.NewParser(cfg.Dashboard.PhoneRegion, cfg.Dashboard.NormalizePhone)

	// Инициализируем use cases
	registerBookingUseCase := registerBookingUC.NewUseCase(backend, journal, dashboardSvc, parser, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(backend, journal, dashboardSvc, parser, log)
	homeSummaryUseCase := getHomeSummaryUC.NewUseCase(backend, dashboardSvc, log)

	// Инициализируем handlers
	getGrid := getGridHandler.NewHandler(dashboardSvc, log)
	exportGrid := exportGridHandler.NewHandler(dashboardSvc, nil, log)
	listRooms := listRoomsHandler.NewHandler(dashboardSvc)
	refreshRooms := refreshRoomsHandler.NewHandler(dashboardSvc, log)
	getRoomGuests := getRoomGuestsHandler.NewHandler(dashboardSvc, log)
	getFreeRooms := getFreeRoomsHandler.NewHandler(dashboardSvc, log)
	getCompanyRooms := getCompanyRoomsHandler.NewHandler(dashboardSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(homeSummaryUseCase, log)
	getMonthlyStats := getMonthlyStatsHandler.NewHandler(homeSummaryUseCase, dashboardSvc, log)
	registerBooking := registerBookingHandler.NewHandler(registerBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getJournal := getJournalHandler.NewHandler(journal, log)
	shaxmatkaPage := shaxmatkaPageHandler.NewHandler(dashboardSvc, log)
	health := healthHandler.NewHandler(dashboardSvc)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)
	r.HandleFunc("/", shaxmatkaPage.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Шахматка ---
	api.HandleFunc("/grid", getGrid.Handle).Methods(http.MethodGet)
	api.HandleFunc("/grid/export", exportGrid.Handle).Methods(http.MethodGet)

	// --- Номера ---
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/refresh", refreshRooms.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/free", getFreeRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/by-company", getCompanyRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{number}/guests", getRoomGuests.Handle).Methods(http.MethodGet)

	// --- Статистика ---
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stats/monthly", getMonthlyStats.Handle).Methods(http.MethodGet)

	// --- Брони ---
	api.HandleFunc("/bookings", registerBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", cancelBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/journal", getJournal.Handle).Methods(http.MethodGet)

	// Первая загрузка номеров идет в фоне
	if cfg.Dashboard.RefreshOnStart {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Duration(cfg.Backend.Timeout)*time.Second)
			defer cancel()
			if err := dashboardSvc.Refresh(ctx); err != nil {
				log.Warn("Initial rooms refresh failed: %v", err)
				return
			}
			log.Info("Initial rooms refresh done: rooms=%d", len(dashboardSvc.Rooms()))
		}()
	}

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
