package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m04kA/SMC-PoolService/internal/api"
	assignClassHandler "github.com/m04kA/SMC-PoolService/internal/api/handlers/assign_class"
	cancelReservationHandler "github.com/m04kA/SMC-PoolService/internal/api/handlers/cancel_reservation"
	checkConflictHandler "github.com/m04kA/SMC-PoolService/internal/api/handlers/check_conflict"
	clearMaintenanceHandler "github.com/m04kA/SMC-PoolService/internal/api/handlers/clear_maintenance"
	createReservationHandler "github.com/m04kA/SMC-PoolService/internal/api/handlers/create_reservation"
	exportLanesHandler "github.com/m04kA/SMC-PoolService/internal/api/handlers/export_lanes"
	getClassHandler "github.com/m04kA/SMC-PoolService/internal/api/handlers/get_class"
	getLaneHandler "github.com/m04kA/SMC-PoolService/internal/api/handlers/get_lane"
	getOccupancyStatsHandler "github.com/m04kA/SMC-PoolService/internal/api/handlers/get_occupancy_stats"
	getReservationHandler "github.com/m04kA/SMC-PoolService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/m04kA/SMC-PoolService/internal/api/handlers/get_user_reservations"
	listClassesHandler "github.com/m04kA/SMC-PoolService/internal/api/handlers/list_classes"
	listLanesHandler "github.com/m04kA/SMC-PoolService/internal/api/handlers/list_lanes"
	releaseLaneHandler "github.com/m04kA/SMC-PoolService/internal/api/handlers/release_lane"
	setMaintenanceHandler "github.com/m04kA/SMC-PoolService/internal/api/handlers/set_maintenance"
	"github.com/m04kA/SMC-PoolService/internal/api/validator"
	"github.com/m04kA/SMC-PoolService/internal/config"
	"github.com/m04kA/SMC-PoolService/internal/domain"
	classRepo "github.com/m04kA/SMC-PoolService/internal/infra/storage/class"
	reservationRepo "github.com/m04kA/SMC-PoolService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-PoolService/internal/policy"
	"github.com/m04kA/SMC-PoolService/internal/pool"
	classesService "github.com/m04kA/SMC-PoolService/internal/service/classes"
	lanesService "github.com/m04kA/SMC-PoolService/internal/service/lanes"
	reservationsService "github.com/m04kA/SMC-PoolService/internal/service/reservations"
	assignClassUC "github.com/m04kA/SMC-PoolService/internal/usecase/assign_class"
	cancelReservationUC "github.com/m04kA/SMC-PoolService/internal/usecase/cancel_reservation"
	createReservationUC "github.com/m04kA/SMC-PoolService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-PoolService/pkg/logger"
	"github.com/m04kA/SMC-PoolService/pkg/metrics"
)

// nopMetrics заглушка счетчиков бронирований при выключенных метриках
type nopMetrics struct{}

func (nopMetrics) IncReservation(operation, result string) {}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("POOL_CONFIG"); p != "" {
		configPath = p
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

	log.Info("Starting SMC-PoolService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем расписание классов
	var classes []domain.SwimClass
	if cfg.Catalog.ClassesFile != "" {
		classes, err = classRepo.LoadCSV(cfg.Catalog.ClassesFile, time.Now())
		if err != nil {
			log.Fatal("Failed to load classes from %s: %v", cfg.Catalog.ClassesFile, err)
		}
		log.Info("Loaded %d classes from %s", len(classes), cfg.Catalog.ClassesFile)
	}

	// Инициализируем репозитории
	classRepository, err := classRepo.NewRepository(classes)
	if err != nil {
		log.Fatal("Failed to build class catalog: %v", err)
	}
	reservationRepository := reservationRepo.NewRepository()

	// Реестр дорожек: каждое изменение дорожки публикуется в метрики
	var lanes *pool.Manager
	poolOpts := []pool.Option{
		pool.WithLanes(cfg.Pool.Lanes),
		pool.WithLaneCapacity(cfg.Pool.LaneCapacity),
	}
	if metricsCollector != nil {
		poolOpts = append(poolOpts, pool.WithObserver(func(lane domain.Lane) {
			metricsCollector.SetLane(lane.Number, lane.Occupancy, string(lane.Status))
			metricsCollector.SetPoolOccupancy(lanes.OccupancyStats().OccupancyPercent)
		}))
	}
	lanes = pool.NewManager(poolOpts...)

	if metricsCollector != nil {
		for _, lane := range lanes.ListLanes() {
			metricsCollector.SetLane(lane.Number, lane.Occupancy, string(lane.Status))
		}
		metricsCollector.SetPoolOccupancy(0)
	}
	log.Info("Pool initialized: lanes=%d, lane_capacity=%d", lanes.LaneCount(), lanes.LaneCapacity())

	rules := policy.New(
		policy.WithBookingLeadTime(time.Duration(cfg.Policy.BookingLeadMinutes)*time.Minute),
		policy.WithCancellationWindow(time.Duration(cfg.Policy.CancellationWindowMinutes)*time.Minute),
	)

	var reservationMetrics createReservationUC.MetricsRecorder = nopMetrics{}
	if metricsCollector != nil {
		reservationMetrics = metricsCollector
	}

	// Инициализируем сервисы
	laneSvc := lanesService.NewService(lanes, classRepository, log)
	classSvc := classesService.NewService(classRepository, log)
	reservationSvc := reservationsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		classRepository,
		reservationRepository,
		lanes,
		rules,
		reservationMetrics,
		log,
	)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		reservationRepository,
		classRepository,
		lanes,
		rules,
		reservationMetrics,
		log,
	)
	assignClassUseCase := assignClassUC.NewUseCase(
		classRepository,
		lanes,
		log,
	)

	// Инициализируем handlers
	v := validator.New()
	handlers := api.Handlers{
		ListLanes:         listLanesHandler.NewHandler(laneSvc, log),
		GetLane:           getLaneHandler.NewHandler(laneSvc, log),
		OccupancyStats:    getOccupancyStatsHandler.NewHandler(laneSvc, log),
		ExportLanes:       exportLanesHandler.NewHandler(laneSvc, log),
		CheckConflict:     checkConflictHandler.NewHandler(laneSvc, v, log),
		ReleaseLane:       releaseLaneHandler.NewHandler(laneSvc, log),
		SetMaintenance:    setMaintenanceHandler.NewHandler(laneSvc, log),
		ClearMaintenance:  clearMaintenanceHandler.NewHandler(laneSvc, log),
		ListClasses:       listClassesHandler.NewHandler(classSvc, log),
		GetClass:          getClassHandler.NewHandler(classSvc, log),
		AssignClass:       assignClassHandler.NewHandler(assignClassUseCase, v, log),
		CreateReservation: createReservationHandler.NewHandler(createReservationUseCase, v, log),
		CancelReservation: cancelReservationHandler.NewHandler(cancelReservationUseCase, v, log),
		GetReservation:    getReservationHandler.NewHandler(reservationSvc, log),
		UserReservations:  getUserReservationsHandler.NewHandler(reservationSvc, log),
	}

	// Настраиваем роутер
	routerOpts := api.Options{Logger: log}
	if metricsCollector != nil {
		routerOpts.Metrics = metricsCollector
		routerOpts.MetricsPath = cfg.Metrics.Path
		routerOpts.MetricsHandler = metricsCollector.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r := api.NewRouter(handlers, routerOpts)

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
