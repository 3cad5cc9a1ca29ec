package api

import (
	"net/http"

	"github.com/gorilla/mux"

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
	"github.com/m04kA/SMC-PoolService/internal/api/middleware"
)

// Handlers набор хендлеров API
type Handlers struct {
	ListLanes         *listLanesHandler.Handler
	GetLane           *getLaneHandler.Handler
	OccupancyStats    *getOccupancyStatsHandler.Handler
	ExportLanes       *exportLanesHandler.Handler
	CheckConflict     *checkConflictHandler.Handler
	ReleaseLane       *releaseLaneHandler.Handler
	SetMaintenance    *setMaintenanceHandler.Handler
	ClearMaintenance  *clearMaintenanceHandler.Handler
	ListClasses       *listClassesHandler.Handler
	GetClass          *getClassHandler.Handler
	AssignClass       *assignClassHandler.Handler
	CreateReservation *createReservationHandler.Handler
	CancelReservation *cancelReservationHandler.Handler
	GetReservation    *getReservationHandler.Handler
	UserReservations  *getUserReservationsHandler.Handler
}

// Options настройки роутера
type Options struct {
	Logger middleware.Logger

	// Metrics nil отключает HTTP метрики и endpoint для prometheus
	Metrics        middleware.HTTPMetrics
	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter собирает роутер со всеми маршрутами /api/v1
func NewRouter(h Handlers, opts Options) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.RequestLogging(opts.Logger))

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		if opts.MetricsHandler != nil {
			r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
		}
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Дорожки ---
	// stats и export регистрируются раньше {laneNumber}
	api.HandleFunc("/lanes", h.ListLanes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/lanes/stats", h.OccupancyStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/lanes/export", h.ExportLanes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/lanes/{laneNumber:[0-9]+}", h.GetLane.Handle).Methods(http.MethodGet)
	api.HandleFunc("/lanes/{laneNumber:[0-9]+}/conflicts", h.CheckConflict.Handle).Methods(http.MethodGet)

	// --- Классы ---
	api.HandleFunc("/classes", h.ListClasses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/classes/{classId}", h.GetClass.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление дорожками (для администратора бассейна) ---
	protected.HandleFunc("/lanes/{laneNumber:[0-9]+}/release", h.ReleaseLane.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/lanes/{laneNumber:[0-9]+}/maintenance", h.SetMaintenance.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/lanes/{laneNumber:[0-9]+}/maintenance", h.ClearMaintenance.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/classes/{classId}/assign-lane", h.AssignClass.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", h.CreateReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", h.UserReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", h.GetReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", h.CancelReservation.Handle).Methods(http.MethodPatch)

	return r
}
