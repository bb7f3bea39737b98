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

	applyStepScheduleHandler "github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers/apply_step_schedule"
	cancelAppointmentHandler "github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers/create_appointment"
	createBlockHandler "github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers/create_block"
	deleteBlockHandler "github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers/delete_block"
	getAppointmentHandler "github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers/get_appointment"
	getDayAgendaHandler "github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers/get_day_agenda"
	getDeadlinesHandler "github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers/get_deadlines"
	getSettingsHandler "github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers/get_settings"
	getTimelineHandler "github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers/get_timeline"
	listHolidaysHandler "github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers/list_holidays"
	replaceHolidaysHandler "github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers/replace_holidays"
	rescheduleAppointmentHandler "github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers/reschedule_appointment"
	updateSettingsHandler "github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers/update_settings"
	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/middleware"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/alerts"
	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/config"
	appointmentRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/appointment"
	blockRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/block"
	holidayRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/holiday"
	projectRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/project"
	settingsRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/settings"
	teamServiceClient "github.com/ottoncsilva/fluxo-mobili-sub002/internal/integrations/teamservice"
	agendaService "github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/agenda"
	settingsService "github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/settings"
	applyStepScheduleUC "github.com/ottoncsilva/fluxo-mobili-sub002/internal/usecase/apply_step_schedule"
	createAppointmentUC "github.com/ottoncsilva/fluxo-mobili-sub002/internal/usecase/create_appointment"
	evaluateDeadlinesUC "github.com/ottoncsilva/fluxo-mobili-sub002/internal/usecase/evaluate_deadlines"
	getTimelineUC "github.com/ottoncsilva/fluxo-mobili-sub002/internal/usecase/get_timeline"
	rescheduleAppointmentUC "github.com/ottoncsilva/fluxo-mobili-sub002/internal/usecase/reschedule_appointment"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/dbmetrics"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/logger"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/metrics"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/simpletxmanager"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting fluxo-scheduling...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	teamClient := teamServiceClient.NewClient(
		cfg.TeamService.URL,
		time.Duration(cfg.TeamService.Timeout)*time.Second,
		log,
	)
	log.Info("TeamService client initialized (url=%s, timeout=%ds)", cfg.TeamService.URL, cfg.TeamService.Timeout)

	// Transaction manager interface shared by use cases and services.
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var executor dbmetrics.DBExecutor = db
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Storage
	appointmentRepository := appointmentRepo.NewRepository(executor)
	blockRepository := blockRepo.NewRepository(executor)
	holidayRepository := holidayRepo.NewRepository(executor)
	projectRepository := projectRepo.NewRepository(executor)
	settingsRepository := settingsRepo.NewRepository(executor)

	// Services
	agendaSvc := agendaService.NewService(
		appointmentRepository,
		blockRepository,
		holidayRepository,
		settingsRepository,
		log,
	)
	settingsSvc := settingsService.NewService(
		settingsRepository,
		holidayRepository,
		txMgr,
		log,
	)

	// Use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		blockRepository,
		holidayRepository,
		settingsRepository,
		txMgr,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		blockRepository,
		holidayRepository,
		settingsRepository,
		txMgr,
		log,
	)
	evaluateDeadlinesUseCase := evaluateDeadlinesUC.NewUseCase(
		projectRepository,
		holidayRepository,
		settingsRepository,
		cfg.WorkflowSteps(),
		log,
	)
	applyStepScheduleUseCase := applyStepScheduleUC.NewUseCase(
		projectRepository,
		holidayRepository,
		settingsRepository,
		teamClient,
		txMgr,
		log,
	)
	getTimelineUseCase := getTimelineUC.NewUseCase(
		projectRepository,
		appointmentRepository,
		holidayRepository,
		settingsRepository,
		log,
	)

	// Handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(agendaSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(agendaSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(agendaSvc, log)
	getDayAgenda := getDayAgendaHandler.NewHandler(agendaSvc, log)
	createBlock := createBlockHandler.NewHandler(agendaSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(agendaSvc, log)
	getDeadlines := getDeadlinesHandler.NewHandler(evaluateDeadlinesUseCase, log)
	applyStepSchedule := applyStepScheduleHandler.NewHandler(applyStepScheduleUseCase, log)
	getTimeline := getTimelineHandler.NewHandler(getTimelineUseCase, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	listHolidays := listHolidaysHandler.NewHandler(settingsSvc, log)
	replaceHolidays := replaceHolidaysHandler.NewHandler(settingsSvc, log)

	// SLA sweeper
	var sweeper *alerts.Sweeper
	if cfg.Alerts.Enabled {
		sweeper = alerts.NewSweeper(evaluateDeadlinesUseCase, metricsCollector, log)
		if err := sweeper.Start(cfg.Alerts.Schedule); err != nil {
			log.Fatal("Failed to start alerts sweeper: %v", err)
		}
	}

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Read-only board endpoints stay open to the showroom displays.
	api.HandleFunc("/deadlines", getDeadlines.Handle).Methods(http.MethodGet)
	api.HandleFunc("/timeline", getTimeline.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings/holidays", listHolidays.Handle).Methods(http.MethodGet)

	// Everything that mutates requires the X-User-ID header from the gateway.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{publicId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{publicId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{publicId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{publicId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/agenda/{date}", getDayAgenda.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/agenda/blocks", createBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/agenda/blocks/{publicId}", deleteBlock.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/projects/{projectId}/tracks/{track}", applyStepSchedule.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/settings/holidays", replaceHolidays.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if sweeper != nil {
		sweeper.Stop()
	}

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
