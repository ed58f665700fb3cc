package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"smart-task-scheduler/internal/middleware"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/ranking"
	"smart-task-scheduler/internal/resolver"
	"smart-task-scheduler/internal/slotgen"
	taskUC "smart-task-scheduler/internal/task/usecase"
	"smart-task-scheduler/pkg/log"
	"smart-task-scheduler/pkg/metrics"
	"smart-task-scheduler/pkg/sqldb"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Infrastructure
	db          *sqldb.DB
	metrics     *metrics.Metrics
	gatherer    prometheus.Gatherer
	metricsPath string
	middleware  middleware.Config

	// Scheduling
	scheduler     SchedulerConfig
	prefCacheSize int

	// Google Calendar (optional)
	calendar     taskUC.Calendar
	calendarOpts taskUC.CalendarOptions
}

// SchedulerConfig is everything the suggestion engine and parser are built from.
type SchedulerConfig struct {
	Slots              slotgen.Config
	Weights            ranking.Weights
	Limits             resolver.Limits
	DefaultPreferences model.Preferences
	// Now is the engine clock; nil means time.Now.
	Now func() time.Time
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Host            string
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	DB *sqldb.DB
	// Metrics and Gatherer are optional; without a Gatherer no metrics route
	// is mounted.
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	MetricsPath string
	Middleware  middleware.Config

	Scheduler     SchedulerConfig
	PrefCacheSize int

	// Calendar must be a nil interface when the integration is off.
	Calendar     taskUC.Calendar
	CalendarOpts taskUC.CalendarOptions
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		host:            cfg.Host,
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		db:              cfg.DB,
		metrics:         cfg.Metrics,
		gatherer:        cfg.Gatherer,
		metricsPath:     cfg.MetricsPath,
		middleware:      cfg.Middleware,
		scheduler:       cfg.Scheduler,
		prefCacheSize:   cfg.PrefCacheSize,
		calendar:        cfg.Calendar,
		calendarOpts:    cfg.CalendarOpts,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}
	if srv.metricsPath == "" {
		srv.metricsPath = "/metrics"
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	return nil
}
