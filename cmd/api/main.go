package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"smart-task-scheduler/config"
	_ "smart-task-scheduler/docs" // Swagger docs
	"smart-task-scheduler/internal/httpserver"
	"smart-task-scheduler/internal/middleware"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/resolver"
	"smart-task-scheduler/internal/slotgen"
	taskUC "smart-task-scheduler/internal/task/usecase"
	"smart-task-scheduler/pkg/gcalendar"
	"smart-task-scheduler/pkg/log"
	"smart-task-scheduler/pkg/metrics"
	"smart-task-scheduler/pkg/sqldb"
)

// @title       Smart Task Scheduler API
// @description Task scheduling with ranked slot suggestions, conflict detection and free-text task creation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Task Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sqldb.Open(ctx, sqldb.Config{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database ready (%s)", db.Dialect())

	// 4. Metrics (optional)
	var (
		m        *metrics.Metrics
		gatherer prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		m = metrics.Default()
		gatherer = prometheus.DefaultGatherer
	}

	// 5. Scheduler
	scheduler, err := schedulerConfig(cfg.Scheduler)
	if err != nil {
		logger.Error(ctx, "Invalid scheduler config: ", err)
		return
	}

	// 6. Google Calendar client (optional)
	var calendar taskUC.Calendar
	if cfg.GoogleCalendar.Enabled {
		client, calErr := gcalendar.NewClient(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
			CalendarID:      cfg.GoogleCalendar.CalendarID,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run ./cmd/gcal-auth` to generate the OAuth token")
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		DB:              db,
		Metrics:         m,
		Gatherer:        gatherer,
		MetricsPath:     cfg.Metrics.Path,
		Middleware: middleware.Config{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			Burst:             cfg.RateLimit.Burst,
			MaxUsers:          cfg.RateLimit.MaxUsers,
			AllowedOrigins:    cfg.CORS.AllowedOrigins,
		},
		Scheduler:     scheduler,
		PrefCacheSize: cfg.Preferences.CacheSize,
		Calendar:      calendar,
		CalendarOpts: taskUC.CalendarOptions{
			CalendarID: cfg.GoogleCalendar.CalendarID,
			Timezone:   cfg.Scheduler.Timezone,
			ImportBusy: cfg.GoogleCalendar.ImportBusy,
			Mirror:     cfg.GoogleCalendar.MirrorCommits,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func schedulerConfig(cfg config.SchedulerConfig) (httpserver.SchedulerConfig, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return httpserver.SchedulerConfig{}, err
	}
	weekStart, err := config.ParseWeekday(cfg.WeekStart)
	if err != nil {
		return httpserver.SchedulerConfig{}, err
	}
	start, err := model.ParseTimeOfDay(cfg.DefaultWorkdayStart)
	if err != nil {
		return httpserver.SchedulerConfig{}, err
	}
	end, err := model.ParseTimeOfDay(cfg.DefaultWorkdayEnd)
	if err != nil {
		return httpserver.SchedulerConfig{}, err
	}

	return httpserver.SchedulerConfig{
		Slots: slotgen.Config{
			Step:             time.Duration(cfg.StepMinutes) * time.Minute,
			MaxLookaheadDays: cfg.MaxLookaheadDays,
			MinLead:          time.Duration(cfg.MinLeadMinutes) * time.Minute,
			WeekStart:        weekStart,
			DefaultWorkday:   model.ClockRange{Start: start, End: end},
			Location:         loc,
		},
		Weights: cfg.Weights,
		Limits: resolver.Limits{
			DefaultPageSize: cfg.PageSize,
			MaxPageSize:     cfg.MaxPageSize,
		},
		DefaultPreferences: model.Preferences{
			DefaultDurationMinutes: cfg.DefaultDurationMinutes,
		},
	}, nil
}
