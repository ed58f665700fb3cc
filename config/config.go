package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"smart-task-scheduler/internal/ranking"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Database   DatabaseConfig

	// Scheduling
	Scheduler   SchedulerConfig
	Preferences PreferencesConfig

	// Edge
	RateLimit RateLimitConfig
	CORS      CORSConfig

	GoogleCalendar GoogleCalendarConfig
	Metrics        MetricsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host            string
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool

	// Rotating file sink; empty FilePath logs to stdout only.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type DatabaseConfig struct {
	Driver       string // sqlite | postgres
	DSN          string
	MaxOpenConns int
}

// SchedulerConfig tunes the suggestion engine. Times are "HH:MM"; WeekStart is
// an English weekday name.
type SchedulerConfig struct {
	Timezone               string
	StepMinutes            int
	PageSize               int
	MaxPageSize            int
	MaxLookaheadDays       int
	MinLeadMinutes         int
	WeekStart              string
	DefaultWorkdayStart    string
	DefaultWorkdayEnd      string
	DefaultDurationMinutes int
	Weights                ranking.Weights
}

type PreferencesConfig struct {
	CacheSize int
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
	MaxUsers          int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	// ImportBusy blocks time for events already in the calendar.
	ImportBusy bool
	// MirrorCommits creates an event for every committed task.
	MirrorCommits bool
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = viper.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = viper.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = viper.GetInt("logger.max_age_days")

	// Database
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.DSN = expandEnvVar(viper.GetString("database.dsn"))
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Database.DSN = dsn
	}

	// Scheduler
	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")
	cfg.Scheduler.StepMinutes = viper.GetInt("scheduler.step_minutes")
	cfg.Scheduler.PageSize = viper.GetInt("scheduler.page_size")
	cfg.Scheduler.MaxPageSize = viper.GetInt("scheduler.max_page_size")
	cfg.Scheduler.MaxLookaheadDays = viper.GetInt("scheduler.max_lookahead_days")
	cfg.Scheduler.MinLeadMinutes = viper.GetInt("scheduler.min_lead_minutes")
	cfg.Scheduler.WeekStart = viper.GetString("scheduler.week_start")
	cfg.Scheduler.DefaultWorkdayStart = viper.GetString("scheduler.default_workday_start")
	cfg.Scheduler.DefaultWorkdayEnd = viper.GetString("scheduler.default_workday_end")
	cfg.Scheduler.DefaultDurationMinutes = viper.GetInt("scheduler.default_duration_minutes")
	cfg.Scheduler.Weights = ranking.Weights{
		Base:                  viper.GetFloat64("scheduler.weights.base"),
		FocusWindow:           viper.GetFloat64("scheduler.weights.focus_window"),
		FocusProximity:        viper.GetFloat64("scheduler.weights.focus_proximity"),
		FocusFalloffMinutes:   viper.GetFloat64("scheduler.weights.focus_falloff_minutes"),
		ProximityPerDay:       viper.GetFloat64("scheduler.weights.proximity_per_day"),
		ProximityCap:          viper.GetFloat64("scheduler.weights.proximity_cap"),
		EarlyMultiplier:       viper.GetFloat64("scheduler.weights.early_multiplier"),
		PreferenceTime:        viper.GetFloat64("scheduler.weights.preference_time"),
		PreferredDay:          viper.GetFloat64("scheduler.weights.preferred_day"),
		PreferredTaskDay:      viper.GetFloat64("scheduler.weights.preferred_task_day"),
		WorkHoursPenalty:      viper.GetFloat64("scheduler.weights.work_hours_penalty"),
		HighFlexibilityFactor: viper.GetFloat64("scheduler.weights.high_flexibility_factor"),
	}
	if err := validateSchedulerConfig(&cfg.Scheduler); err != nil {
		return nil, err
	}

	cfg.Preferences.CacheSize = viper.GetInt("preferences.cache_size")

	// Edge
	cfg.RateLimit.RequestsPerMinute = viper.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxUsers = viper.GetInt("rate_limit.max_users")
	cfg.CORS.AllowedOrigins = splitList(viper.GetStringSlice("cors.allowed_origins"))

	// Google Calendar (optional)
	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.ImportBusy = viper.GetBool("google_calendar.import_busy")
	cfg.GoogleCalendar.MirrorCommits = viper.GetBool("google_calendar.mirror_commits")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")
	cfg.Metrics.Path = viper.GetString("metrics.path")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("logger.max_size_mb", 100)
	viper.SetDefault("logger.max_backups", 5)
	viper.SetDefault("logger.max_age_days", 28)

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "file:scheduler.db")
	viper.SetDefault("database.max_open_conns", 25)

	// Scheduler defaults
	viper.SetDefault("scheduler.timezone", "UTC")
	viper.SetDefault("scheduler.step_minutes", 30)
	viper.SetDefault("scheduler.page_size", 3)
	viper.SetDefault("scheduler.max_page_size", 50)
	viper.SetDefault("scheduler.max_lookahead_days", 90)
	viper.SetDefault("scheduler.min_lead_minutes", 30)
	viper.SetDefault("scheduler.week_start", "Monday")
	viper.SetDefault("scheduler.default_workday_start", "09:00")
	viper.SetDefault("scheduler.default_workday_end", "17:00")
	viper.SetDefault("scheduler.default_duration_minutes", 60)

	w := ranking.DefaultWeights()
	viper.SetDefault("scheduler.weights.base", w.Base)
	viper.SetDefault("scheduler.weights.focus_window", w.FocusWindow)
	viper.SetDefault("scheduler.weights.focus_proximity", w.FocusProximity)
	viper.SetDefault("scheduler.weights.focus_falloff_minutes", w.FocusFalloffMinutes)
	viper.SetDefault("scheduler.weights.proximity_per_day", w.ProximityPerDay)
	viper.SetDefault("scheduler.weights.proximity_cap", w.ProximityCap)
	viper.SetDefault("scheduler.weights.early_multiplier", w.EarlyMultiplier)
	viper.SetDefault("scheduler.weights.preference_time", w.PreferenceTime)
	viper.SetDefault("scheduler.weights.preferred_day", w.PreferredDay)
	viper.SetDefault("scheduler.weights.preferred_task_day", w.PreferredTaskDay)
	viper.SetDefault("scheduler.weights.work_hours_penalty", w.WorkHoursPenalty)
	viper.SetDefault("scheduler.weights.high_flexibility_factor", w.HighFlexibilityFactor)

	viper.SetDefault("preferences.cache_size", 4096)

	viper.SetDefault("rate_limit.requests_per_minute", 120)
	viper.SetDefault("rate_limit.burst", 20)
	viper.SetDefault("rate_limit.max_users", 10000)
	viper.SetDefault("cors.allowed_origins", []string{"*"})

	viper.SetDefault("google_calendar.enabled", false)
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.import_busy", true)
	viper.SetDefault("google_calendar.mirror_commits", true)

	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.path", "/metrics")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// splitList flattens comma-separated entries, which is how list values
// arrive from the environment.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// validateSchedulerConfig validates the scheduler configuration
func validateSchedulerConfig(cfg *SchedulerConfig) error {
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("scheduler.timezone %q: %w", cfg.Timezone, err)
	}
	if _, err := ParseWeekday(cfg.WeekStart); err != nil {
		return err
	}

	start, err := time.Parse("15:04", cfg.DefaultWorkdayStart)
	if err != nil {
		return fmt.Errorf("scheduler.default_workday_start must be HH:MM: %w", err)
	}
	end, err := time.Parse("15:04", cfg.DefaultWorkdayEnd)
	if err != nil {
		return fmt.Errorf("scheduler.default_workday_end must be HH:MM: %w", err)
	}
	if !end.After(start) {
		return fmt.Errorf("scheduler.default_workday_end must be after default_workday_start")
	}

	if cfg.StepMinutes <= 0 {
		return fmt.Errorf("scheduler.step_minutes must be positive")
	}
	if cfg.PageSize <= 0 || cfg.MaxPageSize < cfg.PageSize {
		return fmt.Errorf("scheduler.page_size must be positive and at most max_page_size")
	}
	return nil
}

// ParseWeekday reads an English weekday name.
func ParseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
