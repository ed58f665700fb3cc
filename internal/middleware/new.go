package middleware

import (
	"smart-task-scheduler/pkg/log"
	"smart-task-scheduler/pkg/metrics"
)

// Config holds the knobs of the request pipeline.
type Config struct {
	RequestsPerMinute int
	Burst             int
	MaxUsers          int
	AllowedOrigins    []string
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	metrics *metrics.Metrics
	origins []string
}

func New(l log.Logger, cfg Config, m *metrics.Metrics) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RequestsPerMinute, cfg.Burst, cfg.MaxUsers),
		metrics: m,
		origins: cfg.AllowedOrigins,
	}
}
