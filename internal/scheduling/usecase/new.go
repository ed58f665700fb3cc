package usecase

import (
	"smart-task-scheduler/internal/parser"
	"smart-task-scheduler/internal/preference"
	"smart-task-scheduler/internal/resolver"
	"smart-task-scheduler/internal/scheduling"
	"smart-task-scheduler/internal/task"
	pkgLog "smart-task-scheduler/pkg/log"
	"smart-task-scheduler/pkg/metrics"
)

type implUseCase struct {
	l       pkgLog.Logger
	engine  *resolver.Engine
	parser  *parser.Parser
	prefs   preference.UseCase
	tasks   task.UseCase
	metrics *metrics.Metrics
}

// New creates the scheduling UseCase. Busy time and commits go through tasks;
// defaults and ranking preferences come from prefs.
func New(
	l pkgLog.Logger,
	engine *resolver.Engine,
	p *parser.Parser,
	prefs preference.UseCase,
	tasks task.UseCase,
	m *metrics.Metrics,
) scheduling.UseCase {
	return &implUseCase{
		l:       l,
		engine:  engine,
		parser:  p,
		prefs:   prefs,
		tasks:   tasks,
		metrics: m,
	}
}
