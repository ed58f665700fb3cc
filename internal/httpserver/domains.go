package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/middleware"
	"smart-task-scheduler/internal/parser"
	"smart-task-scheduler/internal/preference"
	prefHTTP "smart-task-scheduler/internal/preference/delivery/http"
	prefRepo "smart-task-scheduler/internal/preference/repository/sqlstore"
	prefUC "smart-task-scheduler/internal/preference/usecase"
	"smart-task-scheduler/internal/ranking"
	"smart-task-scheduler/internal/resolver"
	schedHTTP "smart-task-scheduler/internal/scheduling/delivery/http"
	schedUC "smart-task-scheduler/internal/scheduling/usecase"
	"smart-task-scheduler/internal/slotgen"
	subtaskHTTP "smart-task-scheduler/internal/subtask/delivery/http"
	subtaskRepo "smart-task-scheduler/internal/subtask/repository/sqlstore"
	subtaskUC "smart-task-scheduler/internal/subtask/usecase"
	"smart-task-scheduler/internal/task"
	taskHTTP "smart-task-scheduler/internal/task/delivery/http"
	taskRepo "smart-task-scheduler/internal/task/repository/sqlstore"
	taskUC "smart-task-scheduler/internal/task/usecase"
	"smart-task-scheduler/pkg/datemath"
)

// Each domain follows the same wiring:
//  1. Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. UseCase:      uc := mydomainUC.New(...)
//  3. HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  4. Routes:       mydomainHTTP.RegisterRoutes(api, h, mw)

// setupTaskDomain registers /api/v1/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) task.UseCase {
	loc := srv.location()

	repo := taskRepo.New(srv.db, srv.l)
	uc := taskUC.New(srv.l, repo, srv.calendar, srv.calendarOpts, srv.metrics, loc)
	h := taskHTTP.New(srv.l, uc, loc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return uc
}

// setupSubtaskDomain registers /api/v1/tasks/:id/subtasks.
func (srv HTTPServer) setupSubtaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks task.UseCase) {
	repo := subtaskRepo.New(srv.db, srv.l)
	uc := subtaskUC.New(srv.l, repo, tasks)
	h := subtaskHTTP.New(srv.l, uc)
	subtaskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Subtask domain registered")
}

// setupPreferenceDomain registers /api/v1/preferences.
func (srv HTTPServer) setupPreferenceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) preference.UseCase {
	repo := prefRepo.New(srv.db, srv.l)
	uc := prefUC.New(repo, srv.l, srv.scheduler.DefaultPreferences, srv.prefCacheSize)
	h := prefHTTP.New(srv.l, uc)
	prefHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Preference domain registered")
	return uc
}

// setupSchedulingDomain registers /api/v1/ai on top of the task and
// preference usecases.
func (srv HTTPServer) setupSchedulingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks task.UseCase, prefs preference.UseCase) {
	cfg := srv.scheduler
	loc := srv.location()
	cfg.Slots.Location = loc
	gen := slotgen.New(cfg.Slots)

	engine := resolver.NewEngine(gen, ranking.NewScorer(cfg.Weights), cfg.Limits, cfg.Now)
	p := parser.New(datemath.NewParserIn(loc), cfg.Slots.WeekStart, cfg.Now)

	uc := schedUC.New(srv.l, engine, p, prefs, tasks, srv.metrics)
	h := schedHTTP.New(srv.l, uc, loc)
	schedHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Scheduling domain registered (tz=%s step=%s)", loc, gen.Config().Step)
}

// location is the timezone all wall-clock scheduling math runs in.
func (srv HTTPServer) location() *time.Location {
	if loc := srv.scheduler.Slots.Location; loc != nil {
		return loc
	}
	return time.UTC
}
