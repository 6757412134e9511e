package httpserver

import (
	"context"

	"smart-scheduler/internal/middleware"
	queryHTTP "smart-scheduler/internal/query/delivery/http"
	queryUC "smart-scheduler/internal/query/usecase"
	schedulerHTTP "smart-scheduler/internal/scheduler/delivery/http"
	schedulerUC "smart-scheduler/internal/scheduler/usecase"
	"smart-scheduler/internal/sync"
	taskHTTP "smart-scheduler/internal/task/delivery/http"
	tgDelivery "smart-scheduler/internal/task/delivery/telegram"
	taskUC "smart-scheduler/internal/task/usecase"
)

// registerDomainRoutes wires the repositories, use cases, and delivery
// handlers for every domain and mounts them under /api/v1.
//
// Pattern when adding a new domain:
//  1. UseCase:      uc := mydomainUC.New(srv.l, srv.repo, ...)
//  2. HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Routes:       mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	// Scheduler domain (conflicts, slots, reschedule, overview)
	schedUC := schedulerUC.New(srv.l, srv.repo, srv.parser, srv.horizonDays)
	schedulerHTTP.RegisterRoutes(api, schedulerHTTP.New(srv.l, schedUC), mw)

	// Task domain (natural language capture, update, complete, list)
	tUC := taskUC.New(srv.l, srv.repo, srv.parser, schedUC)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tUC), mw)

	// Query domain (natural language questions)
	qUC := queryUC.New(srv.l, srv.repo, srv.parser, schedUC)
	queryHTTP.RegisterRoutes(api, queryHTTP.New(srv.l, qUC), mw)

	srv.l.Infof(ctx, "task, scheduler, and query domains registered under /api/v1")

	// Telegram capture channel (optional)
	if srv.telegramBot != nil {
		tgHandler := tgDelivery.New(srv.l, tUC, qUC, srv.telegramBot)
		srv.gin.POST("/webhook/telegram", tgHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram bot not configured, skipping webhook route")
	}

	// Calendar provider pull (optional)
	if srv.calendar != nil {
		syncSvc := sync.New(srv.l, srv.repo, srv.calendar, srv.calendarID)
		sync.RegisterRoutes(api, sync.NewHandler(srv.l, syncSvc), mw)
		srv.l.Infof(ctx, "calendar pull route registered at POST /api/v1/sync/calendar")
	} else {
		srv.l.Infof(ctx, "calendar client not configured, skipping pull route")
	}

	return nil
}
