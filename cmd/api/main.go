package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	httpadp "puda-approval-backend/internal/adapter/http"
	appmw "puda-approval-backend/internal/adapter/middleware"
	"puda-approval-backend/internal/adapter/repository/mysql"
	"puda-approval-backend/internal/config"
	"puda-approval-backend/internal/domain/approval"
	"puda-approval-backend/internal/domain/notification"
	"puda-approval-backend/internal/domain/request"
	"puda-approval-backend/internal/domain/task"
	"puda-approval-backend/internal/domain/user"
	"puda-approval-backend/internal/infrastructure/cache"
	"puda-approval-backend/internal/infrastructure/db"
	requestUC "puda-approval-backend/internal/usecase/request"
	"puda-approval-backend/internal/usecase/workflow"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "approval-api").Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("mysql connect failed")
	}
	if err := gdb.AutoMigrate(
		&request.Request{},
		&approval.Record{},
		&task.Task{},
		&notification.Notification{},
		&user.User{},
	); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis connect failed")
	}

	requests := mysql.NewRequestRepository(gdb)
	approvals := mysql.NewApprovalRepository(gdb)
	tasks := mysql.NewTaskRepository(gdb)
	notifs := mysql.NewNotificationRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	notifier := workflow.NewNotifier(notifs, logger)
	engine := workflow.NewEngine(tx, tasks, users, notifier, logger)

	reqUC := requestUC.NewUsecase(requests)

	h := httpadp.NewHandler()
	reqH := httpadp.NewRequestHandler(reqUC, engine, requests)
	apprH := httpadp.NewApprovalHandler(engine, requests, approvals)
	taskH := httpadp.NewTaskHandler(tasks)
	notifH := httpadp.NewNotificationHandler(notifs)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)
	e.GET("/requests/:request_type/:request_code", reqH.Get)
	e.GET("/approvals/:request_type/:request_code", apprH.History)
	e.GET("/tasks", taskH.List)
	e.GET("/notifications", notifH.List)

	// Mutating routes sit behind the redis idempotency guard; a replayed
	// X-Request-Id returns the recorded response instead of double-applying.
	m := e.Group("", appmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	m.POST("/requests", reqH.Create)
	m.POST("/requests/:request_type/:request_code/submit", reqH.Submit)
	m.POST("/requests/investment/:request_code/admin-review", reqH.AdminReview)
	m.POST("/requests/:request_type/:request_code/decision", apprH.Decide)
	m.PATCH("/notifications/:id/read", notifH.MarkRead)
	m.DELETE("/notifications/:id", notifH.Delete)

	addr := ":" + cfg.AppPort
	logger.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
