// @title           Taskboard API
// @version         1.0
// @description     Personal task management API with auth, analytics, weather and notifications.
// @host            localhost:8080
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskboard/taskboard-api/internal/api"
	"github.com/taskboard/taskboard-api/internal/core/service"
	"github.com/taskboard/taskboard-api/internal/infrastructure/config"
	redisdb "github.com/taskboard/taskboard-api/internal/infrastructure/db/redis"
	"github.com/taskboard/taskboard-api/internal/infrastructure/db/sqlite"
	"github.com/taskboard/taskboard-api/internal/infrastructure/notify"
	"github.com/taskboard/taskboard-api/internal/infrastructure/scheduler"
	"github.com/taskboard/taskboard-api/pkg/logger"

	_ "github.com/taskboard/taskboard-api/docs"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.SQLite.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("opening sqlite database")
	}
	defer func() {
		if err := sqlite.Close(db); err != nil {
			log.Error().Err(err).Msg("closing sqlite database")
		}
	}()

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("closing redis client")
		}
	}()

	// Notification relay: events fan out over sharded workers so a slow
	// relay never blocks a request.
	relay := notify.NewRelayClient(cfg.Relay.URL, cfg.Relay.Timeout)
	dispatcher := notify.NewDispatcher(cfg.Relay.Workers, relay, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(cfg, db, rdb, dispatcher)

	// Deadline reminders run on a cron schedule and publish through the
	// same dispatcher as the CRUD notifications.
	if cfg.Reminder.Enabled {
		taskRepo := sqlite.NewTaskRepository(db)
		reminder := service.NewReminderService(taskRepo, dispatcher, cfg.Reminder.Lookahead, log)

		sched := scheduler.New(log)
		if err := sched.Schedule(cfg.Reminder.Schedule, "deadline-reminders", reminder); err != nil {
			log.Fatal().Err(err).Msg("scheduling deadline reminders")
		}
		sched.Start()
		defer sched.Stop()
	}

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}

	log.Info().Msg("shutdown complete")
}
