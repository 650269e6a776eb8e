package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/task-notifier/internal/api/handlers/notification"
	"github.com/aliskhannn/task-notifier/internal/api/router"
	"github.com/aliskhannn/task-notifier/internal/api/server"
	"github.com/aliskhannn/task-notifier/internal/config"
	"github.com/aliskhannn/task-notifier/internal/hub"
	"github.com/aliskhannn/task-notifier/internal/mailtemplate"
	"github.com/aliskhannn/task-notifier/internal/rabbitmq/dispatch"
	notifmsg "github.com/aliskhannn/task-notifier/internal/rabbitmq/handlers/notification"
	"github.com/aliskhannn/task-notifier/internal/rabbitmq/queue"
	notifrepo "github.com/aliskhannn/task-notifier/internal/repository/notification"
	taskrepo "github.com/aliskhannn/task-notifier/internal/repository/task"
	userrepo "github.com/aliskhannn/task-notifier/internal/repository/user"
	notifsvc "github.com/aliskhannn/task-notifier/internal/service/notification"
	"github.com/aliskhannn/task-notifier/internal/worker"
	"github.com/aliskhannn/task-notifier/migrations"
	"github.com/aliskhannn/task-notifier/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if cfg.Database.Migrate {
		if err := migrations.Up(db.Master); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to apply migrations")
		}
	}

	manager, err := queue.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.DialStrategy())
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err := rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	templates, err := mailtemplate.New()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to load email templates")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)

	realtime := hub.New(cfg.Hub.WriteWait, cfg.Hub.AllowedOrigins)

	service := notifsvc.NewService(notifrepo.NewRepository(db), manager.Publisher())

	messageHandler := notifmsg.NewHandler(
		userrepo.NewRepository(db),
		taskrepo.NewRepository(db),
		emailClient,
		realtime,
		templates,
		rdb,
		cfg.Retry,
	)

	registry := dispatch.NewRegistry()
	if err := messageHandler.Register(registry); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to register message handlers")
	}

	notifier := worker.NewNotifier(manager.NewConsumer(cfg.RabbitMQ.ConsumerTag, cfg.RabbitMQ.Prefetch), registry)

	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)

		if err := notifier.Run(ctx); err != nil {
			zlog.Logger.Error().Err(err).Msg("notifier stopped with error")
			stop()
		}
	}()

	r := router.New(notification.NewHandler(service, realtime, val), cfg.Hub.AllowedOrigins)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("starting server")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	realtime.Close()

	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		zlog.Logger.Warn().Msg("timeout exceeded waiting for notifier, forcing shutdown")
	}

	if err := manager.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis client")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}
}
