package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/slack-go/slack"
	"go.uber.org/zap"

	configs "github.com/skala-ium/events/config"
	"github.com/skala-ium/events/internal/app"
	"github.com/skala-ium/events/internal/extractor"
	"github.com/skala-ium/events/internal/handler"
	"github.com/skala-ium/events/internal/middleware"
	"github.com/skala-ium/events/internal/repository"
	"github.com/skala-ium/events/internal/scheduler"
	"github.com/skala-ium/events/internal/service"
	"github.com/skala-ium/events/pkg/cache"
	"github.com/skala-ium/events/pkg/db"
	"github.com/skala-ium/events/pkg/kafka"
	"github.com/skala-ium/events/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := configs.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewFromEnv(cfg.IsDevelopment())
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	pg, err := db.NewPostgres(ctx, db.Config{
		Host:           cfg.DB.Host,
		Port:           cfg.DB.Port,
		User:           cfg.DB.User,
		Password:       cfg.DB.Password,
		DBName:         cfg.DB.DBName,
		SSLMode:        cfg.DB.SSLMode,
		MaxConns:       cfg.DB.MaxConns,
		MinConns:       cfg.DB.MinConns,
		AutoMigrate:    cfg.DB.AutoMigrate,
		MigrationsPath: cfg.DB.MigrationsPath,
	})
	if err != nil {
		log.Fatal(ctx, "Failed to connect to database", zap.Error(err))
	}
	defer pg.Close()

	rdb := cache.NewRedisClient(cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() { _ = rdb.Close() }()
	ttlStore := cache.NewRedisCache(rdb)
	if err := ttlStore.Ping(ctx); err != nil {
		log.Fatal(ctx, "Failed to connect to redis", zap.Error(err))
	}

	producer, err := kafka.NewProducer(kafka.Config{Brokers: cfg.Kafka.Brokers})
	if err != nil {
		log.Fatal(ctx, "Failed to create Kafka producer", zap.Error(err))
	}
	defer func() { _ = producer.Close() }()

	gemini, err := extractor.NewGeminiGenerator(ctx, extractor.GeminiConfig{
		APIKey:           cfg.LLM.APIKey,
		Model:            cfg.LLM.Model,
		Timeout:          cfg.LLM.Timeout,
		FailureThreshold: cfg.LLM.FailureThreshold,
		ResetTimeout:     cfg.LLM.ResetTimeout,
	})
	if err != nil {
		log.Fatal(ctx, "Failed to create extractor", zap.Error(err))
	}

	slackClient := app.NewSlackClient(cfg.Slack.BotToken,
		slack.OptionHTTPClient(&http.Client{Timeout: cfg.Slack.Timeout}),
	)

	pool := pg.Pool()
	store := repository.NewStore(pool)
	eventRepo := repository.NewEventRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)

	topics := service.Topics{
		Assignments: cfg.Kafka.Topics.Assignments,
		Submissions: cfg.Kafka.Topics.Submissions,
		Reminders:   cfg.Kafka.Topics.Reminders,
	}
	identity := service.NewIdentityResolver(log)

	announcements := service.NewAnnouncementIngester(
		store,
		extractor.New(gemini),
		identity,
		producer,
		topics,
		service.AnnouncementConfig{
			Location:            cfg.Location(),
			DefaultDeadlineDays: cfg.Pipeline.DefaultDeadlineDays,
		},
		log,
	)
	submissions := service.NewSubmissionIngester(store, identity, producer, topics, log)
	dispatcher := service.NewDispatcher(announcements, submissions, eventRepo, 0, log)

	verification := service.NewVerificationService(
		slackClient,
		ttlStore,
		studentRepo,
		service.VerificationConfig{
			CodeTTL:  cfg.Pipeline.CodeTTL,
			TokenTTL: cfg.Pipeline.TokenTTL,
		},
		log,
	)

	reminders := NewReminderWorker(
		service.NewReminderService(store, producer, topics.Reminders, cfg.Pipeline.ReminderWindow, log),
		log,
	)

	sched := scheduler.New(log)
	// Sweeps events left behind by a failed drain or a crash.
	if err := sched.Add("backlog-drain", cfg.Pipeline.DrainSchedule, func(context.Context) error {
		dispatcher.Notify()
		return nil
	}); err != nil {
		log.Fatal(ctx, "Failed to schedule backlog drain", zap.Error(err))
	}
	if err := sched.Add("deadline-reminders", cfg.Pipeline.ReminderSchedule, reminders.Process); err != nil {
		log.Fatal(ctx, "Failed to schedule reminders", zap.Error(err))
	}

	go func() {
		if err := dispatcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error(ctx, "Dispatcher stopped", zap.Error(err))
		}
	}()
	sched.Start(ctx)
	defer sched.Stop()

	eventsHandler := handler.NewSlackEventsHandler(dispatcher, log)
	authHandler := handler.NewAuthHandler(verification, log)

	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(log))
	r.Get("/health", eventsHandler.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SlackRetrySuppressor)
		r.Use(middleware.NewSlackSignatureMiddleware(cfg.Slack.SigningSecret, cfg.HTTP.MaxBodyBytes))
		eventsHandler.RegisterRoutes(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.MaxBytesHandler(next, cfg.HTTP.MaxBodyBytes)
		})
		authHandler.RegisterRoutes(r)
	})

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: r,
	}

	go func() {
		log.Info(ctx, "Starting server", zap.String("address", cfg.HTTP.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(context.Background(), "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}
	log.Info(shutdownCtx, "Server stopped")
}
