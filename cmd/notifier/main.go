package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	configs "github.com/skala-ium/events/config"
	"github.com/skala-ium/events/internal/app"
	"github.com/skala-ium/events/internal/notifier"
	"github.com/skala-ium/events/pkg/kafka"
	"github.com/skala-ium/events/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := configs.LoadNotifier()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewFromEnv(cfg.IsDevelopment())
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	topics := []string{cfg.Kafka.Topics.Reminders, cfg.Kafka.Topics.Assignments, cfg.Kafka.Topics.Submissions}

	consumer, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.Kafka.Brokers,
		GroupID: cfg.Kafka.GroupID,
		Topics:  topics,
	})
	if err != nil {
		log.Fatal(ctx, "Failed to create Kafka consumer", zap.Error(err))
	}
	defer func() { _ = consumer.Close() }()

	slackClient := app.NewSlackClient(cfg.Slack.BotToken,
		slack.OptionHTTPClient(&http.Client{Timeout: cfg.Slack.Timeout}),
	)
	n := notifier.New(slackClient, cfg.Kafka.Topics.Reminders, cfg.Location(), log)

	log.Info(ctx, "Starting notification consumer",
		zap.Strings("topics", topics),
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("group_id", cfg.Kafka.GroupID),
	)

	if err := consumer.Run(ctx, n.Handle, func(err error) {
		log.Error(ctx, "Consumer error", zap.Error(err))
	}); err != nil {
		log.Error(ctx, "Consumer stopped", zap.Error(err))
	}
	log.Info(context.Background(), "Consumer shutting down")
}
