package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/skala-ium/events/pkg/logger"
)

type reminderSender interface {
	SendDue(ctx context.Context) (int, error)
}

type ReminderWorker struct {
	reminders reminderSender
	logger    *logger.Logger
}

func NewReminderWorker(reminders reminderSender, logger *logger.Logger) *ReminderWorker {
	return &ReminderWorker{
		reminders: reminders,
		logger:    logger,
	}
}

// Process runs one reminder pass. It is scheduled by the cron scheduler.
func (w *ReminderWorker) Process(ctx context.Context) error {
	sent, err := w.reminders.SendDue(ctx)
	if sent > 0 {
		w.logger.Info(ctx, "Sent deadline reminders", zap.Int("count", sent))
	}
	return err
}
