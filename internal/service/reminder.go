package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/skala-ium/events/internal/domain"
	"github.com/skala-ium/events/pkg/logger"
)

// ReminderService announces assignments whose deadline is getting close.
type ReminderService struct {
	store     ReminderStore
	publisher EventPublisher
	topic     string
	window    time.Duration
	now       func() time.Time
	log       *logger.Logger
}

func NewReminderService(store ReminderStore, publisher EventPublisher, topic string, window time.Duration, log *logger.Logger) *ReminderService {
	return &ReminderService{
		store:     store,
		publisher: publisher,
		topic:     topic,
		window:    window,
		now:       time.Now,
		log:       log,
	}
}

// SendDue publishes one reminder per due assignment and records it, so each
// assignment is reminded at most once. An assignment whose publish fails is
// left for the next run.
func (s *ReminderService) SendDue(ctx context.Context) (int, error) {
	now := s.now().UTC()

	due, err := s.store.ListDueForReminder(ctx, now, s.window)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, a := range due {
		if a.SlackChannelID == nil || *a.SlackChannelID == "" {
			continue
		}

		event := domain.DeadlineReminderEvent{
			Type:           domain.EventTypeDeadlineReminder,
			AssignmentID:   a.ID,
			Title:          a.Title,
			Deadline:       a.Deadline,
			SlackChannelID: *a.SlackChannelID,
			SlackPostTS:    a.SlackPostTS,
		}
		if err := s.publisher.Send(ctx, s.topic, a.ID.String(), event); err != nil {
			s.log.Error(ctx, "Failed to publish reminder", zap.String("assignment_id", a.ID.String()), zap.Error(err))
			continue
		}

		recorded, err := s.store.MarkReminderSent(ctx, a.ID, now)
		if err != nil {
			return sent, fmt.Errorf("failed to record reminder for %s: %w", a.ID, err)
		}
		if recorded {
			sent++
		}
	}

	return sent, nil
}
