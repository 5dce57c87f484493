package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/skala-ium/events/internal/domain"
	"github.com/skala-ium/events/pkg/logger"
)

type ThreadPoster interface {
	PostThreadReply(ctx context.Context, channelID, threadTS, text string) error
}

// Notifier turns domain events from Kafka into Slack messages. Reminders are
// posted in the announcement thread; other events are only logged.
type Notifier struct {
	slack          ThreadPoster
	remindersTopic string
	loc            *time.Location
	log            *logger.Logger
}

func New(slack ThreadPoster, remindersTopic string, loc *time.Location, log *logger.Logger) *Notifier {
	if loc == nil {
		loc = time.UTC
	}
	return &Notifier{
		slack:          slack,
		remindersTopic: remindersTopic,
		loc:            loc,
		log:            log,
	}
}

// Handle processes one message. Malformed payloads are logged and
// acknowledged; a failed Slack post is returned so the offset stays uncommitted.
func (n *Notifier) Handle(ctx context.Context, msg kafka.Message) error {
	if msg.Topic != n.remindersTopic {
		n.logEvent(ctx, msg)
		return nil
	}

	var ev domain.DeadlineReminderEvent
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		n.log.Warn(ctx, "Failed to unmarshal reminder",
			zap.String("topic", msg.Topic),
			zap.ByteString("value", msg.Value),
			zap.Error(err),
		)
		return nil
	}
	if ev.SlackChannelID == "" || ev.SlackPostTS == "" {
		n.log.Warn(ctx, "Reminder without a slack thread", zap.String("assignment_id", ev.AssignmentID.String()))
		return nil
	}

	if err := n.slack.PostThreadReply(ctx, ev.SlackChannelID, ev.SlackPostTS, ReminderText(&ev, n.loc)); err != nil {
		return fmt.Errorf("failed to post reminder for %s: %w", ev.AssignmentID, err)
	}

	n.log.Info(ctx, "Reminder posted",
		zap.String("assignment_id", ev.AssignmentID.String()),
		zap.String("channel_id", ev.SlackChannelID),
	)
	return nil
}

func (n *Notifier) logEvent(ctx context.Context, msg kafka.Message) {
	var payload map[string]interface{}
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		n.log.Warn(ctx, "Failed to unmarshal message",
			zap.String("topic", msg.Topic),
			zap.ByteString("value", msg.Value),
			zap.Error(err),
		)
		return
	}
	n.log.Info(ctx, "Received event",
		zap.String("topic", msg.Topic),
		zap.Int("partition", msg.Partition),
		zap.Int64("offset", msg.Offset),
		zap.Any("payload", payload),
	)
}

func ReminderText(ev *domain.DeadlineReminderEvent, loc *time.Location) string {
	return fmt.Sprintf(":alarm_clock: Reminder: *%s* is due %s.",
		ev.Title, ev.Deadline.In(loc).Format("Mon Jan 2 15:04 MST"))
}
