package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/skala-ium/events/pkg/logger"
)

// publish sends a domain event after commit. Failures are logged and swallowed
// since the rows are already durable.
func publish(ctx context.Context, log *logger.Logger, publisher EventPublisher, topic, key string, event interface{}) {
	if publisher == nil || topic == "" {
		return
	}
	if err := publisher.Send(ctx, topic, key, event); err != nil {
		log.Error(ctx, "Failed to publish domain event",
			zap.String("topic", topic),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func rollback(ctx context.Context, log *logger.Logger, tx IngestTx) {
	if err := tx.Rollback(ctx); err != nil {
		log.Error(ctx, "Failed to rollback", zap.Error(err))
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
