package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
)

type ConsumerConfig struct {
	Brokers []string
	GroupID string
	Topics  []string
}

// Handler processes one message. Returning an error keeps the offset uncommitted.
type Handler func(ctx context.Context, msg kafka.Message) error

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(cfg ConsumerConfig) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one kafka broker must be specified")
	}
	if len(cfg.Topics) == 0 {
		return nil, fmt.Errorf("at least one topic must be specified")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		GroupID:     cfg.GroupID,
		GroupTopics: cfg.Topics,
	})

	return &Consumer{reader: reader}, nil
}

// Run fetches messages until ctx is cancelled. onError is called for fetch,
// handler and commit failures; the loop keeps going after each of them.
func (c *Consumer) Run(ctx context.Context, handle Handler, onError func(error)) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			onError(fmt.Errorf("failed to fetch message: %w", err))
			continue
		}

		if err := handle(ctx, msg); err != nil {
			onError(fmt.Errorf("failed to handle message from %s: %w", msg.Topic, err))
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			onError(fmt.Errorf("failed to commit message: %w", err))
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
