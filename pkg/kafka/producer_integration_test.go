//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	tcKafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/skala-ium/events/pkg/kafka"
)

type assignmentCreated struct {
	AssignmentID string `json:"assignment_id"`
	Title        string `json:"title"`
}

func TestProducerSendIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	kafkaContainer, err := tcKafka.Run(ctx, "confluentinc/confluent-local:7.5.0")
	if err != nil {
		t.Fatalf("failed to start kafka container: %v", err)
	}
	t.Cleanup(func() {
		_ = kafkaContainer.Terminate(context.Background())
	})

	brokers, err := kafkaContainer.Brokers(ctx)
	if err != nil {
		t.Fatalf("failed to get brokers: %v", err)
	}

	const topic = "assignment-events"
	if err := ensureTopic(ctx, brokers[0], topic); err != nil {
		t.Fatalf("failed to ensure topic: %v", err)
	}

	producer, err := kafka.NewProducer(kafka.Config{Brokers: brokers})
	if err != nil {
		t.Fatalf("failed to create producer: %v", err)
	}
	t.Cleanup(func() {
		_ = producer.Close()
	})

	sent := assignmentCreated{AssignmentID: "0190c1a2-0000-7000-8000-000000000001", Title: "Report"}
	if err := producer.Send(ctx, topic, sent.AssignmentID, sent); err != nil {
		t.Fatalf("failed to send: %v", err)
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  "assignment-events-test",
		MinBytes: 1,
		MaxBytes: 10 * 1024 * 1024,
	})
	defer reader.Close()

	msg, err := reader.ReadMessage(ctx)
	if err != nil {
		t.Fatalf("failed to read message: %v", err)
	}

	var got assignmentCreated
	if err := json.Unmarshal(msg.Value, &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if got != sent {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if string(msg.Key) != sent.AssignmentID {
		t.Fatalf("unexpected key: %s", msg.Key)
	}
}

func ensureTopic(ctx context.Context, broker string, topic string) error {
	conn, err := kafkago.DialContext(ctx, "tcp", broker)
	if err != nil {
		return err
	}
	defer conn.Close()

	err = conn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err == nil {
		return nil
	}

	if strings.Contains(strings.ToLower(err.Error()), "already exists") {
		return nil
	}

	return err
}
