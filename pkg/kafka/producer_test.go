package kafka_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skala-ium/events/pkg/kafka"
)

func TestNewProducer(t *testing.T) {
	t.Run("no brokers", func(t *testing.T) {
		_, err := kafka.NewProducer(kafka.Config{})
		assert.Error(t, err)
	})

	t.Run("ok", func(t *testing.T) {
		p, err := kafka.NewProducer(kafka.Config{Brokers: []string{"localhost:9092"}})
		require.NoError(t, err)
		assert.NoError(t, p.Close())
	})
}

func TestNewConsumer(t *testing.T) {
	_, err := kafka.NewConsumer(kafka.ConsumerConfig{Brokers: []string{"localhost:9092"}})
	assert.Error(t, err)

	_, err = kafka.NewConsumer(kafka.ConsumerConfig{Topics: []string{"assignment-reminders"}})
	assert.Error(t, err)
}
