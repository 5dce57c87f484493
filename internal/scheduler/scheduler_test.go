package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skala-ium/events/pkg/logger"
)

func TestAdd_InvalidSchedule(t *testing.T) {
	s := New(logger.NewNop())

	err := s.Add("drain", "every minute", func(context.Context) error { return nil })

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "drain")
}

func TestScheduler_RunsJobs(t *testing.T) {
	s := New(logger.NewNop())

	var ok, failing atomic.Int32
	require.NoError(t, s.Add("ok", "@every 1s", func(context.Context) error {
		ok.Add(1)
		return nil
	}))
	require.NoError(t, s.Add("failing", "@every 1s", func(context.Context) error {
		failing.Add(1)
		return errors.New("boom")
	}))

	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return ok.Load() > 0 && failing.Load() > 0
	}, 3*time.Second, 50*time.Millisecond)
}

func TestStop_CancelsJobContext(t *testing.T) {
	s := New(logger.NewNop())

	started := make(chan struct{}, 1)
	var cancelled atomic.Bool
	require.NoError(t, s.Add("slow", "@every 1s", func(ctx context.Context) error {
		select {
		case started <- struct{}{}:
		default:
		}
		<-ctx.Done()
		cancelled.Store(true)
		return ctx.Err()
	}))

	s.Start(context.Background())

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not start")
	}

	s.Stop()
	assert.True(t, cancelled.Load())
}

func TestStop_NotStarted(t *testing.T) {
	s := New(logger.NewNop())
	assert.NotPanics(t, s.Stop)
}
