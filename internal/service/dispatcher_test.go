package service_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skala-ium/events/internal/domain"
	"github.com/skala-ium/events/internal/service"
	"github.com/skala-ium/events/internal/service/mocks"
	"github.com/skala-ium/events/pkg/logger"
)

func setupDispatcher(t *testing.T) (*service.Dispatcher, *mocks.MockIngester, *mocks.MockIngester, *mocks.MockEventQueue) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	announcements := mocks.NewMockIngester(ctrl)
	submissions := mocks.NewMockIngester(ctrl)
	queue := mocks.NewMockEventQueue(ctrl)
	d := service.NewDispatcher(announcements, submissions, queue, 2, logger.NewNop())
	return d, announcements, submissions, queue
}

func TestDispatcherRoute(t *testing.T) {
	t.Run("NoThreadIsAnnouncement", func(t *testing.T) {
		d, announcements, _, _ := setupDispatcher(t)
		ev := announcementEvent("1.0", "a reply-looking text in a thread?")
		announcements.EXPECT().Ingest(gomock.Any(), ev).Return(uuid.New(), nil)

		assert.Equal(t, service.OutcomePersisted, d.Route(context.Background(), ev))
	})

	t.Run("ThreadIsSubmission", func(t *testing.T) {
		d, _, submissions, _ := setupDispatcher(t)
		ev := submissionEvent("2.0", "1.0", "US1", "New assignment: HW2, due Friday")
		submissions.EXPECT().Ingest(gomock.Any(), ev).Return(uuid.New(), nil)

		assert.Equal(t, service.OutcomePersisted, d.Route(context.Background(), ev))
	})

	t.Run("EmptyThreadTSIsAnnouncement", func(t *testing.T) {
		d, announcements, _, _ := setupDispatcher(t)
		ev := announcementEvent("1.0", "text")
		empty := ""
		ev.ThreadTS = &empty
		announcements.EXPECT().Ingest(gomock.Any(), ev).Return(uuid.New(), nil)

		d.Route(context.Background(), ev)
	})

	outcomes := []struct {
		err  error
		want service.Outcome
	}{
		{err: service.ErrDuplicate, want: service.OutcomeDuplicate},
		{err: fmt.Errorf("wrapped: %w", service.ErrParentMissing), want: service.OutcomeParentMissing},
		{err: fmt.Errorf("%w: bad json", service.ErrExtractionFailed), want: service.OutcomeExtractionFailed},
		{err: service.ErrEmptyText, want: service.OutcomeEmptyText},
		{err: errors.New("connection refused"), want: service.OutcomeFailed},
	}
	for _, tt := range outcomes {
		t.Run("Outcome_"+string(tt.want), func(t *testing.T) {
			d, announcements, _, _ := setupDispatcher(t)
			announcements.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return(uuid.Nil, tt.err)

			got := d.Route(context.Background(), announcementEvent("1.0", "x"))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != service.OutcomeFailed, got.Terminal())
		})
	}
}

func TestDispatcherDrain(t *testing.T) {
	t.Run("MarksTerminalOutcomesProcessed", func(t *testing.T) {
		d, announcements, submissions, queue := setupDispatcher(t)
		a := announcementEvent("1.0", "a")
		a.ID = 1
		s := submissionEvent("2.0", "1.0", "US1", "s")
		s.ID = 2
		orphan := submissionEvent("3.0", "9.0", "US1", "s")
		orphan.ID = 3

		gomock.InOrder(
			queue.EXPECT().ListPending(gomock.Any(), domain.BacklogCursor{}, 2).Return([]*domain.SlackEvent{a, s}, nil),
			announcements.EXPECT().Ingest(gomock.Any(), a).Return(uuid.New(), nil),
			queue.EXPECT().MarkProcessed(gomock.Any(), int64(1)).Return(nil),
			submissions.EXPECT().Ingest(gomock.Any(), s).Return(uuid.Nil, service.ErrDuplicate),
			queue.EXPECT().MarkProcessed(gomock.Any(), int64(2)).Return(nil),
			queue.EXPECT().ListPending(gomock.Any(), s.Cursor(), 2).Return([]*domain.SlackEvent{orphan}, nil),
			submissions.EXPECT().Ingest(gomock.Any(), orphan).Return(uuid.Nil, service.ErrParentMissing),
			queue.EXPECT().MarkProcessed(gomock.Any(), int64(3)).Return(nil),
		)

		n, err := d.Drain(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("FailureDoesNotBlockLaterEvents", func(t *testing.T) {
		d, announcements, _, queue := setupDispatcher(t)
		a := announcementEvent("1.0", "a")
		a.ID = 1
		b := announcementEvent("2.0", "b")
		b.ID = 2
		c := announcementEvent("3.0", "c")
		c.ID = 3

		gomock.InOrder(
			queue.EXPECT().ListPending(gomock.Any(), domain.BacklogCursor{}, 2).Return([]*domain.SlackEvent{a, b}, nil),
			announcements.EXPECT().Ingest(gomock.Any(), a).Return(uuid.Nil, errors.New("db down")),
			announcements.EXPECT().Ingest(gomock.Any(), b).Return(uuid.New(), nil),
			queue.EXPECT().MarkProcessed(gomock.Any(), int64(2)).Return(nil),
			queue.EXPECT().ListPending(gomock.Any(), b.Cursor(), 2).Return([]*domain.SlackEvent{c}, nil),
			announcements.EXPECT().Ingest(gomock.Any(), c).Return(uuid.Nil, errors.New("db down")),
		)

		n, err := d.Drain(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("ListError", func(t *testing.T) {
		d, _, _, queue := setupDispatcher(t)
		queue.EXPECT().ListPending(gomock.Any(), domain.BacklogCursor{}, 2).Return(nil, errors.New("db down"))

		_, err := d.Drain(context.Background())
		assert.Error(t, err)
	})
}

func TestDispatcherEnqueue(t *testing.T) {
	d, _, _, queue := setupDispatcher(t)
	ev := announcementEvent("1.0", "a")

	queue.EXPECT().EnqueueEvent(gomock.Any(), ev).Return(true, nil)
	require.NoError(t, d.Enqueue(context.Background(), ev))

	queue.EXPECT().EnqueueEvent(gomock.Any(), ev).Return(false, nil)
	require.NoError(t, d.Enqueue(context.Background(), ev))

	// Repeated wakeups never block.
	d.Notify()
	d.Notify()
}

func TestDispatcherRun(t *testing.T) {
	d, announcements, _, queue := setupDispatcher(t)
	a := announcementEvent("1.0", "a")
	a.ID = 7

	drained := make(chan struct{})
	queue.EXPECT().ListPending(gomock.Any(), domain.BacklogCursor{}, 2).Return([]*domain.SlackEvent{a}, nil)
	announcements.EXPECT().Ingest(gomock.Any(), a).Return(uuid.New(), nil)
	queue.EXPECT().MarkProcessed(gomock.Any(), int64(7)).DoAndReturn(func(context.Context, int64) error {
		close(drained)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	select {
	case <-drained:
	case <-time.After(2 * time.Second):
		t.Fatal("backlog was not drained")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop")
	}
}

// memQueue is an in-memory backlog keyed by event id.
type memQueue struct {
	events map[string]*domain.SlackEvent
	nextID int64
}

func newMemQueue() *memQueue {
	return &memQueue{events: map[string]*domain.SlackEvent{}}
}

func (q *memQueue) EnqueueEvent(_ context.Context, ev *domain.SlackEvent) (bool, error) {
	if _, ok := q.events[ev.EventID]; ok {
		return false, nil
	}
	q.nextID++
	stored := *ev
	stored.ID = q.nextID
	q.events[ev.EventID] = &stored
	return true, nil
}

func (q *memQueue) ListPending(_ context.Context, after domain.BacklogCursor, limit int) ([]*domain.SlackEvent, error) {
	var out []*domain.SlackEvent
	for _, ev := range q.events {
		if ev.Processed {
			continue
		}
		if ev.EventTime < after.EventTime || (ev.EventTime == after.EventTime && ev.ID <= after.ID) {
			continue
		}
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EventTime != out[j].EventTime {
			return out[i].EventTime < out[j].EventTime
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (q *memQueue) MarkProcessed(_ context.Context, id int64) error {
	for _, ev := range q.events {
		if ev.ID == id {
			ev.Processed = true
			return nil
		}
	}
	return errors.New("unknown event")
}

func TestEndToEndScenarios(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	log := logger.NewNop()
	store := newMemStore()
	queue := newMemQueue()
	extractor := mocks.NewMockFieldExtractor(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)
	identity := service.NewIdentityResolver(log)

	announcements := service.NewAnnouncementIngester(store, extractor, identity, publisher, testTopics,
		service.AnnouncementConfig{Location: time.UTC, DefaultDeadlineDays: 7}, log)
	submissions := service.NewSubmissionIngester(store, identity, publisher, testTopics, log)
	d := service.NewDispatcher(announcements, submissions, queue, 10, log)
	ctx := context.Background()

	extractor.EXPECT().Extract(gomock.Any(), "Submit report by...").Times(1).Return(&domain.ExtractedAnnouncement{
		Title:        "Report",
		Content:      "Submit report by...",
		Deadline:     strPtr("2024-05-01"),
		Topic:        "ML",
		Requirements: []string{"PDF", "3 pages"},
	}, nil)
	publisher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2).Return(nil)

	// A: announcement.
	a := announcementEvent("1", "Submit report by...")
	a.EventTime = 100
	require.NoError(t, d.Enqueue(ctx, a))
	_, err := d.Drain(ctx)
	require.NoError(t, err)

	require.Equal(t, 1, store.countAssignments())
	assignment := store.state.assignments["1"]
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), assignment.Deadline)
	assert.Len(t, store.state.requirements[assignment.ID], 2)

	// B: the same announcement delivered again under a new envelope.
	again := announcementEvent("1", "Submit report by...")
	again.EventID = "EvRetry"
	again.EventTime = 101
	require.NoError(t, d.Enqueue(ctx, again))
	_, err = d.Drain(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, store.countAssignments())
	assert.Len(t, store.state.requirements[assignment.ID], 2)

	// C: submission in the announcement thread.
	c := submissionEvent("2", "1", "U1", "here", domain.Attachment{Name: "hw.pdf", URL: "http://files/hw.pdf"})
	c.EventTime = 102
	require.NoError(t, d.Enqueue(ctx, c))
	n, err := d.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.Equal(t, 1, store.countSubmissions())
	for key, sub := range store.state.submissions {
		assert.Equal(t, assignment.ID, key[1])
		require.NotNil(t, sub.FileName)
		assert.Equal(t, "hw.pdf", *sub.FileName)
	}

	pending, err := queue.ListPending(ctx, domain.BacklogCursor{}, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

// flakyIngester fails every event whose ts is listed and records the rest.
type flakyIngester struct {
	failTS map[string]bool
	seen   map[string]int
}

func (f *flakyIngester) Ingest(_ context.Context, ev *domain.SlackEvent) (uuid.UUID, error) {
	f.seen[ev.TS]++
	if f.failTS[ev.TS] {
		return uuid.Nil, errors.New("connection reset")
	}
	return uuid.New(), nil
}

func TestDrainSkipsPastFailedEvents(t *testing.T) {
	queue := newMemQueue()
	ingester := &flakyIngester{failTS: map[string]bool{"1.0": true}, seen: map[string]int{}}
	d := service.NewDispatcher(ingester, ingester, queue, 1, logger.NewNop())
	ctx := context.Background()

	bad := announcementEvent("1.0", "bad")
	bad.EventTime = 100
	good := announcementEvent("2.0", "good")
	good.EventTime = 101
	require.NoError(t, d.Enqueue(ctx, bad))
	require.NoError(t, d.Enqueue(ctx, good))

	n, err := d.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, queue.events[good.EventID].Processed)
	assert.False(t, queue.events[bad.EventID].Processed)

	// The next pass retries only the failed event.
	n, err = d.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 2, ingester.seen["1.0"])
	assert.Equal(t, 1, ingester.seen["2.0"])

	pending, err := queue.ListPending(ctx, domain.BacklogCursor{}, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "1.0", pending[0].TS)

	// Once the failure clears, the event is finished.
	ingester.failTS["1.0"] = false
	n, err = d.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, queue.events[bad.EventID].Processed)
}
