package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/skala-ium/events/internal/domain"
	"github.com/skala-ium/events/pkg/ctxdata"
	"github.com/skala-ium/events/pkg/logger"
)

type Outcome string

const (
	OutcomePersisted        Outcome = "persisted"
	OutcomeDuplicate        Outcome = "duplicate"
	OutcomeParentMissing    Outcome = "parent_missing"
	OutcomeExtractionFailed Outcome = "extraction_failed"
	OutcomeEmptyText        Outcome = "empty_text"
	OutcomeFailed           Outcome = "failed"
)

// Terminal reports whether the event is finished with. Only infrastructure
// failures are retried.
func (o Outcome) Terminal() bool {
	return o != OutcomeFailed
}

const defaultDrainBatch = 100

// Dispatcher classifies inbound events and hands them to the matching ingester.
// A single Run goroutine drains the backlog so each event is handled by one worker.
type Dispatcher struct {
	announcements Ingester
	submissions   Ingester
	queue         EventQueue
	batchSize     int
	wake          chan struct{}
	log           *logger.Logger
}

func NewDispatcher(announcements, submissions Ingester, queue EventQueue, batchSize int, log *logger.Logger) *Dispatcher {
	if batchSize <= 0 {
		batchSize = defaultDrainBatch
	}
	return &Dispatcher{
		announcements: announcements,
		submissions:   submissions,
		queue:         queue,
		batchSize:     batchSize,
		wake:          make(chan struct{}, 1),
		log:           log,
	}
}

// Route processes one event. Errors never escape; they are logged and folded into the outcome.
func (d *Dispatcher) Route(ctx context.Context, ev *domain.SlackEvent) Outcome {
	if ev.EventID != "" {
		ctx = ctxdata.WithEventID(ctx, ev.EventID)
	}

	kind, ingester := "announcement", d.announcements
	if !ev.IsAnnouncement() {
		kind, ingester = "submission", d.submissions
	}

	id, err := ingester.Ingest(ctx, ev)
	outcome := outcomeOf(err)

	fields := []zap.Field{
		zap.String("kind", kind),
		zap.String("ts", ev.TS),
		zap.String("channel_id", ev.ChannelID),
		zap.String("outcome", string(outcome)),
	}
	switch outcome {
	case OutcomePersisted:
		d.log.Debug(ctx, "Event ingested", append(fields, zap.String("id", id.String()))...)
	case OutcomeDuplicate, OutcomeEmptyText:
		d.log.Info(ctx, "Event skipped", append(fields, zap.Error(err))...)
	case OutcomeParentMissing:
		d.log.Warn(ctx, "Event dropped", append(fields, zap.String("thread_ts", derefString(ev.ThreadTS)), zap.Error(err))...)
	default:
		d.log.Error(ctx, "Event failed", append(fields, zap.Error(err))...)
	}

	return outcome
}

func outcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomePersisted
	case errors.Is(err, ErrDuplicate):
		return OutcomeDuplicate
	case errors.Is(err, ErrParentMissing):
		return OutcomeParentMissing
	case errors.Is(err, ErrExtractionFailed):
		return OutcomeExtractionFailed
	case errors.Is(err, ErrEmptyText):
		return OutcomeEmptyText
	default:
		return OutcomeFailed
	}
}

// Enqueue stores an inbound event in the backlog and wakes the drain worker.
func (d *Dispatcher) Enqueue(ctx context.Context, ev *domain.SlackEvent) error {
	inserted, err := d.queue.EnqueueEvent(ctx, ev)
	if err != nil {
		return err
	}
	if inserted {
		d.Notify()
	}
	return nil
}

// Drain makes one pass over the backlog in delivery order and returns how many
// events were finished. Failed events stay pending for the next pass and never
// hold back the events behind them.
func (d *Dispatcher) Drain(ctx context.Context) (int, error) {
	var cursor domain.BacklogCursor
	done, failed := 0, 0
	defer func() {
		if failed > 0 {
			d.log.Warn(ctx, "Backlog events left pending", zap.Int("failed", failed), zap.Int("processed", done))
		}
	}()

	for {
		events, err := d.queue.ListPending(ctx, cursor, d.batchSize)
		if err != nil {
			return done, err
		}
		if len(events) == 0 {
			return done, nil
		}

		for _, ev := range events {
			if err := ctx.Err(); err != nil {
				return done, err
			}
			cursor = ev.Cursor()

			if outcome := d.Route(ctx, ev); !outcome.Terminal() {
				failed++
				continue
			}
			if err := d.queue.MarkProcessed(ctx, ev.ID); err != nil {
				return done, err
			}
			done++
		}

		if len(events) < d.batchSize {
			return done, nil
		}
	}
}

// Notify wakes the drain worker without blocking.
func (d *Dispatcher) Notify() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Run drains once at start and again on every Notify until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.Notify()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.wake:
			n, err := d.Drain(ctx)
			if err != nil && ctx.Err() == nil {
				d.log.Error(ctx, "Backlog drain failed", zap.Int("processed", n), zap.Error(err))
			} else if n > 0 {
				d.log.Debug(ctx, "Backlog drained", zap.Int("processed", n))
			}
		}
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
