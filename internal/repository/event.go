package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/skala-ium/events/internal/domain"
	"github.com/skala-ium/events/internal/errdefs"
)

type eventRow struct {
	ID           int64     `db:"id"`
	EventID      string    `db:"event_id"`
	EventType    string    `db:"event_type"`
	EventSubtype *string   `db:"event_subtype"`
	TeamID       *string   `db:"team_id"`
	ChannelID    string    `db:"channel_id"`
	UserID       string    `db:"user_id"`
	Text         *string   `db:"text"`
	TS           string    `db:"ts"`
	ThreadTS     *string   `db:"thread_ts"`
	EventTime    int64     `db:"event_time"`
	Files        []byte    `db:"files"`
	RawPayload   []byte    `db:"raw_payload"`
	Processed    bool      `db:"processed"`
	ReceivedAt   time.Time `db:"received_at"`
}

func (r *eventRow) toDomain() (*domain.SlackEvent, error) {
	ev := &domain.SlackEvent{
		ID:           r.ID,
		EventID:      r.EventID,
		EventType:    r.EventType,
		EventSubtype: r.EventSubtype,
		TeamID:       r.TeamID,
		ChannelID:    r.ChannelID,
		UserID:       r.UserID,
		Text:         r.Text,
		TS:           r.TS,
		ThreadTS:     r.ThreadTS,
		EventTime:    r.EventTime,
		RawPayload:   r.RawPayload,
		Processed:    r.Processed,
		ReceivedAt:   r.ReceivedAt,
	}
	if len(r.Files) > 0 {
		if err := json.Unmarshal(r.Files, &ev.Files); err != nil {
			return nil, fmt.Errorf("failed to decode files of event %s: %w", r.EventID, err)
		}
	}
	return ev, nil
}

// EventRepository is the durable backlog of inbound Slack events.
type EventRepository struct {
	db Querier
}

func NewEventRepository(db Querier) *EventRepository {
	return &EventRepository{db: db}
}

// EnqueueEvent stores the event unless one with the same event_id is already queued.
// It reports whether a new row was written.
func (r *EventRepository) EnqueueEvent(ctx context.Context, ev *domain.SlackEvent) (bool, error) {
	query := `
		INSERT INTO slack_events (
			event_id, event_type, event_subtype, team_id, channel_id, user_id,
			text, ts, thread_ts, event_time, files, raw_payload, received_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (event_id) DO NOTHING
	`

	files := ev.Files
	if files == nil {
		files = []domain.Attachment{}
	}
	filesJSON, err := json.Marshal(files)
	if err != nil {
		return false, fmt.Errorf("failed to encode files: %w", err)
	}

	var raw []byte
	if len(ev.RawPayload) > 0 {
		raw = ev.RawPayload
	}

	tag, err := r.db.Exec(ctx, query,
		ev.EventID,
		ev.EventType,
		ev.EventSubtype,
		ev.TeamID,
		ev.ChannelID,
		ev.UserID,
		ev.Text,
		ev.TS,
		ev.ThreadTS,
		ev.EventTime,
		filesJSON,
		raw,
		time.Now().UTC(),
	)
	if err != nil {
		return false, handleError(err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListPending returns unprocessed events positioned after the cursor, in delivery order.
func (r *EventRepository) ListPending(ctx context.Context, after domain.BacklogCursor, limit int) ([]*domain.SlackEvent, error) {
	query := `
		SELECT id, event_id, event_type, event_subtype, team_id, channel_id, user_id,
		       text, ts, thread_ts, event_time, files, raw_payload, processed, received_at
		FROM slack_events
		WHERE processed = FALSE AND (event_time, id) > ($1, $2)
		ORDER BY event_time ASC, id ASC
		LIMIT $3
	`

	var rows []*eventRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, after.EventTime, after.ID, limit); err != nil {
		return nil, fmt.Errorf("failed to query pending events: %w", err)
	}

	events := make([]*domain.SlackEvent, 0, len(rows))
	for _, row := range rows {
		ev, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func (r *EventRepository) MarkProcessed(ctx context.Context, id int64) error {
	query := `UPDATE slack_events SET processed = TRUE WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %d: %w", id, errdefs.ErrNotFound)
	}
	return nil
}
