package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Attachment is one file shared with a Slack message.
type Attachment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mimetype"`
	URL      string `json:"url_private"`
}

// SlackEvent is an inbound message event as stored in the backlog.
type SlackEvent struct {
	ID           int64
	EventID      string
	EventType    string
	EventSubtype *string
	TeamID       *string
	ChannelID    string
	UserID       string
	Text         *string
	TS           string
	ThreadTS     *string
	EventTime    int64
	Files        []Attachment
	RawPayload   []byte
	Processed    bool
	ReceivedAt   time.Time
}

// BacklogCursor is a position in the backlog's delivery order. The zero value
// sorts before every stored event.
type BacklogCursor struct {
	EventTime int64
	ID        int64
}

// Cursor returns the backlog position of the event.
func (e *SlackEvent) Cursor() BacklogCursor {
	return BacklogCursor{EventTime: e.EventTime, ID: e.ID}
}

// IsAnnouncement reports whether the event starts a thread rather than replying in one.
func (e *SlackEvent) IsAnnouncement() bool {
	return e.ThreadTS == nil || *e.ThreadTS == ""
}

func (e *SlackEvent) HasText() bool {
	return e.Text != nil && strings.TrimSpace(*e.Text) != ""
}

// FirstAttachment returns the first shared file. Only one file per submission is kept.
func (e *SlackEvent) FirstAttachment() (Attachment, bool) {
	if len(e.Files) == 0 {
		return Attachment{}, false
	}
	return e.Files[0], true
}

// PostedAt converts the message ts into a time.
func (e *SlackEvent) PostedAt() (time.Time, error) {
	return ParseSlackTS(e.TS)
}

// ParseSlackTS parses a Slack "seconds.micros" timestamp.
func ParseSlackTS(ts string) (time.Time, error) {
	if ts == "" {
		return time.Time{}, fmt.Errorf("empty slack ts")
	}

	secPart, fracPart, _ := strings.Cut(ts, ".")
	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slack ts %q: %w", ts, err)
	}

	var nsec int64
	if fracPart != "" {
		if len(fracPart) > 9 {
			fracPart = fracPart[:9]
		}
		frac, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid slack ts %q: %w", ts, err)
		}
		for i := len(fracPart); i < 9; i++ {
			frac *= 10
		}
		nsec = frac
	}

	return time.Unix(sec, nsec).UTC(), nil
}
