package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/slack-go/slack/slackevents"
	"go.uber.org/zap"

	"github.com/skala-ium/events/internal/domain"
	"github.com/skala-ium/events/pkg/logger"
)

//go:generate mockgen -destination=mocks/handler_mocks.go -package=mocks . EventEnqueuer,VerificationService

type EventEnqueuer interface {
	Enqueue(ctx context.Context, ev *domain.SlackEvent) error
}

// Message subtypes that carry a user's post. Edits, deletions and joins are dropped.
var acceptedSubtypes = map[string]bool{
	"":                 true,
	"file_share":       true,
	"thread_broadcast": true,
}

// SlackEventsHandler receives the Events API webhook. Signature checks and
// retry suppression run as middleware in front of it.
type SlackEventsHandler struct {
	queue EventEnqueuer
	log   *logger.Logger
}

func NewSlackEventsHandler(queue EventEnqueuer, log *logger.Logger) *SlackEventsHandler {
	return &SlackEventsHandler{queue: queue, log: log}
}

func (h *SlackEventsHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Error(ctx, "Failed to read request body", zap.Error(err))
		writeErrorJSON(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	apiEvent, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		// unknown inner event types land here too
		h.log.Debug(ctx, "Ignoring unparseable slack event", zap.Error(err))
		writeOK(w)
		return
	}

	switch apiEvent.Type {
	case slackevents.URLVerification:
		challenge, ok := apiEvent.Data.(*slackevents.EventsAPIURLVerificationEvent)
		if !ok {
			writeErrorJSON(w, http.StatusBadRequest, "invalid url verification payload")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"challenge": challenge.Challenge})
		return
	case slackevents.CallbackEvent:
	default:
		writeOK(w)
		return
	}

	callback, ok := apiEvent.Data.(*slackevents.EventsAPICallbackEvent)
	if !ok || apiEvent.InnerEvent.Type != string(slackevents.Message) {
		writeOK(w)
		return
	}
	msg, ok := apiEvent.InnerEvent.Data.(*slackevents.MessageEvent)
	if !ok || !acceptMessage(msg) {
		writeOK(w)
		return
	}

	ev := toSlackEvent(callback, msg, body)
	if err := h.queue.Enqueue(ctx, ev); err != nil {
		h.log.Error(ctx, "Failed to enqueue slack event",
			zap.String("event_id", ev.EventID),
			zap.String("ts", ev.TS),
			zap.Error(err),
		)
	}

	writeOK(w)
}

func (h *SlackEventsHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// acceptMessage drops bot posts so the notifier's own thread replies are
// never read back as submissions.
func acceptMessage(msg *slackevents.MessageEvent) bool {
	if !acceptedSubtypes[msg.SubType] {
		return false
	}
	if msg.BotID != "" {
		return false
	}
	return msg.User != "" && msg.TimeStamp != "" && msg.Channel != ""
}

func toSlackEvent(cb *slackevents.EventsAPICallbackEvent, msg *slackevents.MessageEvent, raw []byte) *domain.SlackEvent {
	ev := &domain.SlackEvent{
		EventID:    cb.EventID,
		EventType:  msg.Type,
		ChannelID:  msg.Channel,
		UserID:     msg.User,
		TS:         msg.TimeStamp,
		EventTime:  int64(cb.EventTime),
		RawPayload: raw,
	}
	if ev.EventType == "" {
		ev.EventType = string(slackevents.Message)
	}
	if ev.EventID == "" {
		ev.EventID = msg.Channel + ":" + msg.TimeStamp
	}
	if msg.SubType != "" {
		ev.EventSubtype = &msg.SubType
	}
	if cb.TeamID != "" {
		ev.TeamID = &cb.TeamID
	}
	if msg.Text != "" {
		ev.Text = &msg.Text
	}
	if msg.ThreadTimeStamp != "" && msg.ThreadTimeStamp != msg.TimeStamp {
		ev.ThreadTS = &msg.ThreadTimeStamp
	}
	for _, f := range msg.Files {
		ev.Files = append(ev.Files, domain.Attachment{
			ID:       f.ID,
			Name:     f.Name,
			MimeType: f.Mimetype,
			URL:      f.URLPrivate,
		})
	}
	return ev
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *SlackEventsHandler) RegisterRoutes(r chi.Router) {
	r.Post("/slack/events", h.HandleEvent)
}
