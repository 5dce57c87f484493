package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skala-ium/events/internal/domain"
	"github.com/skala-ium/events/internal/errdefs"
	"github.com/skala-ium/events/pkg/logger"
)

// Column limits of the assignment tables.
const (
	maxTitleLength       = 200
	maxTopicLength       = 100
	maxRequirementLength = 500
)

type AnnouncementConfig struct {
	Location            *time.Location
	DefaultDeadlineDays int
}

// AnnouncementIngester turns a top-level channel message into an assignment.
type AnnouncementIngester struct {
	store     IngestStore
	extractor FieldExtractor
	identity  *IdentityResolver
	publisher EventPublisher
	topics    Topics
	cfg       AnnouncementConfig
	log       *logger.Logger
}

func NewAnnouncementIngester(
	store IngestStore,
	extractor FieldExtractor,
	identity *IdentityResolver,
	publisher EventPublisher,
	topics Topics,
	cfg AnnouncementConfig,
	log *logger.Logger,
) *AnnouncementIngester {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.DefaultDeadlineDays <= 0 {
		cfg.DefaultDeadlineDays = 7
	}
	return &AnnouncementIngester{
		store:     store,
		extractor: extractor,
		identity:  identity,
		publisher: publisher,
		topics:    topics,
		cfg:       cfg,
		log:       log,
	}
}

func (a *AnnouncementIngester) Ingest(ctx context.Context, ev *domain.SlackEvent) (uuid.UUID, error) {
	if !ev.HasText() {
		return uuid.Nil, ErrEmptyText
	}

	// Cheap pre-check so redeliveries never reach the model.
	if _, err := a.store.GetAssignmentBySlackPostTS(ctx, ev.TS); err == nil {
		return uuid.Nil, ErrDuplicate
	} else if !errors.Is(err, errdefs.ErrNotFound) {
		return uuid.Nil, fmt.Errorf("failed to check assignment: %w", err)
	}

	extracted, err := a.extractor.Extract(ctx, *ev.Text)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	postedAt, err := ev.PostedAt()
	if err != nil {
		a.log.Warn(ctx, "Unparseable message ts, using event time", zap.String("ts", ev.TS), zap.Error(err))
		postedAt = time.Unix(ev.EventTime, 0).UTC()
	}

	deadline, fromText := ResolveDeadline(extracted.Deadline, postedAt, a.cfg.Location, a.cfg.DefaultDeadlineDays)
	if !fromText && extracted.Deadline != nil {
		a.log.Warn(ctx, "Extracted deadline not understood, using default",
			zap.String("ts", ev.TS),
			zap.String("deadline", *extracted.Deadline),
		)
	}

	tx, err := a.store.BeginIngestTx(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(ctx, a.log, tx)

	if _, err := tx.GetAssignmentBySlackPostTS(ctx, ev.TS); err == nil {
		return uuid.Nil, ErrDuplicate
	} else if !errors.Is(err, errdefs.ErrNotFound) {
		return uuid.Nil, fmt.Errorf("failed to check assignment: %w", err)
	}

	professorID, classID, err := a.identity.ResolveOwner(ctx, tx, ev.UserID, ev.ChannelID)
	if err != nil {
		return uuid.Nil, err
	}

	channelID := ev.ChannelID
	assignment := &domain.Assignment{
		ClassID:        classID,
		ProfessorID:    professorID,
		Title:          truncate(strings.TrimSpace(extracted.Title), maxTitleLength),
		Content:        extracted.Content,
		Topic:          truncate(strings.TrimSpace(extracted.Topic), maxTopicLength),
		Deadline:       deadline,
		SlackPostTS:    ev.TS,
		SlackChannelID: &channelID,
	}

	if err := tx.CreateAssignment(ctx, assignment); err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) {
			return uuid.Nil, ErrDuplicate
		}
		return uuid.Nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	requirements, err := tx.CreateRequirements(ctx, assignment.ID, normalizeRequirements(extracted.Requirements))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create requirements: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit: %w", err)
	}

	a.log.Info(ctx, "Assignment stored",
		zap.String("assignment_id", assignment.ID.String()),
		zap.String("ts", ev.TS),
		zap.Time("deadline", assignment.Deadline),
		zap.Int("requirements", len(requirements)),
	)

	publish(ctx, a.log, a.publisher, a.topics.Assignments, assignment.ID.String(), domain.AssignmentCreatedEvent{
		Type:             domain.EventTypeAssignmentCreated,
		AssignmentID:     assignment.ID,
		ClassID:          assignment.ClassID,
		ProfessorID:      assignment.ProfessorID,
		Title:            assignment.Title,
		Topic:            assignment.Topic,
		Deadline:         assignment.Deadline,
		RequirementCount: len(requirements),
		SlackChannelID:   ev.ChannelID,
		SlackPostTS:      ev.TS,
	})

	return assignment.ID, nil
}

func normalizeRequirements(in []string) []string {
	out := make([]string, 0, len(in))
	for _, r := range in {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		out = append(out, truncate(r, maxRequirementLength))
	}
	return out
}
