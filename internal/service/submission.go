package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skala-ium/events/internal/domain"
	"github.com/skala-ium/events/internal/errdefs"
	"github.com/skala-ium/events/pkg/logger"
)

const maxFileNameLength = 255

// SubmissionIngester stores a thread reply as a student's submission.
type SubmissionIngester struct {
	store     IngestStore
	identity  *IdentityResolver
	publisher EventPublisher
	topics    Topics
	log       *logger.Logger
}

func NewSubmissionIngester(
	store IngestStore,
	identity *IdentityResolver,
	publisher EventPublisher,
	topics Topics,
	log *logger.Logger,
) *SubmissionIngester {
	return &SubmissionIngester{
		store:     store,
		identity:  identity,
		publisher: publisher,
		topics:    topics,
		log:       log,
	}
}

func (s *SubmissionIngester) Ingest(ctx context.Context, ev *domain.SlackEvent) (uuid.UUID, error) {
	if ev.IsAnnouncement() {
		return uuid.Nil, fmt.Errorf("%w: message %s is not a thread reply", errdefs.ErrValidation, ev.TS)
	}
	parentTS := *ev.ThreadTS

	tx, err := s.store.BeginIngestTx(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(ctx, s.log, tx)

	assignment, err := tx.GetAssignmentBySlackPostTS(ctx, parentTS)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return uuid.Nil, ErrParentMissing
		}
		return uuid.Nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	student, err := s.identity.ResolveStudent(ctx, tx, ev.UserID)
	if err != nil {
		return uuid.Nil, err
	}

	if _, err := tx.GetSubmission(ctx, student.ID, assignment.ID); err == nil {
		return uuid.Nil, ErrDuplicate
	} else if !errors.Is(err, errdefs.ErrNotFound) {
		return uuid.Nil, fmt.Errorf("failed to check submission: %w", err)
	}

	submission := &domain.Submission{
		StudentID:     student.ID,
		AssignmentID:  assignment.ID,
		Status:        domain.SubmissionStatusCompleted,
		SlackThreadTS: &parentTS,
	}
	if ev.HasText() {
		submission.ContentText = ev.Text
	}
	if file, ok := ev.FirstAttachment(); ok {
		if file.URL != "" {
			submission.FileURL = &file.URL
		}
		if file.Name != "" {
			name := truncate(file.Name, maxFileNameLength)
			submission.FileName = &name
		}
		if len(ev.Files) > 1 {
			s.log.Warn(ctx, "Submission has several files, keeping the first",
				zap.String("ts", ev.TS),
				zap.Int("files", len(ev.Files)),
			)
		}
	}

	if err := tx.CreateSubmission(ctx, submission); err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) {
			return uuid.Nil, ErrDuplicate
		}
		return uuid.Nil, fmt.Errorf("failed to create submission: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit: %w", err)
	}

	s.log.Info(ctx, "Submission stored",
		zap.String("submission_id", submission.ID.String()),
		zap.String("assignment_id", assignment.ID.String()),
		zap.String("slack_user_id", ev.UserID),
	)

	publish(ctx, s.log, s.publisher, s.topics.Submissions, assignment.ID.String(), domain.SubmissionReceivedEvent{
		Type:               domain.EventTypeSubmissionReceived,
		SubmissionID:       submission.ID,
		AssignmentID:       assignment.ID,
		StudentID:          student.ID,
		StudentSlackUserID: ev.UserID,
		PlaceholderStudent: student.IsPlaceholder(),
		HasFile:            submission.FileURL != nil,
		SubmittedAt:        submission.SubmittedAt,
	})

	return submission.ID, nil
}
