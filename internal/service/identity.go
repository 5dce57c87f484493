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

// IdentityResolver maps Slack identities onto stored people and classes.
type IdentityResolver struct {
	log *logger.Logger
}

func NewIdentityResolver(log *logger.Logger) *IdentityResolver {
	return &IdentityResolver{log: log}
}

// ResolveStudent returns the student for slackUserID, auto-registering a
// placeholder the first time the user is seen. An existing row is never changed.
func (r *IdentityResolver) ResolveStudent(ctx context.Context, dir StudentDirectory, slackUserID string) (*domain.Student, error) {
	student, err := dir.GetStudentBySlackUserID(ctx, slackUserID)
	if err == nil {
		return student, nil
	}
	if !errors.Is(err, errdefs.ErrNotFound) {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	student, err = dir.CreatePlaceholderStudent(ctx, slackUserID)
	if err == nil {
		r.log.Info(ctx, "Registered placeholder student", zap.String("slack_user_id", slackUserID))
		return student, nil
	}
	if !errors.Is(err, errdefs.ErrAlreadyExists) {
		return nil, fmt.Errorf("failed to create placeholder student: %w", err)
	}

	// Created concurrently by someone else.
	student, err = dir.GetStudentBySlackUserID(ctx, slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-fetch student: %w", err)
	}
	return student, nil
}

// ResolveOwner looks up the posting professor and the channel's class. Either may be nil.
func (r *IdentityResolver) ResolveOwner(ctx context.Context, dir OwnerDirectory, senderID, channelID string) (professorID, classID *uuid.UUID, err error) {
	professor, err := dir.GetProfessorBySlackUserID(ctx, senderID)
	switch {
	case err == nil:
		professorID = &professor.ID
	case errors.Is(err, errdefs.ErrNotFound):
		r.log.Warn(ctx, "Announcement sender is not a known professor", zap.String("slack_user_id", senderID))
	default:
		return nil, nil, fmt.Errorf("failed to get professor: %w", err)
	}

	class, err := dir.GetClassBySlackChannelID(ctx, channelID)
	switch {
	case err == nil:
		classID = &class.ID
	case errors.Is(err, errdefs.ErrNotFound):
		r.log.Debug(ctx, "No class bound to channel", zap.String("channel_id", channelID))
	default:
		return nil, nil, fmt.Errorf("failed to get class: %w", err)
	}

	return professorID, classID, nil
}
