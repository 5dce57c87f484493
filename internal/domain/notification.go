package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeAssignmentCreated  = "assignment.created"
	EventTypeSubmissionReceived = "submission.received"
	EventTypeDeadlineReminder   = "assignment.deadline_reminder"
)

// AssignmentCreatedEvent is published after an announcement has been stored.
type AssignmentCreatedEvent struct {
	Type             string     `json:"type"`
	AssignmentID     uuid.UUID  `json:"assignment_id"`
	ClassID          *uuid.UUID `json:"class_id,omitempty"`
	ProfessorID      *uuid.UUID `json:"professor_id,omitempty"`
	Title            string     `json:"title"`
	Topic            string     `json:"topic"`
	Deadline         time.Time  `json:"deadline"`
	RequirementCount int        `json:"requirement_count"`
	SlackChannelID   string     `json:"slack_channel_id"`
	SlackPostTS      string     `json:"slack_post_ts"`
}

// SubmissionReceivedEvent is published after a submission has been stored.
type SubmissionReceivedEvent struct {
	Type               string    `json:"type"`
	SubmissionID       uuid.UUID `json:"submission_id"`
	AssignmentID       uuid.UUID `json:"assignment_id"`
	StudentID          uuid.UUID `json:"student_id"`
	StudentSlackUserID string    `json:"student_slack_user_id"`
	PlaceholderStudent bool      `json:"placeholder_student"`
	HasFile            bool      `json:"has_file"`
	SubmittedAt        time.Time `json:"submitted_at"`
}

// DeadlineReminderEvent asks the notifier to post a reminder in the announcement thread.
type DeadlineReminderEvent struct {
	Type           string    `json:"type"`
	AssignmentID   uuid.UUID `json:"assignment_id"`
	Title          string    `json:"title"`
	Deadline       time.Time `json:"deadline"`
	SlackChannelID string    `json:"slack_channel_id"`
	SlackPostTS    string    `json:"slack_post_ts"`
}

// SlackUser is the part of a Slack profile the signup flow needs.
type SlackUser struct {
	ID       string
	Name     string
	RealName string
	Deleted  bool
}
