package domain

import (
	"time"

	"github.com/google/uuid"
)

type Assignment struct {
	ID             uuid.UUID  `db:"assignment_id"`
	ClassID        *uuid.UUID `db:"class_id"`
	ProfessorID    *uuid.UUID `db:"professor_id"`
	Title          string     `db:"title"`
	Content        string     `db:"content"`
	Topic          string     `db:"topic"`
	Deadline       time.Time  `db:"deadline"`
	SlackPostTS    string     `db:"slack_post_ts"`
	SlackChannelID *string    `db:"slack_channel_id"`
	CreatedAt      time.Time  `db:"created_at"`
}

type AssignmentRequirement struct {
	ID           uuid.UUID `db:"requirement_id"`
	AssignmentID uuid.UUID `db:"assignment_id"`
	Content      string    `db:"content"`
}

// ExtractedAnnouncement is what the field extractor reads out of an announcement.
// Deadline is the raw value from the model; nil when the text carries none.
type ExtractedAnnouncement struct {
	Title        string
	Content      string
	Deadline     *string
	Topic        string
	Requirements []string
}

// VerificationResult is written by the external grader.
type VerificationResult struct {
	ID            uuid.UUID `db:"result_id"`
	RequirementID uuid.UUID `db:"requirement_id"`
	SubmissionID  uuid.UUID `db:"submission_id"`
	IsMet         bool      `db:"is_met"`
	Feedback      *string   `db:"feedback"`
	CreatedAt     time.Time `db:"created_at"`
}
