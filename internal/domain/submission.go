package domain

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionStatus string

const SubmissionStatusCompleted SubmissionStatus = "COMPLETED"

type Submission struct {
	ID            uuid.UUID        `db:"submission_id"`
	StudentID     uuid.UUID        `db:"student_id"`
	AssignmentID  uuid.UUID        `db:"assignment_id"`
	ContentText   *string          `db:"content_text"`
	FileURL       *string          `db:"file_url"`
	FileName      *string          `db:"file_name"`
	Status        SubmissionStatus `db:"status"`
	SlackThreadTS *string          `db:"slack_thread_ts"`
	SubmittedAt   time.Time        `db:"submitted_at"`
}
