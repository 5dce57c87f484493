package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/skala-ium/events/internal/domain"
)

const submissionColumns = `
	submission_id, student_id, assignment_id, content_text, file_url, file_name,
	status, slack_thread_ts, submitted_at
`

type SubmissionRepository struct {
	db Querier
}

func NewSubmissionRepository(db Querier) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) GetSubmission(ctx context.Context, studentID, assignmentID uuid.UUID) (*domain.Submission, error) {
	query := `
		SELECT ` + submissionColumns + `
		FROM submission
		WHERE student_id = $1 AND assignment_id = $2
	`

	var submission domain.Submission
	if err := pgxscan.Get(ctx, r.db, &submission, query, studentID, assignmentID); err != nil {
		return nil, handleError(err)
	}
	return &submission, nil
}

// CreateSubmission inserts the submission and fills in its ID and submitted_at.
// A second submission for the same (student, assignment) yields errdefs.ErrAlreadyExists.
func (r *SubmissionRepository) CreateSubmission(ctx context.Context, submission *domain.Submission) error {
	query := `
		INSERT INTO submission (
			submission_id, student_id, assignment_id, content_text, file_url, file_name,
			status, slack_thread_ts, submitted_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (student_id, assignment_id) DO NOTHING
		RETURNING submission_id, submitted_at
	`

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate UUID: %w", err)
	}

	status := submission.Status
	if status == "" {
		status = domain.SubmissionStatusCompleted
	}

	var created struct {
		ID          uuid.UUID `db:"submission_id"`
		SubmittedAt time.Time `db:"submitted_at"`
	}
	err = pgxscan.Get(ctx, r.db, &created, query,
		id,
		submission.StudentID,
		submission.AssignmentID,
		submission.ContentText,
		submission.FileURL,
		submission.FileName,
		string(status),
		submission.SlackThreadTS,
		time.Now().UTC(),
	)
	if err != nil {
		return handleConflict(err)
	}

	submission.ID = created.ID
	submission.Status = status
	submission.SubmittedAt = created.SubmittedAt
	return nil
}
