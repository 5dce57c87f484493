package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/skala-ium/events/internal/domain"
)

const assignmentColumns = `
	assignment_id, class_id, professor_id, title, content, topic,
	deadline, slack_post_ts, slack_channel_id, created_at
`

type AssignmentRepository struct {
	db Querier
}

func NewAssignmentRepository(db Querier) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) GetAssignmentBySlackPostTS(ctx context.Context, ts string) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignment WHERE slack_post_ts = $1`

	var assignment domain.Assignment
	if err := pgxscan.Get(ctx, r.db, &assignment, query, ts); err != nil {
		return nil, handleError(err)
	}
	return &assignment, nil
}

// CreateAssignment inserts the assignment and fills in its ID and created_at.
// A row with the same slack_post_ts already present yields errdefs.ErrAlreadyExists.
func (r *AssignmentRepository) CreateAssignment(ctx context.Context, assignment *domain.Assignment) error {
	query := `
		INSERT INTO assignment (
			assignment_id, class_id, professor_id, title, content, topic,
			deadline, slack_post_ts, slack_channel_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (slack_post_ts) DO NOTHING
		RETURNING assignment_id, created_at
	`

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate UUID: %w", err)
	}

	var created struct {
		ID        uuid.UUID `db:"assignment_id"`
		CreatedAt time.Time `db:"created_at"`
	}
	err = pgxscan.Get(ctx, r.db, &created, query,
		id,
		assignment.ClassID,
		assignment.ProfessorID,
		assignment.Title,
		assignment.Content,
		assignment.Topic,
		assignment.Deadline,
		assignment.SlackPostTS,
		assignment.SlackChannelID,
		time.Now().UTC(),
	)
	if err != nil {
		return handleConflict(err)
	}

	assignment.ID = created.ID
	assignment.CreatedAt = created.CreatedAt
	return nil
}

func (r *AssignmentRepository) CreateRequirements(ctx context.Context, assignmentID uuid.UUID, contents []string) ([]domain.AssignmentRequirement, error) {
	query := `
		INSERT INTO assignment_requirement (requirement_id, assignment_id, content)
		VALUES ($1, $2, $3)
	`

	requirements := make([]domain.AssignmentRequirement, 0, len(contents))
	for _, content := range contents {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate UUID: %w", err)
		}

		if _, err := r.db.Exec(ctx, query, id, assignmentID, content); err != nil {
			return nil, handleError(err)
		}

		requirements = append(requirements, domain.AssignmentRequirement{
			ID:           id,
			AssignmentID: assignmentID,
			Content:      content,
		})
	}

	return requirements, nil
}

// ListDueForReminder returns assignments whose deadline falls in (now, now+window]
// and for which no reminder has been recorded yet.
func (r *AssignmentRepository) ListDueForReminder(ctx context.Context, now time.Time, window time.Duration) ([]*domain.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignment a
		WHERE a.deadline > $1 AND a.deadline <= $2
		  AND NOT EXISTS (
			SELECT 1 FROM assignment_reminder r WHERE r.assignment_id = a.assignment_id
		  )
		ORDER BY a.deadline
	`

	var assignments []*domain.Assignment
	if err := pgxscan.Select(ctx, r.db, &assignments, query, now, now.Add(window)); err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	return assignments, nil
}

// MarkReminderSent records the reminder. It reports false when another worker got there first.
func (r *AssignmentRepository) MarkReminderSent(ctx context.Context, assignmentID uuid.UUID, sentAt time.Time) (bool, error) {
	query := `
		INSERT INTO assignment_reminder (assignment_id, sent_at)
		VALUES ($1, $2)
		ON CONFLICT (assignment_id) DO NOTHING
	`

	tag, err := r.db.Exec(ctx, query, assignmentID, sentAt)
	if err != nil {
		return false, handleError(err)
	}
	return tag.RowsAffected() == 1, nil
}
