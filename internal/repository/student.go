package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/skala-ium/events/internal/domain"
)

const studentColumns = `
	student_id, name, slack_user_id, password, class_id, major, created_at, updated_at
`

type StudentRepository struct {
	db Querier
}

func NewStudentRepository(db Querier) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) GetStudentBySlackUserID(ctx context.Context, slackUserID string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM student WHERE slack_user_id = $1`

	var student domain.Student
	if err := pgxscan.Get(ctx, r.db, &student, query, slackUserID); err != nil {
		return nil, handleError(err)
	}
	return &student, nil
}

// CreatePlaceholderStudent auto-registers an unknown Slack user. An existing row
// for the same Slack id is left untouched and errdefs.ErrAlreadyExists is returned.
func (r *StudentRepository) CreatePlaceholderStudent(ctx context.Context, slackUserID string) (*domain.Student, error) {
	query := `
		INSERT INTO student (student_id, name, slack_user_id, password, class_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULL, $5, $5)
		ON CONFLICT (slack_user_id) DO NOTHING
		RETURNING ` + studentColumns

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID: %w", err)
	}

	var student domain.Student
	err = pgxscan.Get(ctx, r.db, &student, query,
		id,
		domain.PlaceholderStudentName(slackUserID),
		slackUserID,
		domain.PlaceholderPassword,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, handleConflict(err)
	}
	return &student, nil
}

// RegisterStudent inserts a fully signed-up student.
func (r *StudentRepository) RegisterStudent(ctx context.Context, reg *domain.StudentRegistration) (*domain.Student, error) {
	query := `
		INSERT INTO student (student_id, name, slack_user_id, password, class_id, major, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + studentColumns

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID: %w", err)
	}

	var student domain.Student
	err = pgxscan.Get(ctx, r.db, &student, query,
		id,
		reg.Name,
		reg.SlackUserID,
		reg.PasswordHash,
		reg.ClassID,
		reg.Major,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &student, nil
}

// ClaimPlaceholderStudent turns an auto-registered row into a real account.
// errdefs.ErrNotFound means there is no placeholder row for this Slack id.
func (r *StudentRepository) ClaimPlaceholderStudent(ctx context.Context, reg *domain.StudentRegistration) (*domain.Student, error) {
	query := `
		UPDATE student
		SET name = $1, password = $2, major = $3, class_id = $4, updated_at = $5
		WHERE slack_user_id = $6 AND password = $7
		RETURNING ` + studentColumns

	var student domain.Student
	err := pgxscan.Get(ctx, r.db, &student, query,
		reg.Name,
		reg.PasswordHash,
		reg.Major,
		reg.ClassID,
		time.Now().UTC(),
		reg.SlackUserID,
		domain.PlaceholderPassword,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &student, nil
}
