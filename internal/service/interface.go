package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skala-ium/events/internal/domain"
)

type FieldExtractor interface {
	Extract(ctx context.Context, text string) (*domain.ExtractedAnnouncement, error)
}

type IngestStore interface {
	// GetAssignmentBySlackPostTS reads outside any transaction.
	GetAssignmentBySlackPostTS(ctx context.Context, ts string) (*domain.Assignment, error)
	BeginIngestTx(ctx context.Context) (IngestTx, error)
}

type StudentDirectory interface {
	GetStudentBySlackUserID(ctx context.Context, slackUserID string) (*domain.Student, error)
	CreatePlaceholderStudent(ctx context.Context, slackUserID string) (*domain.Student, error)
}

type OwnerDirectory interface {
	GetProfessorBySlackUserID(ctx context.Context, slackUserID string) (*domain.Professor, error)
	GetClassBySlackChannelID(ctx context.Context, channelID string) (*domain.Class, error)
}

// IngestTx is one ingestion transaction. Rollback after Commit is a no-op.
type IngestTx interface {
	StudentDirectory
	OwnerDirectory

	GetAssignmentBySlackPostTS(ctx context.Context, ts string) (*domain.Assignment, error)
	CreateAssignment(ctx context.Context, assignment *domain.Assignment) error
	CreateRequirements(ctx context.Context, assignmentID uuid.UUID, contents []string) ([]domain.AssignmentRequirement, error)

	GetSubmission(ctx context.Context, studentID, assignmentID uuid.UUID) (*domain.Submission, error)
	CreateSubmission(ctx context.Context, submission *domain.Submission) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type EventQueue interface {
	EnqueueEvent(ctx context.Context, ev *domain.SlackEvent) (bool, error)
	ListPending(ctx context.Context, after domain.BacklogCursor, limit int) ([]*domain.SlackEvent, error)
	MarkProcessed(ctx context.Context, id int64) error
}

type EventPublisher interface {
	Send(ctx context.Context, topic, key string, message interface{}) error
}

type StudentAccounts interface {
	ClaimPlaceholderStudent(ctx context.Context, reg *domain.StudentRegistration) (*domain.Student, error)
	RegisterStudent(ctx context.Context, reg *domain.StudentRegistration) (*domain.Student, error)
}

type SlackClient interface {
	LookupUserByEmail(ctx context.Context, email string) (*domain.SlackUser, error)
	SendDirectMessage(ctx context.Context, slackUserID, text string) error
}

// TTLStore returns cache.ErrMiss for absent or expired keys.
type TTLStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Incr bumps a counter. The ttl is applied when the counter is created.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Delete(ctx context.Context, key string) error
}

type Ingester interface {
	Ingest(ctx context.Context, ev *domain.SlackEvent) (uuid.UUID, error)
}

// Topics names the Kafka topics domain events go to. An empty topic disables publishing.
type Topics struct {
	Assignments string
	Submissions string
	Reminders   string
}

type ReminderStore interface {
	ListDueForReminder(ctx context.Context, now time.Time, window time.Duration) ([]*domain.Assignment, error)
	MarkReminderSent(ctx context.Context, assignmentID uuid.UUID, sentAt time.Time) (bool, error)
}
