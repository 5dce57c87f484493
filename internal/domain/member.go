package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PlaceholderPassword marks a student row that was auto-registered and
// cannot be logged into until the owner signs up.
const PlaceholderPassword = "TEMP"

type Professor struct {
	ID          uuid.UUID `db:"professor_id"`
	Name        string    `db:"name"`
	SlackUserID string    `db:"slack_user_id"`
	Email       *string   `db:"email"`
}

type Class struct {
	ID             uuid.UUID `db:"class_id"`
	Name           string    `db:"class_name"`
	Generation     *int      `db:"generation"`
	Group          string    `db:"class_group"`
	SlackChannelID *string   `db:"slack_channel_id"`
}

type Student struct {
	ID          uuid.UUID  `db:"student_id"`
	Name        string     `db:"name"`
	SlackUserID string     `db:"slack_user_id"`
	Password    *string    `db:"password"`
	ClassID     *uuid.UUID `db:"class_id"`
	Major       *string    `db:"major"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (s *Student) IsPlaceholder() bool {
	return s.Password != nil && *s.Password == PlaceholderPassword
}

func PlaceholderStudentName(slackUserID string) string {
	return fmt.Sprintf("unregistered_%s", slackUserID)
}

// StudentRegistration is the signup payload after the password has been hashed.
type StudentRegistration struct {
	SlackUserID  string
	Name         string
	PasswordHash string
	Major        *string
	ClassID      *uuid.UUID
}
