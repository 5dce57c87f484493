package repository

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/skala-ium/events/internal/domain"
)

// DirectoryRepository resolves professors and classes from Slack identifiers.
type DirectoryRepository struct {
	db Querier
}

func NewDirectoryRepository(db Querier) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

func (r *DirectoryRepository) GetProfessorBySlackUserID(ctx context.Context, slackUserID string) (*domain.Professor, error) {
	query := `
		SELECT professor_id, name, slack_user_id, email
		FROM professor
		WHERE slack_user_id = $1
	`

	var professor domain.Professor
	if err := pgxscan.Get(ctx, r.db, &professor, query, slackUserID); err != nil {
		return nil, handleError(err)
	}
	return &professor, nil
}

func (r *DirectoryRepository) GetClassBySlackChannelID(ctx context.Context, channelID string) (*domain.Class, error) {
	query := `
		SELECT class_id, class_name, generation, class_group, slack_channel_id
		FROM class
		WHERE slack_channel_id = $1
	`

	var class domain.Class
	if err := pgxscan.Get(ctx, r.db, &class, query, channelID); err != nil {
		return nil, handleError(err)
	}
	return &class, nil
}
