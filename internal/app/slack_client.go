package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/slack-go/slack"

	"github.com/skala-ium/events/internal/domain"
	"github.com/skala-ium/events/internal/errdefs"
	"github.com/skala-ium/events/pkg/retry"
)

const (
	slackMaxRetries = 3
	slackBaseDelay  = 500 * time.Millisecond
)

// SlackClient is the small part of the Slack Web API this service calls.
// Rate-limited calls are retried with backoff.
type SlackClient struct {
	api *slack.Client
}

func NewSlackClient(botToken string, options ...slack.Option) *SlackClient {
	return &SlackClient{api: slack.New(botToken, options...)}
}

func isRateLimited(err error) bool {
	var rl *slack.RateLimitedError
	return errors.As(err, &rl)
}

func (c *SlackClient) LookupUserByEmail(ctx context.Context, email string) (*domain.SlackUser, error) {
	user, err := retry.WithBackoff(ctx, slackMaxRetries, slackBaseDelay, isRateLimited, func() (*slack.User, error) {
		return c.api.GetUserByEmailContext(ctx, email)
	})
	if err != nil {
		var apiErr slack.SlackErrorResponse
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("lookup %s: %s: %w", email, apiErr.Err, errdefs.ErrNotFound)
		}
		return nil, fmt.Errorf("users.lookupByEmail: %w", err)
	}

	return &domain.SlackUser{
		ID:       user.ID,
		Name:     user.Name,
		RealName: user.RealName,
		Deleted:  user.Deleted,
	}, nil
}

// SendDirectMessage posts text to the user's DM channel.
func (c *SlackClient) SendDirectMessage(ctx context.Context, slackUserID, text string) error {
	return c.post(ctx, slackUserID, slack.MsgOptionText(text, false))
}

// PostThreadReply answers in the thread rooted at threadTS.
func (c *SlackClient) PostThreadReply(ctx context.Context, channelID, threadTS, text string) error {
	return c.post(ctx, channelID, slack.MsgOptionText(text, false), slack.MsgOptionTS(threadTS))
}

func (c *SlackClient) post(ctx context.Context, channelID string, options ...slack.MsgOption) error {
	_, err := retry.WithBackoff(ctx, slackMaxRetries, slackBaseDelay, isRateLimited, func() (string, error) {
		_, ts, err := c.api.PostMessageContext(ctx, channelID, options...)
		return ts, err
	})
	if err != nil {
		return fmt.Errorf("chat.postMessage to %s: %w", channelID, err)
	}
	return nil
}
