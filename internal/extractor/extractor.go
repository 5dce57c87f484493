// Package extractor reads structured assignment fields out of free-form
// announcement text with a generative model.
package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/skala-ium/events/internal/domain"
)

var ErrExtraction = errors.New("extraction failed")

// ExtractionError carries the reason and, when there was one, the raw model reply.
type ExtractionError struct {
	Reason string
	Raw    string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Reason, e.Err)
	}
	return "extraction failed: " + e.Reason
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}

// Generator produces a text completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const promptTemplate = `The following is an assignment announcement a professor posted in the course Slack channel.
Reply with exactly one JSON object in the format below and nothing else.

{
  "title": "assignment title, one short sentence",
  "content": "the full original announcement text",
  "deadline": "deadline as YYYY-MM-DD or YYYY-MM-DDTHH:MM, or null if the text has none",
  "topic": "subject area of the assignment (e.g. machine learning, data analysis)",
  "requirements": ["requirement 1", "requirement 2", "..."]
}

Announcement:
%s
`

type Extractor struct {
	gen Generator
}

func New(gen Generator) *Extractor {
	return &Extractor{gen: gen}
}

func BuildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}

func (e *Extractor) Extract(ctx context.Context, text string) (*domain.ExtractedAnnouncement, error) {
	raw, err := e.gen.Generate(ctx, BuildPrompt(text))
	if err != nil {
		return nil, &ExtractionError{Reason: "generator error", Err: err}
	}
	return Parse(raw)
}

type reply struct {
	Title        *string         `json:"title"`
	Content      *string         `json:"content"`
	Deadline     json.RawMessage `json:"deadline"`
	Topic        *string         `json:"topic"`
	Requirements *[]string       `json:"requirements"`
}

// Parse decodes a model reply. title, content, topic and requirements must be
// present; deadline may be absent or null.
func Parse(raw string) (*domain.ExtractedAnnouncement, error) {
	body := StripFence(raw)
	if body == "" {
		return nil, &ExtractionError{Reason: "empty reply", Raw: raw}
	}

	var r reply
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return nil, &ExtractionError{Reason: "reply is not a JSON object", Raw: raw, Err: err}
	}

	var missing []string
	if r.Title == nil {
		missing = append(missing, "title")
	}
	if r.Content == nil {
		missing = append(missing, "content")
	}
	if r.Topic == nil {
		missing = append(missing, "topic")
	}
	if r.Requirements == nil {
		missing = append(missing, "requirements")
	}
	if len(missing) > 0 {
		return nil, &ExtractionError{Reason: "missing keys " + strings.Join(missing, ", "), Raw: raw}
	}

	deadline, err := decodeDeadline(r.Deadline)
	if err != nil {
		return nil, &ExtractionError{Reason: "deadline is not a string", Raw: raw, Err: err}
	}

	return &domain.ExtractedAnnouncement{
		Title:        *r.Title,
		Content:      *r.Content,
		Deadline:     deadline,
		Topic:        *r.Topic,
		Requirements: *r.Requirements,
	}, nil
}

func decodeDeadline(raw json.RawMessage) (*string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return &s, nil
}

// StripFence removes a surrounding markdown code fence and its language tag.
func StripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if end := strings.Index(s, "```"); end >= 0 {
		s = s[:end]
	}
	s = strings.TrimSpace(s)
	if lang, rest, ok := strings.Cut(s, "\n"); ok && !strings.ContainsAny(lang, "{[") {
		s = rest
	} else if strings.HasPrefix(strings.ToLower(s), "json") {
		s = s[len("json"):]
	}
	return strings.TrimSpace(s)
}
