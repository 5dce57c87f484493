package extractor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/skala-ium/events/pkg/retry"
)

var errEmptyCompletion = errors.New("empty completion")

type GeminiConfig struct {
	APIKey           string
	Model            string
	Timeout          time.Duration
	FailureThreshold int
	ResetTimeout     time.Duration
}

// GeminiGenerator calls the Gemini API behind a circuit breaker.
type GeminiGenerator struct {
	models  *genai.Models
	model   string
	timeout time.Duration
	breaker *retry.CircuitBreaker
}

func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	threshold := cfg.FailureThreshold
	if threshold <= 0 {
		threshold = 5
	}
	reset := cfg.ResetTimeout
	if reset <= 0 {
		reset = 30 * time.Second
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiGenerator{
		models:  client.Models,
		model:   model,
		timeout: cfg.Timeout,
		// A reply that came back empty is not an outage.
		breaker: retry.NewCircuitBreaker(threshold, reset, func(err error) bool {
			return !errors.Is(err, errEmptyCompletion)
		}),
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	var text string
	err := g.breaker.Execute(func() error {
		resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		})
		if err != nil {
			return err
		}
		text = resp.Text()
		if text == "" {
			return errEmptyCompletion
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", g.model, err)
	}
	return text, nil
}
