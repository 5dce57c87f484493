package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/skala-ium/events/pkg/logger"
)

const slackRetryHeader = "X-Slack-Retry-Num"

// SlackRetrySuppressor acknowledges Slack's redeliveries without processing them.
func SlackRetrySuppressor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if n := r.Header.Get(slackRetryHeader); n != "" {
			if log, ok := logger.GetFromContext(r.Context()); ok {
				log.Debug(r.Context(), "Ignoring slack retry",
					zap.String("retry_num", n),
					zap.String("reason", r.Header.Get("X-Slack-Retry-Reason")),
				)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok":true}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewSlackSignatureMiddleware rejects requests that are not signed with the
// app's signing secret or whose timestamp is more than five minutes off.
// The body is buffered and handed on unchanged.
func NewSlackSignatureMiddleware(signingSecret string, maxBodyBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			verifier, err := slack.NewSecretsVerifier(r.Header, signingSecret)
			if err != nil {
				if log, ok := logger.GetFromContext(ctx); ok {
					log.Warn(ctx, "Slack request rejected", zap.Error(err))
				}
				writeForbidden(w)
				return
			}

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
			if err != nil {
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				return
			}

			if _, err := verifier.Write(body); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if err := verifier.Ensure(); err != nil {
				if log, ok := logger.GetFromContext(ctx); ok {
					log.Warn(ctx, "Slack signature mismatch", zap.String("path", r.URL.Path))
				}
				writeForbidden(w)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r)
		})
	}
}

func writeForbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`{"error":"invalid signature"}`))
}
