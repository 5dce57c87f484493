package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/skala-ium/events/internal/domain"
	"github.com/skala-ium/events/internal/errdefs"
	"github.com/skala-ium/events/pkg/cache"
	"github.com/skala-ium/events/pkg/logger"
)

const (
	codeKeyPrefix     = "verify:code:"
	attemptsKeyPrefix = "verify:attempts:"
	tokenKeyPrefix    = "verify:token:"
	codeDigits        = 6
	maxCodeAttempts   = 5
)

type VerificationConfig struct {
	CodeTTL  time.Duration
	TokenTTL time.Duration
}

type SignupInput struct {
	TempToken string
	Name      string
	Password  string
	Major     *string
	ClassID   *uuid.UUID
}

// VerificationService proves ownership of a Slack account by DMing a one-time
// code, then lets the verified user sign up as a student.
type VerificationService struct {
	slack    SlackClient
	store    TTLStore
	students StudentAccounts
	cfg      VerificationConfig
	log      *logger.Logger
}

func NewVerificationService(
	slack SlackClient,
	store TTLStore,
	students StudentAccounts,
	cfg VerificationConfig,
	log *logger.Logger,
) *VerificationService {
	if cfg.CodeTTL <= 0 {
		cfg.CodeTTL = 5 * time.Minute
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 30 * time.Minute
	}
	return &VerificationService{
		slack:    slack,
		store:    store,
		students: students,
		cfg:      cfg,
		log:      log,
	}
}

// SendCode DMs a fresh code to the Slack account registered under email and
// returns that account's id. A new code replaces any earlier one.
func (s *VerificationService) SendCode(ctx context.Context, email string) (string, error) {
	user, err := s.slack.LookupUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user.Deleted {
		return "", ErrUserDeactivated
	}

	code, err := generateCode(codeDigits)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	if err := s.store.Set(ctx, codeKeyPrefix+user.ID, code, s.cfg.CodeTTL); err != nil {
		return "", fmt.Errorf("failed to store code: %w", err)
	}
	if err := s.store.Delete(ctx, attemptsKeyPrefix+user.ID); err != nil {
		return "", fmt.Errorf("failed to reset attempts: %w", err)
	}

	text := fmt.Sprintf("Verification code: *%s*\nEnter it within %d minutes.", code, int(s.cfg.CodeTTL.Minutes()))
	if err := s.slack.SendDirectMessage(ctx, user.ID, text); err != nil {
		s.log.Error(ctx, "Failed to send verification code", zap.String("slack_user_id", user.ID), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrMessageDelivery, err)
	}

	return user.ID, nil
}

// VerifyCode consumes a matching code and returns a short-lived signup token.
// After maxCodeAttempts wrong guesses the code is discarded.
func (s *VerificationService) VerifyCode(ctx context.Context, slackUserID, code string) (string, error) {
	key := codeKeyPrefix + slackUserID
	attemptsKey := attemptsKeyPrefix + slackUserID

	stored, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return "", ErrCodeNotRequested
		}
		return "", fmt.Errorf("failed to read code: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		attempts, err := s.store.Incr(ctx, attemptsKey, s.cfg.CodeTTL)
		if err != nil {
			return "", fmt.Errorf("failed to count attempts: %w", err)
		}
		if attempts < maxCodeAttempts {
			return "", ErrCodeMismatch
		}

		s.log.Warn(ctx, "Verification code discarded after repeated mismatches",
			zap.String("slack_user_id", slackUserID),
			zap.Int64("attempts", attempts),
		)
		if err := s.store.Delete(ctx, key); err != nil {
			return "", fmt.Errorf("failed to delete code: %w", err)
		}
		if err := s.store.Delete(ctx, attemptsKey); err != nil {
			s.log.Warn(ctx, "Failed to reset attempts", zap.Error(err))
		}
		return "", ErrTooManyAttempts
	}

	if err := s.store.Delete(ctx, key); err != nil {
		return "", fmt.Errorf("failed to delete code: %w", err)
	}
	if err := s.store.Delete(ctx, attemptsKey); err != nil {
		s.log.Warn(ctx, "Failed to reset attempts", zap.Error(err))
	}

	token := uuid.NewString()
	if err := s.store.Set(ctx, tokenKeyPrefix+token, slackUserID, s.cfg.TokenTTL); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}

	return token, nil
}

// Signup creates the student for a verified Slack account. A placeholder row
// left by auto-registration is taken over; an existing real account yields
// errdefs.ErrAlreadyExists.
func (s *VerificationService) Signup(ctx context.Context, input *SignupInput) (*domain.Student, error) {
	key := tokenKeyPrefix + input.TempToken

	slackUserID, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return nil, errdefs.ErrAuthentication
		}
		return nil, fmt.Errorf("failed to read token: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: password exceeds 72 bytes", errdefs.ErrValidation)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	reg := &domain.StudentRegistration{
		SlackUserID:  slackUserID,
		Name:         input.Name,
		PasswordHash: string(hash),
		Major:        input.Major,
		ClassID:      input.ClassID,
	}

	student, err := s.students.ClaimPlaceholderStudent(ctx, reg)
	if errors.Is(err, errdefs.ErrNotFound) {
		student, err = s.students.RegisterStudent(ctx, reg)
	}
	if err != nil {
		return nil, err
	}

	if err := s.store.Delete(ctx, key); err != nil {
		s.log.Warn(ctx, "Failed to delete signup token", zap.Error(err))
	}

	s.log.Info(ctx, "Student signed up",
		zap.String("student_id", student.ID.String()),
		zap.String("slack_user_id", slackUserID),
	)
	return student, nil
}

func generateCode(digits int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}
