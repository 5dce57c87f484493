package service

import "errors"

// Terminal skip reasons of the ingestion pipeline.
var (
	ErrDuplicate        = errors.New("event already ingested")
	ErrParentMissing    = errors.New("parent announcement not found")
	ErrExtractionFailed = errors.New("announcement extraction failed")
	ErrEmptyText        = errors.New("announcement has no text")
)

// Verification flow.
var (
	ErrUserDeactivated  = errors.New("slack account is deactivated")
	ErrCodeNotRequested = errors.New("verification code missing or expired")
	ErrCodeMismatch     = errors.New("verification code does not match")
	ErrTooManyAttempts  = errors.New("too many wrong codes, request a new one")
	ErrMessageDelivery  = errors.New("failed to deliver direct message")
)
