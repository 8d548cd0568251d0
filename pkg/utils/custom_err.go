package utils

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrChallengeNotFound  = errors.New("challenge not found")
	ErrPlanNotFound       = errors.New("no active plan found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrDatabaseError      = errors.New("database error")

	// Plan generation pipeline.
	ErrProfileIncomplete   = errors.New("user profile is not complete")
	ErrGenerationFailed    = errors.New("plan generation call failed")
	ErrEmptyAIResponse     = errors.New("empty response from AI provider")
	ErrMalformedAIResponse = errors.New("AI response is not valid JSON")
	ErrSchemaViolation     = errors.New("plan JSON missing required top-level keys")
)
