package contact

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEmail rejects syntactically invalid addresses
	ErrInvalidEmail = errors.New("valid email is required")
	// ErrNoChallenge means no live challenge exists for the email
	ErrNoChallenge = errors.New("no OTP found for this email")
	// ErrChallengeExpired means the challenge window has passed
	ErrChallengeExpired = errors.New("OTP has expired")
	// ErrAttemptsExhausted means the failure budget is spent
	ErrAttemptsExhausted = errors.New("too many attempts")
	// ErrDeliveryFailed wraps mail-sender failures
	ErrDeliveryFailed = errors.New("mail delivery failed")
	// ErrCaptchaUnavailable means the verifier round-trip failed; the gate fails closed
	ErrCaptchaUnavailable = errors.New("captcha verification unavailable")
	// ErrStoreFull means the challenge store hit its capacity bound
	ErrStoreFull = errors.New("challenge store is full")
	// ErrNotVerified rejects submissions without a valid verification proof
	ErrNotVerified = errors.New("email is not verified")

	// Contact field rules; the first violated rule wins
	ErrNameTooShort    = errors.New("Name must be at least 2 characters")
	ErrSubjectTooShort = errors.New("Subject must be at least 3 characters")
	ErrMessageTooShort = errors.New("Message must be at least 10 characters")
)

// InvalidCodeError reports a wrong OTP and the remaining attempt budget
type InvalidCodeError struct {
	AttemptsLeft int
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid OTP, %d attempts left", e.AttemptsLeft)
}

// CaptchaRejectedError reports a verifier rejection with its error codes
type CaptchaRejectedError struct {
	Codes []string
}

func (e *CaptchaRejectedError) Error() string {
	return fmt.Sprintf("captcha verification failed: %v", e.Codes)
}

// LowScoreError reports a score below the acceptance threshold
type LowScoreError struct {
	Score float64
}

func (e *LowScoreError) Error() string {
	return fmt.Sprintf("suspicious activity detected, score %.2f", e.Score)
}
