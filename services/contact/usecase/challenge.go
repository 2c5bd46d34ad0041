package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	jwtpkg "github.com/yasararafath/portfolio-backend/internal/pkg/jwt"
	"github.com/yasararafath/portfolio-backend/internal/pkg/logger"
	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
	"github.com/yasararafath/portfolio-backend/internal/utils"
	"github.com/yasararafath/portfolio-backend/services/contact"
)

// generateOTP draws a uniformly random 6-digit code from 100000-999999
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

// RequestChallenge generates and dispatches a fresh OTP for the email.
// Any existing challenge for the email is replaced unconditionally, which
// resets both the expiry window and the attempt budget.
func (u *ContactUC) RequestChallenge(ctx context.Context, email string) error {
	if !utils.IsValidEmail(email) {
		return contact.ErrInvalidEmail
	}

	mu := u.emailLock(email)
	mu.Lock()
	defer mu.Unlock()

	code, err := generateOTP()
	if err != nil {
		return err
	}

	challenge := &models.Challenge{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(u.challengeTTL()),
		Attempts:  0,
	}

	if err := u.challengeRepo.Store(ctx, challenge); err != nil {
		return err
	}

	text, html := otpEmailBodies(code, u.cfg.Challenge.TTLMinutes)
	if err := u.mailGW.Send(ctx, email, "Your Portfolio Contact Form OTP", text, html); err != nil {
		// The stored challenge is intentionally kept: the code is valid
		// even if this delivery failed, and a resend replaces it anyway.
		logger.Error("Failed to deliver OTP email",
			logger.String("email", utils.MaskEmail(email)),
			logger.Err(err),
		)
		return fmt.Errorf("%w: %v", contact.ErrDeliveryFailed, err)
	}

	logger.Info("OTP challenge issued",
		logger.String("email", utils.MaskEmail(email)),
		logger.Duration("ttl", u.challengeTTL()),
	)
	return nil
}

// ResendChallenge issues a brand-new challenge for the email. It is a full
// reset of code, expiry and attempts, not an extension of the current window.
func (u *ContactUC) ResendChallenge(ctx context.Context, email string) error {
	return u.RequestChallenge(ctx, email)
}

// VerifyChallenge validates a submitted code. Exactly one of five outcomes
// fires: no challenge, expired, attempts exhausted, invalid code, verified.
// Success consumes the challenge and mints a verification proof token.
func (u *ContactUC) VerifyChallenge(ctx context.Context, email, code string) (*models.VerifyResult, error) {
	mu := u.emailLock(email)
	mu.Lock()
	defer mu.Unlock()

	challenge, err := u.challengeRepo.Get(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load challenge: %w", err)
	}
	if challenge == nil {
		return nil, contact.ErrNoChallenge
	}

	if challenge.Expired(time.Now()) {
		_ = u.challengeRepo.Delete(ctx, email)
		return nil, contact.ErrChallengeExpired
	}

	if challenge.Attempts >= u.cfg.Challenge.AttemptLimit {
		_ = u.challengeRepo.Delete(ctx, email)
		return nil, contact.ErrAttemptsExhausted
	}

	if challenge.Code != code {
		attempts, err := u.challengeRepo.IncrementAttempts(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("failed to record attempt: %w", err)
		}
		return nil, &contact.InvalidCodeError{AttemptsLeft: u.cfg.Challenge.AttemptLimit - attempts}
	}

	// Verified: the challenge is consumed exactly once
	if err := u.challengeRepo.Delete(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to consume challenge: %w", err)
	}

	token, _, err := jwtpkg.GenerateVerificationToken(email, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	logger.Info("OTP verified", logger.String("email", utils.MaskEmail(email)))

	return &models.VerifyResult{Email: email, Token: token}, nil
}
