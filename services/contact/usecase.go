package contact

import (
	"context"

	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/yasararafath/portfolio-backend/services/contact ContactUC

// ContactUC is the contact-verification workflow usecase
type ContactUC interface {
	// bot verification gate
	VerifyCaptcha(ctx context.Context, token string) (*models.CaptchaResult, error)

	// OTP challenge lifecycle
	RequestChallenge(ctx context.Context, email string) error
	ResendChallenge(ctx context.Context, email string) error
	VerifyChallenge(ctx context.Context, email, code string) (*models.VerifyResult, error)

	// contact submission
	Submit(ctx context.Context, msg *models.ContactMessage, proofToken string) (*models.SubmitAck, error)
}
