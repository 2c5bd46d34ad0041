package contact

import (
	"context"

	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/yasararafath/portfolio-backend/services/contact ChallengeRepo,SubmissionRepo

// ChallengeRepo stores at most one OTP challenge per email. Store replaces
// any existing record for the email unconditionally.
type ChallengeRepo interface {
	Store(ctx context.Context, challenge *models.Challenge) error
	// Get returns nil when no challenge exists for the email
	Get(ctx context.Context, email string) (*models.Challenge, error)
	// IncrementAttempts bumps the failure counter and returns the new value
	IncrementAttempts(ctx context.Context, email string) (int, error)
	Delete(ctx context.Context, email string) error
}

// SubmissionRepo archives accepted contact submissions
type SubmissionRepo interface {
	SaveSubmission(ctx context.Context, msg *models.ContactMessage) error
}
