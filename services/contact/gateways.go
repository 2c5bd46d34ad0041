package contact

import (
	"context"

	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/yasararafath/portfolio-backend/services/contact MailGW,CaptchaGW

// MailGW dispatches transactional email. Delivery is best-effort with
// synchronous success/failure signaling; there is no queue or retry.
type MailGW interface {
	Send(ctx context.Context, to, subject, textBody, htmlBody string) error
}

// CaptchaGW verifies a bot-score token against the external verifier.
// A transport error means the gate must fail closed.
type CaptchaGW interface {
	Verify(ctx context.Context, token string) (*models.CaptchaResult, error)
}
