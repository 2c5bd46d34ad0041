package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/yasararafath/portfolio-backend/internal/pkg/logger"
	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
	"github.com/yasararafath/portfolio-backend/internal/utils"
)

const sendTimeout = 10 * time.Second

// MailgunGateway dispatches transactional email through the Mailgun API
type MailgunGateway struct {
	mg     mailgun.Mailgun
	sender string
}

// NewMailgunGateway creates a Mailgun mail gateway
func NewMailgunGateway(cfg models.MailgunConfig) *MailgunGateway {
	mg := mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
	if cfg.APIBase != "" {
		mg.SetAPIBase(cfg.APIBase)
	}

	sender := cfg.Sender
	if sender == "" {
		sender = fmt.Sprintf("noreply@%s", cfg.Domain)
	}

	return &MailgunGateway{mg: mg, sender: sender}
}

// Send dispatches one email with text and HTML bodies
func (g *MailgunGateway) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	message := g.mg.NewMessage(g.sender, subject, textBody, to)
	message.SetHtml(htmlBody)

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, id, err := g.mg.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("mailgun send failed: %w", err)
	}

	logger.Debug("Mail dispatched",
		logger.String("to", utils.MaskEmail(to)),
		logger.String("message_id", id),
	)
	return nil
}
