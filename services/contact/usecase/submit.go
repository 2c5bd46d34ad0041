package usecase

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	jwtpkg "github.com/yasararafath/portfolio-backend/internal/pkg/jwt"
	"github.com/yasararafath/portfolio-backend/internal/pkg/logger"
	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
	"github.com/yasararafath/portfolio-backend/internal/utils"
	"github.com/yasararafath/portfolio-backend/services/contact"
)

// Submit validates a contact message and dispatches the operator
// notification followed by the sender acknowledgement. The operator mail is
// the contract: its failure fails the submission. A failed acknowledgement
// only clears ConfirmationSent on the returned ack.
func (u *ContactUC) Submit(ctx context.Context, msg *models.ContactMessage, proofToken string) (*models.SubmitAck, error) {
	if u.cfg.Contact.RequireVerification {
		verifiedEmail, err := jwtpkg.ValidateVerificationToken(proofToken, u.cfg.JWT.Secret)
		if err != nil || verifiedEmail != msg.Email {
			return nil, contact.ErrNotVerified
		}
	}

	// First violated rule wins
	if utf8.RuneCountInString(msg.Name) < 2 {
		return nil, contact.ErrNameTooShort
	}
	if utf8.RuneCountInString(msg.Subject) < 3 {
		return nil, contact.ErrSubjectTooShort
	}
	if utf8.RuneCountInString(msg.Message) < 10 {
		return nil, contact.ErrMessageTooShort
	}

	// Name and subject end up in mail headers; strip control characters so
	// a crafted value cannot inject extra headers
	msg.Name = utils.SanitizeString(msg.Name)
	msg.Subject = utils.SanitizeString(msg.Subject)

	msg.ID = uuid.New().String()
	msg.CreatedAt = time.Now()

	if u.submissionRepo != nil {
		if err := u.submissionRepo.SaveSubmission(ctx, msg); err != nil {
			// Archive is best-effort; delivery remains the contract
			logger.Warn("Failed to archive submission",
				logger.String("submission_id", msg.ID),
				logger.Err(err),
			)
		}
	}

	adminText, adminHTML := adminEmailBodies(msg)
	if err := u.mailGW.Send(ctx, u.cfg.Contact.AdminEmail, "New Contact: "+msg.Subject, adminText, adminHTML); err != nil {
		logger.Error("Failed to notify operator",
			logger.String("submission_id", msg.ID),
			logger.Err(err),
		)
		return nil, fmt.Errorf("%w: %v", contact.ErrDeliveryFailed, err)
	}

	ack := &models.SubmitAck{
		SubmissionID:     msg.ID,
		Notified:         true,
		ConfirmationSent: true,
	}

	confText, confHTML := confirmationEmailBodies(msg)
	if err := u.mailGW.Send(ctx, msg.Email, "Re: "+msg.Subject, confText, confHTML); err != nil {
		logger.Warn("Failed to send confirmation email",
			logger.String("submission_id", msg.ID),
			logger.String("email", utils.MaskEmail(msg.Email)),
			logger.Err(err),
		)
		ack.ConfirmationSent = false
	}

	logger.Info("Contact submission processed",
		logger.String("submission_id", msg.ID),
		logger.String("email", utils.MaskEmail(msg.Email)),
		logger.String("subject", utils.Truncate(msg.Subject, 80)),
		logger.Bool("confirmation_sent", ack.ConfirmationSent),
	)
	return ack, nil
}
