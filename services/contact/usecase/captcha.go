package usecase

import (
	"context"
	"fmt"

	"github.com/yasararafath/portfolio-backend/internal/pkg/logger"
	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
	"github.com/yasararafath/portfolio-backend/services/contact"
)

// VerifyCaptcha checks a bot-score token against the external verifier.
// The gate fails closed: verifier errors, rejections and low scores all
// deny the request. A score equal to the threshold is accepted.
func (u *ContactUC) VerifyCaptcha(ctx context.Context, token string) (*models.CaptchaResult, error) {
	result, err := u.captchaGW.Verify(ctx, token)
	if err != nil {
		logger.Error("Captcha verifier unreachable", logger.Err(err))
		return nil, fmt.Errorf("%w: %v", contact.ErrCaptchaUnavailable, err)
	}

	if !result.Success {
		logger.Warn("Captcha rejected by verifier", logger.Strings("error_codes", result.ErrorCodes))
		return nil, &contact.CaptchaRejectedError{Codes: result.ErrorCodes}
	}

	if result.Score < u.cfg.Recaptcha.MinScore {
		logger.Warn("Captcha score below threshold",
			logger.Float64("score", result.Score),
			logger.Float64("min_score", u.cfg.Recaptcha.MinScore),
		)
		return nil, &contact.LowScoreError{Score: result.Score}
	}

	return result, nil
}
