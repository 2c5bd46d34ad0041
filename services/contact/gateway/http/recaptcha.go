package gateway_http

import (
	"context"
	"fmt"
	"net/url"
	"time"

	httpclient "github.com/yasararafath/portfolio-backend/internal/pkg/http"
	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
)

// RecaptchaClient is an HTTP client for the reCAPTCHA siteverify API
type RecaptchaClient struct {
	client    *httpclient.Client
	secretKey string
}

// NewRecaptchaClient creates a new reCAPTCHA verification client
func NewRecaptchaClient(cfg models.RecaptchaConfig) *RecaptchaClient {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	return &RecaptchaClient{
		client:    httpclient.NewClient(cfg.VerifyURL, timeout),
		secretKey: cfg.SecretKey,
	}
}

// Verify submits the client token for scoring. One round-trip, no retry;
// the caller treats any error as a closed gate.
func (c *RecaptchaClient) Verify(ctx context.Context, token string) (*models.CaptchaResult, error) {
	form := url.Values{}
	form.Set("secret", c.secretKey)
	form.Set("response", token)

	var result models.CaptchaResult
	if err := c.client.PostForm(ctx, "", form, &result); err != nil {
		return nil, fmt.Errorf("recaptcha verification request failed: %w", err)
	}

	return &result, nil
}
