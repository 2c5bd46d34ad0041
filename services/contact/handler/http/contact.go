package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/yasararafath/portfolio-backend/internal/pkg/logger"
	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
	"github.com/yasararafath/portfolio-backend/internal/utils"
	"github.com/yasararafath/portfolio-backend/services/contact"
)

// ContactHandler handles HTTP requests for the contact workflow
type ContactHandler struct {
	contactUC contact.ContactUC
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactUC contact.ContactUC) *ContactHandler {
	return &ContactHandler{contactUC: contactUC}
}

type captchaRequest struct {
	Token string `json:"token"`
}

type otpRequest struct {
	Email string `json:"email"`
}

// verifyOTPRequest accepts the OTP as either a JSON string or number;
// the value is coerced to its string form before comparison
type verifyOTPRequest struct {
	Email string      `json:"email"`
	OTP   interface{} `json:"otp"`
}

type contactRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

type captchaResponse struct {
	Success     bool    `json:"success"`
	Score       float64 `json:"score"`
	Action      string  `json:"action,omitempty"`
	ChallengeTS string  `json:"challenge_ts,omitempty"`
}

type captchaRejectedResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type lowScoreResponse struct {
	Success bool    `json:"success"`
	Error   string  `json:"error"`
	Score   float64 `json:"score"`
}

type otpSentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Email   string `json:"email"`
}

type otpVerifiedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Email   string `json:"email"`
	Token   string `json:"token,omitempty"`
}

type invalidOTPResponse struct {
	Success      bool   `json:"success"`
	Error        string `json:"error"`
	AttemptsLeft int    `json:"attemptsLeft"`
}

type submitResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	SubmissionID     string `json:"submission_id,omitempty"`
	ConfirmationSent bool   `json:"confirmation_sent"`
}

// VerifyRecaptcha handles bot-score verification requests
func (h *ContactHandler) VerifyRecaptcha(c echo.Context) error {
	var req captchaRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.Token == "" {
		return utils.BadRequestResponse(c, "Token is required")
	}

	result, err := h.contactUC.VerifyCaptcha(c.Request().Context(), req.Token)
	if err != nil {
		var rejected *contact.CaptchaRejectedError
		var lowScore *contact.LowScoreError
		switch {
		case errors.As(err, &rejected):
			return c.JSON(http.StatusBadRequest, captchaRejectedResponse{
				Success: false,
				Error:   "reCAPTCHA verification failed",
				Details: rejected.Codes,
			})
		case errors.As(err, &lowScore):
			return c.JSON(http.StatusBadRequest, lowScoreResponse{
				Success: false,
				Error:   "Suspicious activity detected",
				Score:   lowScore.Score,
			})
		default:
			return utils.InternalServerErrorResponse(c, "reCAPTCHA verification failed")
		}
	}

	return c.JSON(http.StatusOK, captchaResponse{
		Success:     true,
		Score:       result.Score,
		Action:      result.Action,
		ChallengeTS: result.ChallengeTS,
	})
}

// SendOTP handles OTP challenge requests
func (h *ContactHandler) SendOTP(c echo.Context) error {
	return h.sendChallenge(c, h.contactUC.RequestChallenge)
}

// ResendOTP issues a fresh challenge; semantically a full reset
func (h *ContactHandler) ResendOTP(c echo.Context) error {
	return h.sendChallenge(c, h.contactUC.ResendChallenge)
}

func (h *ContactHandler) sendChallenge(c echo.Context, send func(ctx context.Context, email string) error) error {
	var req otpRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := send(c.Request().Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, contact.ErrInvalidEmail):
			return utils.BadRequestResponse(c, "Valid email is required")
		case errors.Is(err, contact.ErrStoreFull):
			return utils.ServiceUnavailableResponse(c, "Too many pending verifications. Please try again later.")
		case errors.Is(err, contact.ErrDeliveryFailed):
			return utils.InternalServerErrorResponse(c, "Failed to send OTP")
		default:
			logger.Error("Failed to issue OTP challenge", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to send OTP")
		}
	}

	return c.JSON(http.StatusOK, otpSentResponse{
		Success: true,
		Message: "OTP sent to email",
		Email:   req.Email,
	})
}

// VerifyOTP handles OTP verification requests
func (h *ContactHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	code := coerceOTP(req.OTP)
	if req.Email == "" || code == "" {
		return utils.BadRequestResponse(c, "Email and OTP are required")
	}

	result, err := h.contactUC.VerifyChallenge(c.Request().Context(), req.Email, code)
	if err != nil {
		var invalidCode *contact.InvalidCodeError
		switch {
		case errors.Is(err, contact.ErrNoChallenge):
			return utils.BadRequestResponse(c, "No OTP found for this email. Please request a new one.")
		case errors.Is(err, contact.ErrChallengeExpired):
			return utils.BadRequestResponse(c, "OTP has expired. Please request a new one.")
		case errors.Is(err, contact.ErrAttemptsExhausted):
			return utils.BadRequestResponse(c, "Too many attempts. Please request a new OTP.")
		case errors.As(err, &invalidCode):
			return c.JSON(http.StatusBadRequest, invalidOTPResponse{
				Success:      false,
				Error:        "Invalid OTP",
				AttemptsLeft: invalidCode.AttemptsLeft,
			})
		default:
			logger.Error("OTP verification failed", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "OTP verification failed")
		}
	}

	return c.JSON(http.StatusOK, otpVerifiedResponse{
		Success: true,
		Message: "OTP verified successfully",
		Email:   result.Email,
		Token:   result.Token,
	})
}

// SubmitContact handles contact-form submissions
func (h *ContactHandler) SubmitContact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.Email == "" || req.Name == "" || req.Subject == "" || req.Message == "" {
		return utils.BadRequestResponse(c, "All fields are required")
	}

	proofToken := req.Token
	if proofToken == "" {
		proofToken = c.Request().Header.Get("X-Verification-Token")
	}

	msg := &models.ContactMessage{
		Email:   req.Email,
		Name:    req.Name,
		Subject: req.Subject,
		Message: req.Message,
	}

	ack, err := h.contactUC.Submit(c.Request().Context(), msg, proofToken)
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrNameTooShort),
			errors.Is(err, contact.ErrSubjectTooShort),
			errors.Is(err, contact.ErrMessageTooShort):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, contact.ErrNotVerified):
			return utils.UnauthorizedResponse(c, "Email verification required")
		case errors.Is(err, contact.ErrDeliveryFailed):
			return utils.InternalServerErrorResponse(c, "Failed to submit contact form")
		default:
			logger.Error("Contact submission failed", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to submit contact form")
		}
	}

	message := "Message sent successfully! Check your email for confirmation."
	if !ack.ConfirmationSent {
		message = "Message sent successfully! Confirmation email is pending."
	}

	return c.JSON(http.StatusOK, submitResponse{
		Success:          true,
		Message:          message,
		SubmissionID:     ack.SubmissionID,
		ConfirmationSent: ack.ConfirmationSent,
	})
}

// Health reports service liveness
func (h *ContactHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "running"})
}

// coerceOTP normalizes a JSON string or number to the code's string form
func coerceOTP(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatInt(int64(t), 10)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
