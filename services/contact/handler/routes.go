package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
	contactHTTP "github.com/yasararafath/portfolio-backend/services/contact/handler/http"
)

// Handler coordinates the HTTP handlers for the contact service
type Handler struct {
	contactHandler *contactHTTP.ContactHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(contactHandler *contactHTTP.ContactHandler, cfg *models.Config) *Handler {
	return &Handler{
		contactHandler: contactHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the API routes. otpRateLimiter guards the
// challenge-issuing endpoints and may be nil when Redis is not configured.
func (h *Handler) RegisterRoutes(e *echo.Echo, otpRateLimiter echo.MiddlewareFunc) {
	api := e.Group("/api")

	api.GET("/health", h.contactHandler.Health)
	api.POST("/verify-recaptcha", h.contactHandler.VerifyRecaptcha)
	api.POST("/verify-otp", h.contactHandler.VerifyOTP)
	api.POST("/submit-contact", h.contactHandler.SubmitContact)

	if otpRateLimiter != nil {
		api.POST("/send-otp", h.contactHandler.SendOTP, otpRateLimiter)
		api.POST("/resend-otp", h.contactHandler.ResendOTP, otpRateLimiter)
	} else {
		api.POST("/send-otp", h.contactHandler.SendOTP)
		api.POST("/resend-otp", h.contactHandler.ResendOTP)
	}
}
