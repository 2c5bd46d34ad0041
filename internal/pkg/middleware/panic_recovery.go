package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/yasararafath/portfolio-backend/internal/pkg/logger"
	"github.com/yasararafath/portfolio-backend/internal/utils"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics,
// logs the stack trace and returns a generic 500 to the client
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

// handlePanic handles the panic recovery, logging, and response
func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = c.Request().Header.Get(echo.HeaderXRequestID)
	}

	zapLogger.Error("Panic recovered",
		logger.Any("panic_value", r),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", requestID),
	)

	// Only respond if the handler has not written anything yet
	if !c.Response().Committed {
		if err := utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error"); err != nil {
			zapLogger.Error("Failed to write panic response", logger.Err(err))
		}
	}
}
