package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/yasararafath/portfolio-backend/internal/pkg/config"
	"github.com/yasararafath/portfolio-backend/internal/pkg/constants"
	"github.com/yasararafath/portfolio-backend/internal/pkg/database"
	"github.com/yasararafath/portfolio-backend/internal/pkg/health"
	"github.com/yasararafath/portfolio-backend/internal/pkg/logger"
	"github.com/yasararafath/portfolio-backend/internal/pkg/middleware"
	"github.com/yasararafath/portfolio-backend/internal/pkg/server"
	"github.com/yasararafath/portfolio-backend/services/contact"
	"github.com/yasararafath/portfolio-backend/services/contact/gateway"
	gatewayHTTP "github.com/yasararafath/portfolio-backend/services/contact/gateway/http"
	"github.com/yasararafath/portfolio-backend/services/contact/handler"
	contactHTTP "github.com/yasararafath/portfolio-backend/services/contact/handler/http"
	"github.com/yasararafath/portfolio-backend/services/contact/repository"
	"github.com/yasararafath/portfolio-backend/services/contact/usecase"
)

func main() {
	appName := "portfolio-backend"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdownManager := server.NewShutdownManager(zapLogger)

	// Redis is optional: it backs the challenge store and the OTP rate
	// limiter when configured
	var redisClient *database.RedisClient
	if configs.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdownManager.Register(func(context.Context) error {
			return redisClient.Close()
		})
	}

	// Challenge store selection
	var challengeRepo contact.ChallengeRepo
	if configs.Challenge.Store == "redis" {
		if redisClient == nil {
			zapLogger.Fatal("CHALLENGE_STORE=redis requires REDIS_HOST")
		}
		challengeRepo = repository.NewRedisChallengeRepo(redisClient)
		zapLogger.Info("Using Redis challenge store")
	} else {
		memRepo := repository.NewMemoryChallengeRepo(configs.Challenge)
		memRepo.StartSweeper()
		shutdownManager.Register(memRepo.Close)
		challengeRepo = memRepo
		zapLogger.Info("Using in-memory challenge store",
			logger.Int("max_entries", configs.Challenge.MaxEntries),
			logger.Int("sweep_interval_s", configs.Challenge.SweepInterval),
		)
	}

	// Optional submission archive
	var submissionRepo contact.SubmissionRepo
	if configs.Database.Host != "" {
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
		}
		shutdownManager.Register(func(context.Context) error {
			return postgresClient.Close()
		})
		submissionRepo = repository.NewPostgresSubmissionRepo(postgresClient.GetDB())
		zapLogger.Info("Submission archive enabled")
	}

	// Gateways
	mailGW := gateway.NewMailgunGateway(configs.Mailgun)
	captchaGW := gatewayHTTP.NewRecaptchaClient(configs.Recaptcha)

	// Usecase
	contactUC := usecase.NewContactUC(configs, challengeRepo, submissionRepo, mailGW, captchaGW)

	// Handlers
	contactHandler := contactHTTP.NewContactHandler(contactUC)
	Handler := handler.NewHandler(contactHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.CORSMiddleware(configs.Server.AllowedOrigins))
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// OTP endpoints are rate limited when Redis is available
	var otpRateLimiter echo.MiddlewareFunc
	if redisClient != nil {
		otpRateLimiter = middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: redisClient.GetClient(),
			Key:         constants.RateLimitKeyPrefix,
			Limit:       5,
			Period:      10 * time.Minute,
		})
	}

	// Register service routes
	Handler.RegisterRoutes(e, otpRateLimiter)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	// Drain remaining components
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = shutdownManager.Shutdown(ctx)
}
