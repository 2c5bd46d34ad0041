package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "portfolio-backend")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("PORT", 8000)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)
	configs.Server.AllowedOrigins = strings.Split(GetEnv("CORS_ALLOWED_ORIGINS", "*"), ",")

	// Redis config (optional)
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// Database config (optional submission archive)
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// JWT config (verification proof)
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 15)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "portfolio-backend")

	// reCAPTCHA config
	configs.Recaptcha.SecretKey = GetEnv("RECAPTCHA_SECRET_KEY", "")
	configs.Recaptcha.VerifyURL = GetEnv("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify")
	configs.Recaptcha.MinScore = GetEnvAsFloat("RECAPTCHA_MIN_SCORE", 0.5)
	configs.Recaptcha.TimeoutMS = GetEnvAsInt("RECAPTCHA_TIMEOUT_MS", 10000)

	// Mailgun config
	configs.Mailgun.APIKey = GetEnv("MAILGUN_API_KEY", "")
	configs.Mailgun.Domain = GetEnv("MAILGUN_DOMAIN", "")
	configs.Mailgun.Sender = GetEnv("MAILGUN_SENDER", "")
	configs.Mailgun.APIBase = GetEnv("MAILGUN_API_BASE", "")

	// Contact config
	configs.Contact.AdminEmail = GetEnv("ADMIN_EMAIL", "yasararafathjiy@gmail.com")
	configs.Contact.RequireVerification = GetEnvAsBool("CONTACT_REQUIRE_VERIFICATION", true)

	// Challenge config
	configs.Challenge.Store = GetEnv("CHALLENGE_STORE", "memory")
	configs.Challenge.TTLMinutes = GetEnvAsInt("CHALLENGE_TTL_MINUTES", 10)
	configs.Challenge.AttemptLimit = GetEnvAsInt("CHALLENGE_ATTEMPT_LIMIT", 3)
	configs.Challenge.MaxEntries = GetEnvAsInt("CHALLENGE_MAX_ENTRIES", 10000)
	configs.Challenge.SweepInterval = GetEnvAsInt("CHALLENGE_SWEEP_INTERVAL", 60)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
