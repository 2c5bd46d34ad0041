package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Redis     RedisConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Recaptcha RecaptchaConfig
	Mailgun   MailgunConfig
	Contact   ContactConfig
	Challenge ChallengeConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	AllowedOrigins  []string
}

// RedisConfig contains Redis connection configuration.
// Redis is optional; the challenge store falls back to process memory
// and the rate limiter is disabled when no host is configured.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// DatabaseConfig contains the optional submission-archive database
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// JWTConfig configures the verification-proof token
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// RecaptchaConfig contains the bot-verification gate configuration
type RecaptchaConfig struct {
	SecretKey string
	VerifyURL string
	MinScore  float64
	TimeoutMS int
}

// MailgunConfig contains the transactional mail provider configuration
type MailgunConfig struct {
	APIKey  string
	Domain  string
	Sender  string // defaults to noreply@<domain>
	APIBase string // override for EU region or tests
}

// ContactConfig contains contact-form specific configuration
type ContactConfig struct {
	AdminEmail          string
	RequireVerification bool
}

// ChallengeConfig contains OTP challenge lifecycle configuration
type ChallengeConfig struct {
	Store         string // "memory" or "redis"
	TTLMinutes    int
	AttemptLimit  int
	MaxEntries    int // memory store capacity bound
	SweepInterval int // seconds between expired-entry sweeps
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
