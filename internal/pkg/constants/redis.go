package constants

// Redis key prefixes
const (
	// ChallengeKeyPrefix prefixes per-email OTP challenge records
	ChallengeKeyPrefix = "contact:challenge:"
	// RateLimitKeyPrefix prefixes rate-limiter counters
	RateLimitKeyPrefix = "contact:ratelimit"
)
