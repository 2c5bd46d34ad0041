package models

import "time"

// Challenge is the stored state for one pending OTP verification.
// At most one challenge exists per email; a new send replaces it.
type Challenge struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	Attempts  int       `json:"attempts"`
}

// Expired reports whether the challenge window has passed
func (c *Challenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// VerifyResult is returned on successful OTP verification
type VerifyResult struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// CaptchaResult is the verifier's decision for one token
type CaptchaResult struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}
