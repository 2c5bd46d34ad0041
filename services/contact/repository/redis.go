package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/yasararafath/portfolio-backend/internal/pkg/constants"
	"github.com/yasararafath/portfolio-backend/internal/pkg/database"
	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
)

// expiredGrace keeps a record around past its challenge expiry so a late
// verify can still be answered with the expired outcome rather than
// "no challenge". Redis reclaims the key afterwards.
const expiredGrace = 1 * time.Hour

// RedisChallengeRepo stores challenges in Redis, one key per email
type RedisChallengeRepo struct {
	client *redis.Client
}

// NewRedisChallengeRepo creates a Redis-backed challenge store
func NewRedisChallengeRepo(redisClient *database.RedisClient) *RedisChallengeRepo {
	return &RedisChallengeRepo{client: redisClient.GetClient()}
}

func challengeKey(email string) string {
	return constants.ChallengeKeyPrefix + email
}

// Store saves a challenge, replacing any existing record for the email
func (r *RedisChallengeRepo) Store(ctx context.Context, challenge *models.Challenge) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	ttl := time.Until(challenge.ExpiresAt) + expiredGrace
	if err := r.client.Set(ctx, challengeKey(challenge.Email), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store challenge: %w", err)
	}
	return nil
}

// Get returns the stored challenge for the email, or nil when absent
func (r *RedisChallengeRepo) Get(ctx context.Context, email string) (*models.Challenge, error) {
	data, err := r.client.Get(ctx, challengeKey(email)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	var challenge models.Challenge
	if err := json.Unmarshal([]byte(data), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}
	return &challenge, nil
}

// IncrementAttempts bumps the failure counter and returns the new value
func (r *RedisChallengeRepo) IncrementAttempts(ctx context.Context, email string) (int, error) {
	challenge, err := r.Get(ctx, email)
	if err != nil {
		return 0, err
	}
	if challenge == nil {
		return 0, fmt.Errorf("no challenge for %s", email)
	}

	challenge.Attempts++
	data, err := json.Marshal(challenge)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal challenge: %w", err)
	}

	// KeepTTL preserves the original expiry window
	if err := r.client.Set(ctx, challengeKey(email), data, redis.KeepTTL).Err(); err != nil {
		return 0, fmt.Errorf("failed to update challenge: %w", err)
	}
	return challenge.Attempts, nil
}

// Delete removes the challenge for the email, if any
func (r *RedisChallengeRepo) Delete(ctx context.Context, email string) error {
	return r.client.Del(ctx, challengeKey(email)).Err()
}
