package usecase

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	jwtpkg "github.com/yasararafath/portfolio-backend/internal/pkg/jwt"
	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
	"github.com/yasararafath/portfolio-backend/services/contact"
	"github.com/yasararafath/portfolio-backend/services/contact/mocks"
	"github.com/yasararafath/portfolio-backend/services/contact/repository"
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.JWT = models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 15,
		Issuer:     "portfolio-backend",
	}
	cfg.Recaptcha.MinScore = 0.5
	cfg.Contact = models.ContactConfig{
		AdminEmail:          "admin@example.com",
		RequireVerification: false,
	}
	cfg.Challenge = models.ChallengeConfig{
		Store:        "memory",
		TTLMinutes:   10,
		AttemptLimit: 3,
		MaxEntries:   100,
	}
	return cfg
}

// wrongCode returns a code guaranteed not to match; generated codes are
// always in the 100000-999999 range
func wrongCode() string {
	return "000000"
}

func storedCode(t *testing.T, repo contact.ChallengeRepo, email string) string {
	t.Helper()
	ch, err := repo.Get(context.Background(), email)
	assert.NoError(t, err)
	assert.NotNil(t, ch)
	return ch.Code
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateOTP()
		assert.NoError(t, err)
		assert.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestRequestChallenge_InvalidEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	repo := repository.NewMemoryChallengeRepo(cfg.Challenge)
	mockMailGW := mocks.NewMockMailGW(ctrl)
	uc := NewContactUC(cfg, repo, nil, mockMailGW, nil)

	// Act
	err := uc.RequestChallenge(context.Background(), "not-an-email")

	// Assert
	assert.ErrorIs(t, err, contact.ErrInvalidEmail)
	assert.Equal(t, 0, repo.Len())
}

func TestRequestChallenge_StoresAndSends(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	repo := repository.NewMemoryChallengeRepo(cfg.Challenge)
	mockMailGW := mocks.NewMockMailGW(ctrl)
	uc := NewContactUC(cfg, repo, nil, mockMailGW, nil)

	email := "visitor@example.com"
	mockMailGW.EXPECT().
		Send(gomock.Any(), email, "Your Portfolio Contact Form OTP", gomock.Any(), gomock.Any()).
		Return(nil)

	// Act
	err := uc.RequestChallenge(context.Background(), email)

	// Assert
	assert.NoError(t, err)

	ch, err := repo.Get(context.Background(), email)
	assert.NoError(t, err)
	assert.NotNil(t, ch)
	assert.Len(t, ch.Code, 6)
	assert.Equal(t, 0, ch.Attempts)
	assert.True(t, ch.ExpiresAt.After(time.Now()))
}

func TestRequestChallenge_MailFailureKeepsChallenge(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	repo := repository.NewMemoryChallengeRepo(cfg.Challenge)
	mockMailGW := mocks.NewMockMailGW(ctrl)
	uc := NewContactUC(cfg, repo, nil, mockMailGW, nil)

	email := "visitor@example.com"
	mockMailGW.EXPECT().
		Send(gomock.Any(), email, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	// Act
	err := uc.RequestChallenge(context.Background(), email)

	// Assert
	assert.ErrorIs(t, err, contact.ErrDeliveryFailed)

	// The code was generated and stored; a resend will replace it
	ch, err := repo.Get(context.Background(), email)
	assert.NoError(t, err)
	assert.NotNil(t, ch)
}

func TestVerifyChallenge_NoChallenge(t *testing.T) {
	// Arrange
	cfg := testConfig()
	repo := repository.NewMemoryChallengeRepo(cfg.Challenge)
	uc := NewContactUC(cfg, repo, nil, nil, nil)

	// Act
	result, err := uc.VerifyChallenge(context.Background(), "visitor@example.com", "123456")

	// Assert
	assert.ErrorIs(t, err, contact.ErrNoChallenge)
	assert.Nil(t, result)
}

func TestVerifyChallenge_SuccessConsumesChallenge(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	repo := repository.NewMemoryChallengeRepo(cfg.Challenge)
	mockMailGW := mocks.NewMockMailGW(ctrl)
	uc := NewContactUC(cfg, repo, nil, mockMailGW, nil)

	email := "visitor@example.com"
	mockMailGW.EXPECT().
		Send(gomock.Any(), email, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	assert.NoError(t, uc.RequestChallenge(context.Background(), email))
	code := storedCode(t, repo, email)

	// Act
	result, err := uc.VerifyChallenge(context.Background(), email, code)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, email, result.Email)
	assert.NotEmpty(t, result.Token)

	// The proof token is valid for this email
	verifiedEmail, err := jwtpkg.ValidateVerificationToken(result.Token, cfg.JWT.Secret)
	assert.NoError(t, err)
	assert.Equal(t, email, verifiedEmail)

	// The challenge is consumed; a replay fails
	_, err = uc.VerifyChallenge(context.Background(), email, code)
	assert.ErrorIs(t, err, contact.ErrNoChallenge)
}

func TestVerifyChallenge_WrongCodeCountsDown(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	repo := repository.NewMemoryChallengeRepo(cfg.Challenge)
	mockMailGW := mocks.NewMockMailGW(ctrl)
	uc := NewContactUC(cfg, repo, nil, mockMailGW, nil)

	email := "visitor@example.com"
	mockMailGW.EXPECT().
		Send(gomock.Any(), email, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	assert.NoError(t, uc.RequestChallenge(context.Background(), email))
	code := storedCode(t, repo, email)

	// Act & Assert: three wrong guesses burn the attempt budget
	for _, wantLeft := range []int{2, 1, 0} {
		_, err := uc.VerifyChallenge(context.Background(), email, wrongCode())
		var invalidCode *contact.InvalidCodeError
		assert.ErrorAs(t, err, &invalidCode)
		assert.Equal(t, wantLeft, invalidCode.AttemptsLeft)
	}

	// Even the correct code is rejected once the budget is spent
	_, err := uc.VerifyChallenge(context.Background(), email, code)
	assert.ErrorIs(t, err, contact.ErrAttemptsExhausted)

	// Exhaustion consumed the challenge
	_, err = uc.VerifyChallenge(context.Background(), email, code)
	assert.ErrorIs(t, err, contact.ErrNoChallenge)
}

func TestVerifyChallenge_Expired(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Challenge.TTLMinutes = -1 // already expired at issue time
	repo := repository.NewMemoryChallengeRepo(cfg.Challenge)
	mockMailGW := mocks.NewMockMailGW(ctrl)
	uc := NewContactUC(cfg, repo, nil, mockMailGW, nil)

	email := "visitor@example.com"
	mockMailGW.EXPECT().
		Send(gomock.Any(), email, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	assert.NoError(t, uc.RequestChallenge(context.Background(), email))
	code := storedCode(t, repo, email)

	// Act
	_, err := uc.VerifyChallenge(context.Background(), email, code)

	// Assert
	assert.ErrorIs(t, err, contact.ErrChallengeExpired)

	// Expiry consumed the record
	ch, err := repo.Get(context.Background(), email)
	assert.NoError(t, err)
	assert.Nil(t, ch)
}

func TestChallengeExpiredBoundary(t *testing.T) {
	expires := time.Now().Add(10 * time.Minute)
	ch := &models.Challenge{ExpiresAt: expires}

	assert.False(t, ch.Expired(expires.Add(-time.Nanosecond)))
	// The boundary instant itself is still live
	assert.False(t, ch.Expired(expires))
	assert.True(t, ch.Expired(expires.Add(time.Nanosecond)))
}

func TestVerifyChallenge_ExpiryBoundary(t *testing.T) {
	// Arrange
	cfg := testConfig()
	repo := repository.NewMemoryChallengeRepo(cfg.Challenge)
	uc := NewContactUC(cfg, repo, nil, nil, nil)
	ctx := context.Background()

	// A challenge just shy of its expiry is still accepted
	assert.NoError(t, repo.Store(ctx, &models.Challenge{
		Email:     "early@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(500 * time.Millisecond),
	}))
	result, err := uc.VerifyChallenge(ctx, "early@example.com", "123456")
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	// A challenge just past its expiry is rejected even with the right code
	assert.NoError(t, repo.Store(ctx, &models.Challenge{
		Email:     "late@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Millisecond),
	}))
	_, err = uc.VerifyChallenge(ctx, "late@example.com", "123456")
	assert.ErrorIs(t, err, contact.ErrChallengeExpired)
}

func TestResendChallenge_ResetsAttempts(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	repo := repository.NewMemoryChallengeRepo(cfg.Challenge)
	mockMailGW := mocks.NewMockMailGW(ctrl)
	uc := NewContactUC(cfg, repo, nil, mockMailGW, nil)

	email := "visitor@example.com"
	mockMailGW.EXPECT().
		Send(gomock.Any(), email, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	assert.NoError(t, uc.RequestChallenge(context.Background(), email))

	// Burn one attempt
	_, err := uc.VerifyChallenge(context.Background(), email, wrongCode())
	var invalidCode *contact.InvalidCodeError
	assert.ErrorAs(t, err, &invalidCode)
	assert.Equal(t, 2, invalidCode.AttemptsLeft)

	// Act: resend replaces the challenge entirely
	assert.NoError(t, uc.ResendChallenge(context.Background(), email))

	// Assert: the attempt budget is fresh again
	_, err = uc.VerifyChallenge(context.Background(), email, wrongCode())
	assert.ErrorAs(t, err, &invalidCode)
	assert.Equal(t, 2, invalidCode.AttemptsLeft)
}
