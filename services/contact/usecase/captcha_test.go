package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
	"github.com/yasararafath/portfolio-backend/services/contact"
	"github.com/yasararafath/portfolio-backend/services/contact/mocks"
)

func TestVerifyCaptcha_ThresholdScoreAccepted(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	mockCaptchaGW := mocks.NewMockCaptchaGW(ctrl)
	uc := NewContactUC(cfg, nil, nil, nil, mockCaptchaGW)

	// A score exactly at the threshold passes
	mockCaptchaGW.EXPECT().
		Verify(gomock.Any(), "client-token").
		Return(&models.CaptchaResult{Success: true, Score: 0.5, Action: "contact"}, nil)

	// Act
	result, err := uc.VerifyCaptcha(context.Background(), "client-token")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 0.5, result.Score)
	assert.Equal(t, "contact", result.Action)
}

func TestVerifyCaptcha_LowScore(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	mockCaptchaGW := mocks.NewMockCaptchaGW(ctrl)
	uc := NewContactUC(cfg, nil, nil, nil, mockCaptchaGW)

	mockCaptchaGW.EXPECT().
		Verify(gomock.Any(), "client-token").
		Return(&models.CaptchaResult{Success: true, Score: 0.3}, nil)

	// Act
	result, err := uc.VerifyCaptcha(context.Background(), "client-token")

	// Assert
	assert.Nil(t, result)
	var lowScore *contact.LowScoreError
	assert.ErrorAs(t, err, &lowScore)
	assert.Equal(t, 0.3, lowScore.Score)
}

func TestVerifyCaptcha_RejectedByVerifier(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	mockCaptchaGW := mocks.NewMockCaptchaGW(ctrl)
	uc := NewContactUC(cfg, nil, nil, nil, mockCaptchaGW)

	mockCaptchaGW.EXPECT().
		Verify(gomock.Any(), "stale-token").
		Return(&models.CaptchaResult{
			Success:    false,
			ErrorCodes: []string{"timeout-or-duplicate"},
		}, nil)

	// Act
	result, err := uc.VerifyCaptcha(context.Background(), "stale-token")

	// Assert
	assert.Nil(t, result)
	var rejected *contact.CaptchaRejectedError
	assert.ErrorAs(t, err, &rejected)
	assert.Equal(t, []string{"timeout-or-duplicate"}, rejected.Codes)
}

func TestVerifyCaptcha_VerifierUnreachableFailsClosed(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	mockCaptchaGW := mocks.NewMockCaptchaGW(ctrl)
	uc := NewContactUC(cfg, nil, nil, nil, mockCaptchaGW)

	mockCaptchaGW.EXPECT().
		Verify(gomock.Any(), "client-token").
		Return(nil, assert.AnError)

	// Act
	result, err := uc.VerifyCaptcha(context.Background(), "client-token")

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, contact.ErrCaptchaUnavailable)
}
