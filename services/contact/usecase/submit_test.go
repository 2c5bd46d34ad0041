package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	jwtpkg "github.com/yasararafath/portfolio-backend/internal/pkg/jwt"
	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
	"github.com/yasararafath/portfolio-backend/services/contact"
	"github.com/yasararafath/portfolio-backend/services/contact/mocks"
)

func validMessage() *models.ContactMessage {
	return &models.ContactMessage{
		Email:   "visitor@example.com",
		Name:    "Jane Doe",
		Subject: "Hello",
		Message: "I would like to discuss a project with you.",
	}
}

func TestSubmit_DispatchesBothEmails(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	mockMailGW := mocks.NewMockMailGW(ctrl)
	uc := NewContactUC(cfg, nil, nil, mockMailGW, nil)

	msg := validMessage()
	mockMailGW.EXPECT().
		Send(gomock.Any(), "admin@example.com", "New Contact: Hello", gomock.Any(), gomock.Any()).
		Return(nil)
	mockMailGW.EXPECT().
		Send(gomock.Any(), msg.Email, "Re: Hello", gomock.Any(), gomock.Any()).
		Return(nil)

	// Act
	ack, err := uc.Submit(context.Background(), msg, "")

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, ack.SubmissionID)
	assert.True(t, ack.Notified)
	assert.True(t, ack.ConfirmationSent)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestSubmit_FieldRules(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	mockMailGW := mocks.NewMockMailGW(ctrl)
	uc := NewContactUC(cfg, nil, nil, mockMailGW, nil)

	tests := []struct {
		name    string
		mutate  func(*models.ContactMessage)
		wantErr error
	}{
		{
			name:    "name too short",
			mutate:  func(m *models.ContactMessage) { m.Name = "J" },
			wantErr: contact.ErrNameTooShort,
		},
		{
			name:    "subject too short",
			mutate:  func(m *models.ContactMessage) { m.Subject = "Hi" },
			wantErr: contact.ErrSubjectTooShort,
		},
		{
			name:    "message too short",
			mutate:  func(m *models.ContactMessage) { m.Message = "Too short" },
			wantErr: contact.ErrMessageTooShort,
		},
		{
			name: "first violated rule wins",
			mutate: func(m *models.ContactMessage) {
				m.Name = "J"
				m.Subject = "Hi"
				m.Message = "Too short"
			},
			wantErr: contact.ErrNameTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validMessage()
			tt.mutate(msg)

			// Act
			ack, err := uc.Submit(context.Background(), msg, "")

			// Assert
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, ack)
		})
	}
}

func TestSubmit_BoundaryLengthsAccepted(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	mockMailGW := mocks.NewMockMailGW(ctrl)
	uc := NewContactUC(cfg, nil, nil, mockMailGW, nil)

	msg := validMessage()
	msg.Name = "Jo"          // exactly 2
	msg.Subject = "Hey"      // exactly 3
	msg.Message = "0123456789" // exactly 10

	mockMailGW.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	// Act
	ack, err := uc.Submit(context.Background(), msg, "")

	// Assert
	assert.NoError(t, err)
	assert.True(t, ack.Notified)
}

func TestSubmit_SanitizesHeaderFields(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	mockMailGW := mocks.NewMockMailGW(ctrl)
	uc := NewContactUC(cfg, nil, nil, mockMailGW, nil)

	// Name and subject feed mail headers; embedded newlines must not survive
	msg := validMessage()
	msg.Subject = "Hello\nBcc: attacker@example.com"

	mockMailGW.EXPECT().
		Send(gomock.Any(), "admin@example.com", "New Contact: Hello Bcc: attacker@example.com", gomock.Any(), gomock.Any()).
		Return(nil)
	mockMailGW.EXPECT().
		Send(gomock.Any(), msg.Email, "Re: Hello Bcc: attacker@example.com", gomock.Any(), gomock.Any()).
		Return(nil)

	// Act
	ack, err := uc.Submit(context.Background(), msg, "")

	// Assert
	assert.NoError(t, err)
	assert.True(t, ack.Notified)
	assert.Equal(t, "Hello Bcc: attacker@example.com", msg.Subject)
}

func TestSubmit_AdminMailFailure(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	mockMailGW := mocks.NewMockMailGW(ctrl)
	uc := NewContactUC(cfg, nil, nil, mockMailGW, nil)

	// Only the operator notification is attempted; its failure aborts the
	// submission before the confirmation email
	mockMailGW.EXPECT().
		Send(gomock.Any(), "admin@example.com", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	// Act
	ack, err := uc.Submit(context.Background(), validMessage(), "")

	// Assert
	assert.ErrorIs(t, err, contact.ErrDeliveryFailed)
	assert.Nil(t, ack)
}

func TestSubmit_ConfirmationFailureIsNotFatal(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	mockMailGW := mocks.NewMockMailGW(ctrl)
	uc := NewContactUC(cfg, nil, nil, mockMailGW, nil)

	msg := validMessage()
	mockMailGW.EXPECT().
		Send(gomock.Any(), "admin@example.com", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	mockMailGW.EXPECT().
		Send(gomock.Any(), msg.Email, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	// Act
	ack, err := uc.Submit(context.Background(), msg, "")

	// Assert
	assert.NoError(t, err)
	assert.True(t, ack.Notified)
	assert.False(t, ack.ConfirmationSent)
}

func TestSubmit_RequiresVerificationProof(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Contact.RequireVerification = true
	mockMailGW := mocks.NewMockMailGW(ctrl)
	uc := NewContactUC(cfg, nil, nil, mockMailGW, nil)

	// Missing proof
	ack, err := uc.Submit(context.Background(), validMessage(), "")
	assert.ErrorIs(t, err, contact.ErrNotVerified)
	assert.Nil(t, ack)

	// Proof minted for a different email
	otherToken, _, err := jwtpkg.GenerateVerificationToken("someone-else@example.com", cfg)
	assert.NoError(t, err)
	_, err = uc.Submit(context.Background(), validMessage(), otherToken)
	assert.ErrorIs(t, err, contact.ErrNotVerified)

	// Valid proof passes
	msg := validMessage()
	token, _, err := jwtpkg.GenerateVerificationToken(msg.Email, cfg)
	assert.NoError(t, err)
	mockMailGW.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	ack, err = uc.Submit(context.Background(), msg, token)
	assert.NoError(t, err)
	assert.True(t, ack.Notified)
}

func TestSubmit_ArchivesSubmission(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	mockMailGW := mocks.NewMockMailGW(ctrl)
	mockSubmissionRepo := mocks.NewMockSubmissionRepo(ctrl)
	uc := NewContactUC(cfg, nil, mockSubmissionRepo, mockMailGW, nil)

	msg := validMessage()
	mockSubmissionRepo.EXPECT().
		SaveSubmission(gomock.Any(), msg).
		Return(nil)
	mockMailGW.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	// Act
	ack, err := uc.Submit(context.Background(), msg, "")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, msg.ID, ack.SubmissionID)
}

func TestSubmit_ArchiveFailureIsNotFatal(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	mockMailGW := mocks.NewMockMailGW(ctrl)
	mockSubmissionRepo := mocks.NewMockSubmissionRepo(ctrl)
	uc := NewContactUC(cfg, nil, mockSubmissionRepo, mockMailGW, nil)

	mockSubmissionRepo.EXPECT().
		SaveSubmission(gomock.Any(), gomock.Any()).
		Return(assert.AnError)
	mockMailGW.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	// Act
	ack, err := uc.Submit(context.Background(), validMessage(), "")

	// Assert
	assert.NoError(t, err)
	assert.True(t, ack.Notified)
}
