package usecase

import (
	"hash/fnv"
	"sync"
	"time"

	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
	"github.com/yasararafath/portfolio-backend/services/contact"
)

const lockShards = 64

// ContactUC implements the contact-verification workflow. Operations on the
// same email are serialized through a sharded key mutex so the
// read-check-mutate sequences on a challenge never interleave.
type ContactUC struct {
	cfg            *models.Config
	challengeRepo  contact.ChallengeRepo
	submissionRepo contact.SubmissionRepo // nil when no archive is configured
	mailGW         contact.MailGW
	captchaGW      contact.CaptchaGW
	locks          [lockShards]sync.Mutex
}

// NewContactUC creates a new contact usecase
func NewContactUC(
	cfg *models.Config,
	challengeRepo contact.ChallengeRepo,
	submissionRepo contact.SubmissionRepo,
	mailGW contact.MailGW,
	captchaGW contact.CaptchaGW,
) *ContactUC {
	return &ContactUC{
		cfg:            cfg,
		challengeRepo:  challengeRepo,
		submissionRepo: submissionRepo,
		mailGW:         mailGW,
		captchaGW:      captchaGW,
	}
}

// emailLock returns the mutex serializing operations for the given email
func (u *ContactUC) emailLock(email string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(email))
	return &u.locks[h.Sum32()%lockShards]
}

func (u *ContactUC) challengeTTL() time.Duration {
	return time.Duration(u.cfg.Challenge.TTLMinutes) * time.Minute
}
