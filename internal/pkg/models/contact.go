package models

import "time"

// ContactMessage is one contact-form submission
type ContactMessage struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SubmitAck reports the outcome of a submission. Notified covers the
// operator email, ConfirmationSent the acknowledgement back to the
// sender; the two can diverge.
type SubmitAck struct {
	SubmissionID     string `json:"submission_id"`
	Notified         bool   `json:"notified"`
	ConfirmationSent bool   `json:"confirmation_sent"`
}
