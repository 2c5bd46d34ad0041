package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
)

// PostgresSubmissionRepo archives accepted contact submissions.
// The archive is best-effort; email delivery remains the contract.
type PostgresSubmissionRepo struct {
	db *sqlx.DB
}

// NewPostgresSubmissionRepo creates a submission archive repository
func NewPostgresSubmissionRepo(db *sqlx.DB) *PostgresSubmissionRepo {
	return &PostgresSubmissionRepo{db: db}
}

// SaveSubmission inserts one contact submission
func (r *PostgresSubmissionRepo) SaveSubmission(ctx context.Context, msg *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, email, name, subject, message, created_at)
		VALUES (:id, :email, :name, :subject, :message, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, msg); err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}
