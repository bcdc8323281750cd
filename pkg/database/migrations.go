package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search over the submitted
// document bundle and the verdict summary, which back the session list
// search box.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for document_bundle full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_recon_sessions_document_bundle_gin
		ON recon_sessions USING gin(to_tsvector('english', document_bundle))`)
	if err != nil {
		return fmt.Errorf("failed to create document_bundle GIN index: %w", err)
	}

	// GIN index for verdict_summary full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_recon_sessions_verdict_summary_gin
		ON recon_sessions USING gin(to_tsvector('english', COALESCE(verdict_summary, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create verdict_summary GIN index: %w", err)
	}

	return nil
}
