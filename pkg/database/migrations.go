package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on task_description and
// final_result fields.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for task_description full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_plans_task_description_gin
		ON plans USING gin(to_tsvector('english', task_description))`)
	if err != nil {
		return fmt.Errorf("failed to create task_description GIN index: %w", err)
	}

	// GIN index for final_result full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_plans_final_result_gin
		ON plans USING gin(to_tsvector('english', COALESCE(final_result, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create final_result GIN index: %w", err)
	}

	return nil
}
