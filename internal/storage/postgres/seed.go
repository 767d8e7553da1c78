package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed seed.sql
var seed string

// Seed loads demo companies and jobs in one transaction. Existing companies
// are left alone and jobs are only inserted into an empty table, so running it
// twice is harmless.
func Seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, seed); err != nil {
		return fmt.Errorf("apply seed: %w", err)
	}
	return tx.Commit()
}
