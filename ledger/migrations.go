package ledger

import (
	"context"
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version     int
	Description string
	Up          string
}

// GetMigrations returns all database migrations in order
func GetMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "Create builds table",
			Up: `
				CREATE TABLE IF NOT EXISTS builds (
					run_id TEXT PRIMARY KEY,
					fingerprint TEXT NOT NULL,
					output TEXT NOT NULL,
					backend TEXT NOT NULL,
					slides INTEGER NOT NULL,
					bytes INTEGER NOT NULL,
					created_at TIMESTAMP NOT NULL
				);

				CREATE INDEX IF NOT EXISTS idx_builds_created ON builds(created_at);
			`,
		},
		{
			Version:     2,
			Description: "Add builds.verified column",
			Up:          `ALTER TABLE builds ADD COLUMN verified BOOLEAN NOT NULL DEFAULT FALSE;`,
		},
	}
}

// createMigrationsTable creates the schema_migrations table to track applied migrations
func createMigrationsTable(ctx context.Context, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := db.ExecContext(ctx, query)
	return err
}

// runMigrations applies all pending migrations
func runMigrations(ctx context.Context, db *sql.DB, logf func(string)) error {
	for _, migration := range GetMigrations() {
		var count int
		err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations WHERE version = ?", migration.Version).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to check migration status for version %d: %w", migration.Version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if _, err := tx.ExecContext(ctx, migration.Up); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to execute migration %d (%s): %w", migration.Version, migration.Description, err)
		}

		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version, description) VALUES (?, ?)", migration.Version, migration.Description); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		logf(fmt.Sprintf("[ledger] Applied migration %d: %s", migration.Version, migration.Description))
	}

	return nil
}
