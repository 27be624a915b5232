package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

func Migrate(ctx context.Context, db *sqlx.DB) error {
	stmts := []string{
		// Single row; id is pinned to 1.
		`CREATE TABLE IF NOT EXISTS tank (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			width INTEGER NOT NULL DEFAULT 30,
			height INTEGER NOT NULL DEFAULT 10,
			waste REAL NOT NULL DEFAULT 0,
			last_checkin REAL
		);`,
		`CREATE TABLE IF NOT EXISTS fish (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			species TEXT NOT NULL,
			personality TEXT NOT NULL,
			birth REAL NOT NULL,
			last_fed REAL NOT NULL,
			stress REAL NOT NULL,
			last_checkin REAL NOT NULL,
			time_fed REAL NOT NULL DEFAULT 0
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
