package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS backlog_items (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		title             TEXT NOT NULL,
		type              TEXT NOT NULL
		                  CHECK(type IN ('game','book','series','movie','anime','manga')),
		status            TEXT NOT NULL DEFAULT 'backlog'
		                  CHECK(status IN ('backlog','in_progress','finished','wishlist','archived')),
		platform          TEXT NOT NULL DEFAULT '',
		author            TEXT NOT NULL DEFAULT '',
		genres            TEXT NOT NULL DEFAULT '',
		hype              REAL NOT NULL DEFAULT 0,
		external_rating   REAL NOT NULL DEFAULT 0,
		personal_rating   REAL NOT NULL DEFAULT 0,
		origin            TEXT NOT NULL DEFAULT 'free'
		                  CHECK(origin IN ('free','paid')),
		duration_estimate REAL NOT NULL DEFAULT 0,
		duration_unit     TEXT NOT NULL DEFAULT 'hours',
		final_duration    REAL NOT NULL DEFAULT 0,
		progress_current  REAL NOT NULL DEFAULT 0,
		progress_total    REAL NOT NULL DEFAULT 0,
		series_name       TEXT NOT NULL DEFAULT '',
		series_order      INTEGER NOT NULL DEFAULT 1,
		series_total      INTEGER NOT NULL DEFAULT 1,
		cover_url         TEXT NOT NULL DEFAULT '',
		date_added        TEXT NOT NULL,
		date_finished     TEXT,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_backlog_items_status ON backlog_items(status)`,
	`CREATE INDEX IF NOT EXISTS idx_backlog_items_type ON backlog_items(type)`,
	`CREATE INDEX IF NOT EXISTS idx_backlog_items_series ON backlog_items(series_name) WHERE series_name != ''`,

	`CREATE TABLE IF NOT EXISTS activity_sessions (
		id             TEXT PRIMARY KEY,
		item_id        INTEGER NOT NULL REFERENCES backlog_items(id) ON DELETE CASCADE,
		date           TEXT NOT NULL,
		minutes        INTEGER NOT NULL,
		progress_delta REAL NOT NULL DEFAULT 0,
		note           TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_item ON activity_sessions(item_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_date ON activity_sessions(date)`,

	`CREATE TABLE IF NOT EXISTS achievements (
		key         TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		unlocked    INTEGER NOT NULL DEFAULT 0,
		unlocked_at TEXT,
		dynamic     INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id         TEXT PRIMARY KEY,
		media_type TEXT NOT NULL DEFAULT '',
		genre      TEXT NOT NULL DEFAULT '',
		target     INTEGER NOT NULL CHECK(target > 0),
		year       INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS user_config (
		id                 TEXT PRIMARY KEY DEFAULT 'default',
		weight_hype        REAL NOT NULL DEFAULT 0.25,
		weight_external    REAL NOT NULL DEFAULT 0.15,
		weight_affinity    REAL NOT NULL DEFAULT 0.10,
		weight_continuity  REAL NOT NULL DEFAULT 0.15,
		weight_progress    REAL NOT NULL DEFAULT 0.15,
		weight_age         REAL NOT NULL DEFAULT 0.10,
		weight_duration    REAL NOT NULL DEFAULT 0.10,
		weight_origin      REAL NOT NULL DEFAULT 0.05,
		catchup_enabled    INTEGER NOT NULL DEFAULT 1,
		catchup_multiplier REAL NOT NULL DEFAULT 1.5,
		conv_hours         REAL NOT NULL DEFAULT 10,
		conv_pages         REAL NOT NULL DEFAULT 100,
		conv_episodes      REAL NOT NULL DEFAULT 12,
		conv_minutes       REAL NOT NULL DEFAULT 180,
		conv_editions      REAL NOT NULL DEFAULT 1,
		unlock_balance     REAL NOT NULL DEFAULT 0
	)`,

	// Seed default config row
	`INSERT OR IGNORE INTO user_config (id) VALUES ('default')`,
}
