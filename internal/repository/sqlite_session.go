package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
)

const sessionColumns = `id, item_id, date, minutes, progress_delta, note, created_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db *sql.DB
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db *sql.DB) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.ActivitySession) error {
	query := `INSERT INTO activity_sessions (id, item_id, date, minutes, progress_delta, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ItemID,
		s.Date.Format(time.RFC3339),
		s.Minutes,
		s.ProgressDelta,
		s.Note,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) ListByItem(ctx context.Context, itemID int64) ([]*domain.ActivitySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM activity_sessions WHERE item_id = ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by item: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListByYear(ctx context.Context, year int) ([]*domain.ActivitySession, error) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	query := `SELECT ` + sessionColumns + ` FROM activity_sessions
		WHERE date >= ? AND date < ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, start.Format(time.RFC3339), end.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing sessions by year: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.ActivitySession, error) {
	var sessions []*domain.ActivitySession
	for rows.Next() {
		var s domain.ActivitySession
		var dateStr, createdAtStr string
		if err := rows.Scan(&s.ID, &s.ItemID, &dateStr, &s.Minutes, &s.ProgressDelta, &s.Note, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning activity session: %w", err)
		}
		var parseErr error
		s.Date, parseErr = time.Parse(time.RFC3339, dateStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing session date: %w", parseErr)
		}
		s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing session created_at: %w", parseErr)
		}
		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity sessions: %w", err)
	}
	return sessions, nil
}
