package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
)

const goalColumns = `id, media_type, genre, target, year, created_at`

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db *sql.DB
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(db *sql.DB) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: db}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (id, media_type, genre, target, year, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		string(g.MediaType),
		g.Genre,
		g.Target,
		g.Year,
		g.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var g domain.Goal
	var typeStr, createdAtStr string
	err := row.Scan(&g.ID, &typeStr, &g.Genre, &g.Target, &g.Year, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("goal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}
	g.MediaType = domain.MediaType(typeStr)
	g.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing goal created_at: %w", err)
	}
	return &g, nil
}

func (r *SQLiteGoalRepo) ListByYear(ctx context.Context, year int) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE year = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("listing goals by year: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		var g domain.Goal
		var typeStr, createdAtStr string
		if err := rows.Scan(&g.ID, &typeStr, &g.Genre, &g.Target, &g.Year, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning goal row: %w", err)
		}
		g.MediaType = domain.MediaType(typeStr)
		g.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing goal created_at: %w", err)
		}
		goals = append(goals, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM goals WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return nil
}
