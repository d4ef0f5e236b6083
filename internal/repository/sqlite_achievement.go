package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
)

const achievementColumns = `key, name, description, unlocked, unlocked_at, dynamic`

// SQLiteAchievementRepo implements AchievementRepo using a SQLite database.
type SQLiteAchievementRepo struct {
	db *sql.DB
}

// NewSQLiteAchievementRepo creates a new SQLiteAchievementRepo.
func NewSQLiteAchievementRepo(db *sql.DB) *SQLiteAchievementRepo {
	return &SQLiteAchievementRepo{db: db}
}

// Seed inserts the given achievements, skipping keys that already exist so
// unlock state and previously minted dynamic achievements are never reset.
func (r *SQLiteAchievementRepo) Seed(ctx context.Context, achievements []domain.Achievement) error {
	query := `INSERT OR IGNORE INTO achievements (key, name, description, unlocked, unlocked_at, dynamic)
		VALUES (?, ?, ?, ?, ?, ?)`
	for _, a := range achievements {
		_, err := r.db.ExecContext(ctx, query,
			a.Key,
			a.Name,
			a.Description,
			boolToInt(a.Unlocked),
			nullableTimeToString(a.UnlockedAt, time.RFC3339),
			boolToInt(a.Dynamic),
		)
		if err != nil {
			return fmt.Errorf("seeding achievement %s: %w", a.Key, err)
		}
	}
	return nil
}

func (r *SQLiteAchievementRepo) List(ctx context.Context) ([]domain.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements ORDER BY dynamic, key`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing achievements: %w", err)
	}
	defer rows.Close()

	var achievements []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		var unlockedInt, dynamicInt int
		var unlockedAtStr sql.NullString
		if err := rows.Scan(&a.Key, &a.Name, &a.Description, &unlockedInt, &unlockedAtStr, &dynamicInt); err != nil {
			return nil, fmt.Errorf("scanning achievement: %w", err)
		}
		a.Unlocked = intToBool(unlockedInt)
		a.Dynamic = intToBool(dynamicInt)
		a.UnlockedAt = parseNullableTime(unlockedAtStr, time.RFC3339)
		achievements = append(achievements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating achievements: %w", err)
	}
	return achievements, nil
}

// Unlock marks the achievement unlocked. Unlocking is one-way: an already
// unlocked row keeps its original timestamp.
func (r *SQLiteAchievementRepo) Unlock(ctx context.Context, key string, at time.Time) error {
	query := `UPDATE achievements SET unlocked = 1, unlocked_at = ? WHERE key = ? AND unlocked = 0`
	_, err := r.db.ExecContext(ctx, query, at.Format(time.RFC3339), key)
	if err != nil {
		return fmt.Errorf("unlocking achievement %s: %w", key, err)
	}
	return nil
}
