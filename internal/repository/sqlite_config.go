package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/nextup/internal/domain"
)

// SQLiteConfigRepo implements ConfigRepo using the single-row user_config table.
type SQLiteConfigRepo struct {
	db *sql.DB
}

// NewSQLiteConfigRepo creates a new SQLiteConfigRepo.
func NewSQLiteConfigRepo(db *sql.DB) *SQLiteConfigRepo {
	return &SQLiteConfigRepo{db: db}
}

func (r *SQLiteConfigRepo) Get(ctx context.Context) (*domain.RankingConfig, error) {
	query := `SELECT weight_hype, weight_external, weight_affinity, weight_continuity,
		weight_progress, weight_age, weight_duration, weight_origin,
		catchup_enabled, catchup_multiplier,
		conv_hours, conv_pages, conv_episodes, conv_minutes, conv_editions,
		unlock_balance
		FROM user_config WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	cfg := domain.RankingConfig{
		Weights:          make(map[domain.Factor]float64),
		UnlockConversion: make(map[domain.DurationUnit]float64),
	}
	var catchupInt int
	var wHype, wExternal, wAffinity, wContinuity, wProgress, wAge, wDuration, wOrigin float64
	var cHours, cPages, cEpisodes, cMinutes, cEditions float64
	err := row.Scan(
		&wHype, &wExternal, &wAffinity, &wContinuity,
		&wProgress, &wAge, &wDuration, &wOrigin,
		&catchupInt, &cfg.CatchupMultiplier,
		&cHours, &cPages, &cEpisodes, &cMinutes, &cEditions,
		&cfg.UnlockBalance,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user config: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user config: %w", err)
	}

	cfg.Weights[domain.FactorHype] = wHype
	cfg.Weights[domain.FactorExternal] = wExternal
	cfg.Weights[domain.FactorAffinity] = wAffinity
	cfg.Weights[domain.FactorContinuity] = wContinuity
	cfg.Weights[domain.FactorProgress] = wProgress
	cfg.Weights[domain.FactorAge] = wAge
	cfg.Weights[domain.FactorDuration] = wDuration
	cfg.Weights[domain.FactorOrigin] = wOrigin
	cfg.CatchupEnabled = intToBool(catchupInt)
	cfg.UnlockConversion[domain.UnitHours] = cHours
	cfg.UnlockConversion[domain.UnitPages] = cPages
	cfg.UnlockConversion[domain.UnitEpisodes] = cEpisodes
	cfg.UnlockConversion[domain.UnitMinutes] = cMinutes
	cfg.UnlockConversion[domain.UnitEditions] = cEditions

	return &cfg, nil
}

func (r *SQLiteConfigRepo) Save(ctx context.Context, cfg *domain.RankingConfig) error {
	query := `INSERT INTO user_config (id, weight_hype, weight_external, weight_affinity,
		weight_continuity, weight_progress, weight_age, weight_duration, weight_origin,
		catchup_enabled, catchup_multiplier,
		conv_hours, conv_pages, conv_episodes, conv_minutes, conv_editions, unlock_balance)
		VALUES ('default', ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			weight_hype = excluded.weight_hype,
			weight_external = excluded.weight_external,
			weight_affinity = excluded.weight_affinity,
			weight_continuity = excluded.weight_continuity,
			weight_progress = excluded.weight_progress,
			weight_age = excluded.weight_age,
			weight_duration = excluded.weight_duration,
			weight_origin = excluded.weight_origin,
			catchup_enabled = excluded.catchup_enabled,
			catchup_multiplier = excluded.catchup_multiplier,
			conv_hours = excluded.conv_hours,
			conv_pages = excluded.conv_pages,
			conv_episodes = excluded.conv_episodes,
			conv_minutes = excluded.conv_minutes,
			conv_editions = excluded.conv_editions,
			unlock_balance = excluded.unlock_balance`
	_, err := r.db.ExecContext(ctx, query,
		cfg.Weights[domain.FactorHype],
		cfg.Weights[domain.FactorExternal],
		cfg.Weights[domain.FactorAffinity],
		cfg.Weights[domain.FactorContinuity],
		cfg.Weights[domain.FactorProgress],
		cfg.Weights[domain.FactorAge],
		cfg.Weights[domain.FactorDuration],
		cfg.Weights[domain.FactorOrigin],
		boolToInt(cfg.CatchupEnabled),
		cfg.CatchupMultiplier,
		cfg.UnlockConversion[domain.UnitHours],
		cfg.UnlockConversion[domain.UnitPages],
		cfg.UnlockConversion[domain.UnitEpisodes],
		cfg.UnlockConversion[domain.UnitMinutes],
		cfg.UnlockConversion[domain.UnitEditions],
		cfg.UnlockBalance,
	)
	if err != nil {
		return fmt.Errorf("saving user config: %w", err)
	}
	return nil
}
