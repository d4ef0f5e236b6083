package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
)

// itemColumns is the canonical SELECT column list for backlog_items.
const itemColumns = `id, title, type, status, platform, author, genres,
		hype, external_rating, personal_rating, origin,
		duration_estimate, duration_unit, final_duration,
		progress_current, progress_total,
		series_name, series_order, series_total,
		cover_url, date_added, date_finished, created_at, updated_at`

// SQLiteItemRepo implements ItemRepo using a SQLite database.
type SQLiteItemRepo struct {
	db *sql.DB
}

// NewSQLiteItemRepo creates a new SQLiteItemRepo.
func NewSQLiteItemRepo(db *sql.DB) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: db}
}

func (r *SQLiteItemRepo) Create(ctx context.Context, item *domain.BacklogItem) error {
	query := `INSERT INTO backlog_items (title, type, status, platform, author, genres,
		hype, external_rating, personal_rating, origin,
		duration_estimate, duration_unit, final_duration,
		progress_current, progress_total,
		series_name, series_order, series_total,
		cover_url, date_added, date_finished, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		item.Title,
		string(item.Type),
		string(item.Status),
		item.Platform,
		item.Author,
		item.Genres,
		item.Hype,
		item.ExternalRating,
		item.PersonalRating,
		string(item.Origin),
		item.DurationEstimate,
		string(item.DurationUnit),
		item.FinalDuration,
		item.ProgressCurrent,
		item.ProgressTotal,
		item.SeriesName,
		item.SeriesOrder,
		item.SeriesTotal,
		item.CoverURL,
		item.DateAdded.Format(time.RFC3339),
		nullableTimeToString(item.DateFinished, time.RFC3339),
		item.CreatedAt.Format(time.RFC3339),
		item.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting backlog item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading backlog item id: %w", err)
	}
	item.ID = id
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id int64) (*domain.BacklogItem, error) {
	query := `SELECT ` + itemColumns + ` FROM backlog_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanItem(row)
}

// List returns the full collection in insertion order. Ranking relies on this
// order for deterministic tie-breaking.
func (r *SQLiteItemRepo) List(ctx context.Context) ([]domain.BacklogItem, error) {
	query := `SELECT ` + itemColumns + ` FROM backlog_items ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing backlog items: %w", err)
	}
	defer rows.Close()
	return r.scanItems(rows)
}

func (r *SQLiteItemRepo) ListByStatus(ctx context.Context, status domain.ItemStatus) ([]domain.BacklogItem, error) {
	query := `SELECT ` + itemColumns + ` FROM backlog_items WHERE status = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("listing backlog items by status: %w", err)
	}
	defer rows.Close()
	return r.scanItems(rows)
}

// Search matches the query case-insensitively against title, author, genres,
// platform and series name.
func (r *SQLiteItemRepo) Search(ctx context.Context, q string) ([]domain.BacklogItem, error) {
	pattern := "%" + q + "%"
	query := `SELECT ` + itemColumns + ` FROM backlog_items
		WHERE title LIKE ? COLLATE NOCASE
		   OR author LIKE ? COLLATE NOCASE
		   OR genres LIKE ? COLLATE NOCASE
		   OR platform LIKE ? COLLATE NOCASE
		   OR series_name LIKE ? COLLATE NOCASE
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, pattern, pattern, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("searching backlog items: %w", err)
	}
	defer rows.Close()
	return r.scanItems(rows)
}

func (r *SQLiteItemRepo) Update(ctx context.Context, item *domain.BacklogItem) error {
	query := `UPDATE backlog_items SET title = ?, type = ?, status = ?, platform = ?, author = ?,
		genres = ?, hype = ?, external_rating = ?, personal_rating = ?, origin = ?,
		duration_estimate = ?, duration_unit = ?, final_duration = ?,
		progress_current = ?, progress_total = ?,
		series_name = ?, series_order = ?, series_total = ?,
		cover_url = ?, date_added = ?, date_finished = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		item.Title,
		string(item.Type),
		string(item.Status),
		item.Platform,
		item.Author,
		item.Genres,
		item.Hype,
		item.ExternalRating,
		item.PersonalRating,
		string(item.Origin),
		item.DurationEstimate,
		string(item.DurationUnit),
		item.FinalDuration,
		item.ProgressCurrent,
		item.ProgressTotal,
		item.SeriesName,
		item.SeriesOrder,
		item.SeriesTotal,
		item.CoverURL,
		item.DateAdded.Format(time.RFC3339),
		nullableTimeToString(item.DateFinished, time.RFC3339),
		item.UpdatedAt.Format(time.RFC3339),
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating backlog item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM backlog_items WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting backlog item: %w", err)
	}
	return nil
}

// scanItem scans a single backlog item from a *sql.Row.
func (r *SQLiteItemRepo) scanItem(row *sql.Row) (*domain.BacklogItem, error) {
	var it domain.BacklogItem
	var typeStr, statusStr, originStr, unitStr string
	var dateAddedStr, createdAtStr, updatedAtStr string
	var dateFinishedStr sql.NullString

	err := row.Scan(
		&it.ID, &it.Title, &typeStr, &statusStr, &it.Platform, &it.Author, &it.Genres,
		&it.Hype, &it.ExternalRating, &it.PersonalRating, &originStr,
		&it.DurationEstimate, &unitStr, &it.FinalDuration,
		&it.ProgressCurrent, &it.ProgressTotal,
		&it.SeriesName, &it.SeriesOrder, &it.SeriesTotal,
		&it.CoverURL, &dateAddedStr, &dateFinishedStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("backlog item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning backlog item: %w", err)
	}

	return r.populateItem(&it, typeStr, statusStr, originStr, unitStr,
		dateAddedStr, dateFinishedStr, createdAtStr, updatedAtStr)
}

// scanItems scans multiple backlog items from *sql.Rows.
func (r *SQLiteItemRepo) scanItems(rows *sql.Rows) ([]domain.BacklogItem, error) {
	var items []domain.BacklogItem
	for rows.Next() {
		var it domain.BacklogItem
		var typeStr, statusStr, originStr, unitStr string
		var dateAddedStr, createdAtStr, updatedAtStr string
		var dateFinishedStr sql.NullString

		err := rows.Scan(
			&it.ID, &it.Title, &typeStr, &statusStr, &it.Platform, &it.Author, &it.Genres,
			&it.Hype, &it.ExternalRating, &it.PersonalRating, &originStr,
			&it.DurationEstimate, &unitStr, &it.FinalDuration,
			&it.ProgressCurrent, &it.ProgressTotal,
			&it.SeriesName, &it.SeriesOrder, &it.SeriesTotal,
			&it.CoverURL, &dateAddedStr, &dateFinishedStr, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning backlog item row: %w", err)
		}

		item, err := r.populateItem(&it, typeStr, statusStr, originStr, unitStr,
			dateAddedStr, dateFinishedStr, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating backlog items: %w", err)
	}
	return items, nil
}

// populateItem fills in parsed fields on a BacklogItem after scanning raw values.
func (r *SQLiteItemRepo) populateItem(
	it *domain.BacklogItem,
	typeStr, statusStr, originStr, unitStr string,
	dateAddedStr string,
	dateFinishedStr sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.BacklogItem, error) {
	it.Type = domain.MediaType(typeStr)
	it.Status = domain.ItemStatus(statusStr)
	it.Origin = domain.Origin(originStr)
	it.DurationUnit = domain.DurationUnit(unitStr)
	it.DateFinished = parseNullableTime(dateFinishedStr, time.RFC3339)

	var parseErr error
	it.DateAdded, parseErr = time.Parse(time.RFC3339, dateAddedStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing date_added: %w", parseErr)
	}
	it.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	it.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return it, nil
}
