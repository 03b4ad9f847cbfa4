package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/holiday"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

// Create implements holiday.Repository.
func (r *holidayRepository) Create(ctx context.Context, h *holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, name, date, is_optional)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, h.ID, h.Name, h.Date, h.IsOptional).Scan(&h.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.ErrDuplicateDate
		}
		return fmt.Errorf("failed to create holiday: %w", err)
	}

	return nil
}

// ListInRange implements holiday.Repository.
func (r *holidayRepository) ListInRange(ctx context.Context, start, end time.Time) ([]*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, is_optional, created_at
		FROM holidays
		WHERE date BETWEEN $1 AND $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

// ListByYear implements holiday.Repository.
func (r *holidayRepository) ListByYear(ctx context.Context, year int) ([]*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, is_optional, created_at
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays by year: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

// Delete implements holiday.Repository.
func (r *holidayRepository) Delete(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete holiday: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func collectHolidays(rows pgx.Rows) ([]*holiday.Holiday, error) {
	var items []*holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.IsOptional, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		items = append(items, &h)
	}
	return items, rows.Err()
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepository{db: db}
}
