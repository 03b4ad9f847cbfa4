package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	id, employee_id, employee_name, department, date, day_of_week,
	check_in_time, check_in_type, check_in_latitude, check_in_longitude, check_in_device,
	check_out_time, check_out_type, check_out_latitude, check_out_longitude, check_out_device,
	total_hours, status, is_late, is_early_departure, remarks,
	created_at, updated_at
`

func scanAttendance(row pgx.Row) (*attendance.Attendance, error) {
	var a attendance.Attendance
	var inLat, inLng, outLat, outLng *float64
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.EmployeeName, &a.Department, &a.Date, &a.DayOfWeek,
		&a.CheckInTime, &a.CheckInType, &inLat, &inLng, &a.CheckInDevice,
		&a.CheckOutTime, &a.CheckOutType, &outLat, &outLng, &a.CheckOutDevice,
		&a.TotalHours, &a.Status, &a.IsLate, &a.IsEarlyDeparture, &a.Remarks,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if inLat != nil && inLng != nil {
		a.CheckInLocation = &attendance.Location{Latitude: *inLat, Longitude: *inLng}
	}
	if outLat != nil && outLng != nil {
		a.CheckOutLocation = &attendance.Location{Latitude: *outLat, Longitude: *outLng}
	}
	return &a, nil
}

func locationParts(loc *attendance.Location) (lat, lng *float64) {
	if loc == nil {
		return nil, nil
	}
	return &loc.Latitude, &loc.Longitude
}

// Create implements attendance.Repository. The attendances table carries a
// partial unique index on (employee_id) WHERE check_out_time IS NULL, so a
// second open session for the same employee fails with SQLSTATE 23505
// regardless of interleaving.
func (r *attendanceRepository) Create(ctx context.Context, a *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, employee_name, department, date, day_of_week,
			check_in_time, check_in_type, check_in_latitude, check_in_longitude, check_in_device,
			status, is_late, remarks
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING created_at, updated_at
	`

	inLat, inLng := locationParts(a.CheckInLocation)
	err := q.QueryRow(ctx, query,
		a.ID, a.EmployeeID, a.EmployeeName, a.Department, a.Date, a.DayOfWeek,
		a.CheckInTime, a.CheckInType, inLat, inLng, a.CheckInDevice,
		a.Status, a.IsLate, a.Remarks,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.ErrActiveSession
		}
		return fmt.Errorf("failed to create attendance session: %w", err)
	}

	return nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return a, nil
}

// GetOpenSession implements attendance.Repository.
func (r *attendanceRepository) GetOpenSession(ctx context.Context, employeeID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND check_out_time IS NULL
		ORDER BY check_in_time DESC
		LIMIT 1
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, attendance.ErrNoActiveSession
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	return a, nil
}

// Update implements attendance.Repository. It writes the check-out side and
// the recomputed totals; the check-in side is immutable after Create.
func (r *attendanceRepository) Update(ctx context.Context, a *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out_time = $1, check_out_type = $2,
			check_out_latitude = $3, check_out_longitude = $4, check_out_device = $5,
			total_hours = $6, status = $7, is_early_departure = $8, remarks = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`

	outLat, outLng := locationParts(a.CheckOutLocation)
	err := q.QueryRow(ctx, query,
		a.CheckOutTime, a.CheckOutType,
		outLat, outLng, a.CheckOutDevice,
		a.TotalHours, a.Status, a.IsEarlyDeparture, a.Remarks,
		a.ID,
	).Scan(&a.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance session: %w", err)
	}

	return nil
}

// HasRecordForDate implements attendance.Repository.
func (r *attendanceRepository) HasRecordForDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendances WHERE employee_id = $1 AND date = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance for date: %w", err)
	}

	return exists, nil
}

// ListByEmployeeAndDate implements attendance.Repository.
func (r *attendanceRepository) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date = $2
		ORDER BY check_in_time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// List implements attendance.Repository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "employee_id = $1"
	args := []interface{}{filter.EmployeeID}
	argIdx := 2

	if filter.StartDate != nil {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 50
	}
	args = append(args, limit, filter.Offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances
		WHERE %s
		ORDER BY date DESC, check_in_time DESC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, baseWhere, argIdx, argIdx+1)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListForDate implements attendance.Repository.
func (r *attendanceRepository) ListForDate(ctx context.Context, date time.Time) ([]*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE date = $1
		ORDER BY employee_id, check_in_time ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for date: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// CountDistinctDaysByStatus implements attendance.Repository.
func (r *attendanceRepository) CountDistinctDaysByStatus(ctx context.Context, employeeID string, start, end time.Time, statuses []attendance.Status) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT date)
		FROM attendances
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		  AND status = ANY($4)
	`

	statusStrings := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusStrings = append(statusStrings, string(s))
	}

	var count int
	if err := q.QueryRow(ctx, query, employeeID, start, end, statusStrings).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendance days: %w", err)
	}

	return count, nil
}

func collectAttendances(rows pgx.Rows) ([]*attendance.Attendance, error) {
	var items []*attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}
