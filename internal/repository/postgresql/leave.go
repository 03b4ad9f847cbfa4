package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/leave"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

const leaveColumns = `
	id, employee_id, employee_name, department,
	leave_type, start_date, end_date, is_half_day, total_days,
	reason, contact_during_leave, handover_notes, attachment_url,
	status, approvals, applied_at, updated_at
`

func scanLeave(row pgx.Row) (*leave.Application, error) {
	var app leave.Application
	err := row.Scan(
		&app.ID, &app.EmployeeID, &app.EmployeeName, &app.Department,
		&app.LeaveType, &app.StartDate, &app.EndDate, &app.IsHalfDay, &app.TotalDays,
		&app.Reason, &app.ContactDuring, &app.HandoverNotes, &app.AttachmentURL,
		&app.Status, &app.Approvals, &app.AppliedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Create implements leave.Repository.
func (r *leaveRepository) Create(ctx context.Context, app *leave.Application) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_applications (
			id, employee_id, employee_name, department,
			leave_type, start_date, end_date, is_half_day, total_days,
			reason, contact_during_leave, handover_notes, attachment_url,
			status, approvals
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING applied_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		app.ID, app.EmployeeID, app.EmployeeName, app.Department,
		app.LeaveType, app.StartDate, app.EndDate, app.IsHalfDay, app.TotalDays,
		app.Reason, app.ContactDuring, app.HandoverNotes, app.AttachmentURL,
		app.Status, app.Approvals,
	).Scan(&app.AppliedAt, &app.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create leave application: %w", err)
	}

	return nil
}

// GetByID implements leave.Repository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (*leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_applications WHERE id = $1`

	app, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, leave.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("failed to get leave application: %w", err)
	}

	return app, nil
}

// List implements leave.Repository.
func (r *leaveRepository) List(ctx context.Context, filter leave.ListFilter) ([]*leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Department != nil {
		baseWhere += fmt.Sprintf(" AND department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.ExcludeDepartment != nil {
		baseWhere += fmt.Sprintf(" AND department <> $%d", argIdx)
		args = append(args, *filter.ExcludeDepartment)
		argIdx++
	}
	if filter.ExcludeEmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id <> $%d", argIdx)
		args = append(args, filter.ExcludeEmployeeID)
		argIdx++
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 50
	}
	args = append(args, limit, filter.Offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_applications
		WHERE %s
		ORDER BY applied_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveColumns, baseWhere, argIdx, argIdx+1)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave applications: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// ListByEmployee implements leave.Repository.
func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string, status *leave.Status) ([]*leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_applications WHERE employee_id = $1`
	args := []interface{}{employeeID}
	if status != nil {
		query += " AND status = $2"
		args = append(args, *status)
	}
	query += " ORDER BY applied_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave applications by employee: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// UpdateDecision implements leave.Repository. The status guard makes the
// pending-to-final transition atomic: only one of several concurrent
// deciders can move the row, the rest see zero rows affected.
func (r *leaveRepository) UpdateDecision(ctx context.Context, id string, status leave.Status, approvals leave.Approvals) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_applications
		SET status = $1, approvals = $2, updated_at = NOW()
		WHERE id = $3 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, status, approvals, id)
	if err != nil {
		return false, fmt.Errorf("failed to update leave decision: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// UpdateStatus implements leave.Repository.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_applications
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return false, fmt.Errorf("failed to update leave status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func collectLeaves(rows pgx.Rows) ([]*leave.Application, error) {
	var items []*leave.Application
	for rows.Next() {
		app, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave application: %w", err)
		}
		items = append(items, app)
	}
	return items, rows.Err()
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}
