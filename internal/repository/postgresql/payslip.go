package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/payroll"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/database"
)

type payslipRepository struct {
	db *database.DB
}

const payslipColumns = `
	id, employee_id, employee_name, department, designation, month, year,
	basic, hra, conveyance, special_allowance, professional_allowance,
	uniform_allowance, shift_allowance, medical_allowance, gross_earnings,
	pf_employee, professional_tax, loss_of_pay, total_deductions,
	working_days, days_present, days_absent, half_days, days_on_leave, loss_of_pay_days,
	account_number, bank_name, ifsc_code, pan_number, uan_number, pf_number, payment_mode,
	net_pay, generated_by, generated_at
`

func scanPayslip(row pgx.Row) (*payroll.Payslip, error) {
	var p payroll.Payslip
	var accountNumber, bankName, ifscCode, panNumber, uanNumber, pfNumber, paymentMode *string
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.EmployeeName, &p.Department, &p.Designation, &p.Month, &p.Year,
		&p.Earnings.Basic, &p.Earnings.HRA, &p.Earnings.Conveyance, &p.Earnings.SpecialAllowance, &p.Earnings.ProfessionalAllowance,
		&p.Earnings.UniformAllowance, &p.Earnings.ShiftAllowance, &p.Earnings.MedicalAllowance, &p.Earnings.GrossEarnings,
		&p.Deductions.PFEmployee, &p.Deductions.ProfessionalTax, &p.Deductions.LossOfPay, &p.Deductions.TotalDeductions,
		&p.Attendance.WorkingDays, &p.Attendance.DaysPresent, &p.Attendance.DaysAbsent, &p.Attendance.HalfDays, &p.Attendance.DaysOnLeave, &p.Attendance.LossOfPayDay,
		&accountNumber, &bankName, &ifscCode, &panNumber, &uanNumber, &pfNumber, &paymentMode,
		&p.NetPay, &p.GeneratedBy, &p.GeneratedAt,
	)
	if err != nil {
		return nil, err
	}
	if accountNumber != nil || bankName != nil {
		p.Bank = &payroll.BankSnapshot{
			AccountNumber: deref(accountNumber),
			BankName:      deref(bankName),
			IFSCCode:      deref(ifscCode),
			PANNumber:     deref(panNumber),
			UANNumber:     deref(uanNumber),
			PFNumber:      deref(pfNumber),
			PaymentMode:   deref(paymentMode),
		}
	}
	return &p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// CreateIfAbsent implements payroll.Repository. The payslips table has a
// unique constraint on (employee_id, month, year); ON CONFLICT DO NOTHING
// means a concurrent generation of the same period writes exactly one row
// and the loser reads back the winner's snapshot.
func (r *payslipRepository) CreateIfAbsent(ctx context.Context, p *payroll.Payslip) (bool, *payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			id, employee_id, employee_name, department, designation, month, year,
			basic, hra, conveyance, special_allowance, professional_allowance,
			uniform_allowance, shift_allowance, medical_allowance, gross_earnings,
			pf_employee, professional_tax, loss_of_pay, total_deductions,
			working_days, days_present, days_absent, half_days, days_on_leave, loss_of_pay_days,
			account_number, bank_name, ifsc_code, pan_number, uan_number, pf_number, payment_mode,
			net_pay, generated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26,
			$27, $28, $29, $30, $31, $32, $33,
			$34, $35
		)
		ON CONFLICT (employee_id, month, year) DO NOTHING
	`

	var accountNumber, bankName, ifscCode, panNumber, uanNumber, pfNumber, paymentMode *string
	if p.Bank != nil {
		accountNumber = &p.Bank.AccountNumber
		bankName = &p.Bank.BankName
		ifscCode = &p.Bank.IFSCCode
		panNumber = &p.Bank.PANNumber
		uanNumber = &p.Bank.UANNumber
		pfNumber = &p.Bank.PFNumber
		paymentMode = &p.Bank.PaymentMode
	}

	tag, err := q.Exec(ctx, query,
		p.ID, p.EmployeeID, p.EmployeeName, p.Department, p.Designation, p.Month, p.Year,
		p.Earnings.Basic, p.Earnings.HRA, p.Earnings.Conveyance, p.Earnings.SpecialAllowance, p.Earnings.ProfessionalAllowance,
		p.Earnings.UniformAllowance, p.Earnings.ShiftAllowance, p.Earnings.MedicalAllowance, p.Earnings.GrossEarnings,
		p.Deductions.PFEmployee, p.Deductions.ProfessionalTax, p.Deductions.LossOfPay, p.Deductions.TotalDeductions,
		p.Attendance.WorkingDays, p.Attendance.DaysPresent, p.Attendance.DaysAbsent, p.Attendance.HalfDays, p.Attendance.DaysOnLeave, p.Attendance.LossOfPayDay,
		accountNumber, bankName, ifscCode, panNumber, uanNumber, pfNumber, paymentMode,
		p.NetPay, p.GeneratedBy,
	)
	if err != nil {
		return false, nil, fmt.Errorf("failed to create payslip: %w", err)
	}

	if tag.RowsAffected() > 0 {
		return true, nil, nil
	}

	existing, err := r.GetByEmployeePeriod(ctx, p.EmployeeID, p.Month, p.Year)
	if err != nil {
		return false, nil, err
	}
	return false, existing, nil
}

// GetByID implements payroll.Repository.
func (r *payslipRepository) GetByID(ctx context.Context, id string) (*payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE id = $1`

	p, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrPayslipNotFound
		}
		return nil, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}

// GetByEmployeePeriod implements payroll.Repository. The month match is
// case-insensitive so "January" and "january" address the same period.
func (r *payslipRepository) GetByEmployeePeriod(ctx context.Context, employeeID, month string, year int) (*payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips
		WHERE employee_id = $1 AND LOWER(month) = LOWER($2) AND year = $3
	`

	p, err := scanPayslip(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrPayslipNotFound
		}
		return nil, fmt.Errorf("failed to get payslip by period: %w", err)
	}

	return p, nil
}

// ListByEmployee implements payroll.Repository.
func (r *payslipRepository) ListByEmployee(ctx context.Context, employeeID string, year *int) ([]*payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE employee_id = $1`
	args := []interface{}{employeeID}
	if year != nil {
		query += " AND year = $2"
		args = append(args, *year)
	}
	query += " ORDER BY year DESC, generated_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips by employee: %w", err)
	}
	defer rows.Close()

	return collectPayslips(rows)
}

// ListAll implements payroll.Repository.
func (r *payslipRepository) ListAll(ctx context.Context, month *string, year *int, department *string, limit, offset int) ([]*payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if month != nil {
		baseWhere += fmt.Sprintf(" AND LOWER(month) = LOWER($%d)", argIdx)
		args = append(args, *month)
		argIdx++
	}
	if year != nil {
		baseWhere += fmt.Sprintf(" AND year = $%d", argIdx)
		args = append(args, *year)
		argIdx++
	}
	if department != nil {
		baseWhere += fmt.Sprintf(" AND department = $%d", argIdx)
		args = append(args, *department)
		argIdx++
	}

	if limit == 0 {
		limit = 50
	}
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payslips
		WHERE %s
		ORDER BY year DESC, generated_at DESC
		LIMIT $%d OFFSET $%d
	`, payslipColumns, baseWhere, argIdx, argIdx+1)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	return collectPayslips(rows)
}

// Delete implements payroll.Repository.
func (r *payslipRepository) Delete(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payslips WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete payslip: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func collectPayslips(rows pgx.Rows) ([]*payroll.Payslip, error) {
	var items []*payroll.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func NewPayslipRepository(db *database.DB) payroll.Repository {
	return &payslipRepository{db: db}
}
