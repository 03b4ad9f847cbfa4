package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/employee"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

const employeeColumns = `
	id, first_name, last_name, email, phone, department, designation, role,
	reporting_manager, joining_date, employment_type, is_active,
	shift_start_time, shift_end_time,
	casual_leave_balance, sick_leave_balance, annual_leave_balance,
	basic, hra, conveyance, special_allowance, professional_allowance,
	uniform_allowance, shift_allowance, medical_allowance,
	pf_employer, pf_employee, professional_tax,
	account_number, bank_name, ifsc_code, pan_number, uan_number, pf_number,
	payment_mode, bank_details_locked,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.Department, &e.Designation, &e.Role,
		&e.ReportingManager, &e.JoiningDate, &e.EmploymentType, &e.IsActive,
		&e.ShiftStartTime, &e.ShiftEndTime,
		&e.CasualLeaveBalance, &e.SickLeaveBalance, &e.AnnualLeaveBalance,
		&e.Salary.Basic, &e.Salary.HRA, &e.Salary.Conveyance, &e.Salary.SpecialAllowance, &e.Salary.ProfessionalAllowance,
		&e.Salary.UniformAllowance, &e.Salary.ShiftAllowance, &e.Salary.MedicalAllowance,
		&e.Salary.PFEmployer, &e.Salary.PFEmployee, &e.Salary.ProfessionalTax,
		&e.Bank.AccountNumber, &e.Bank.BankName, &e.Bank.IFSCCode, &e.Bank.PANNumber, &e.Bank.UANNumber, &e.Bank.PFNumber,
		&e.Bank.PaymentMode, &e.BankDetailsLocked,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return e, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return e, nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE is_active = TRUE ORDER BY id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// ListByRoles implements employee.EmployeeRepository.
func (r *employeeRepository) ListByRoles(ctx context.Context, roles []employee.Role) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE is_active = TRUE AND role = ANY($1) ORDER BY id`

	roleStrings := make([]string, 0, len(roles))
	for _, role := range roles {
		roleStrings = append(roleStrings, string(role))
	}

	rows, err := q.Query(ctx, query, roleStrings)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by roles: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// DecrementLeaveBalance implements employee.EmployeeRepository. The balance
// column guard keeps a concurrent approval from driving a balance negative.
func (r *employeeRepository) DecrementLeaveBalance(ctx context.Context, employeeID string, kind employee.BalanceKind, days float64) error {
	q := GetQuerier(ctx, r.db)

	var column string
	switch kind {
	case employee.BalanceCasual:
		column = "casual_leave_balance"
	case employee.BalanceSick:
		column = "sick_leave_balance"
	case employee.BalanceAnnual:
		column = "annual_leave_balance"
	default:
		return fmt.Errorf("unknown balance kind: %s", kind)
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s = %s - $1, updated_at = NOW()
		WHERE id = $2 AND %s >= $1
	`, column, column, column)

	tag, err := q.Exec(ctx, query, days, employeeID)
	if err != nil {
		return fmt.Errorf("failed to decrement leave balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrInsufficientBalance
	}

	return nil
}

// UpdateCompensation implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateCompensation(ctx context.Context, employeeID string, salary employee.SalaryStructure, bank *employee.BankDetails) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET basic = $1, hra = $2, conveyance = $3, special_allowance = $4,
			professional_allowance = $5, uniform_allowance = $6, shift_allowance = $7,
			medical_allowance = $8, pf_employer = $9, pf_employee = $10,
			professional_tax = $11, updated_at = NOW()
		WHERE id = $12
	`
	tag, err := q.Exec(ctx, query,
		salary.Basic, salary.HRA, salary.Conveyance, salary.SpecialAllowance,
		salary.ProfessionalAllowance, salary.UniformAllowance, salary.ShiftAllowance,
		salary.MedicalAllowance, salary.PFEmployer, salary.PFEmployee,
		salary.ProfessionalTax, employeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update salary structure: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	if bank != nil {
		query := `
			UPDATE employees
			SET account_number = $1, bank_name = $2, ifsc_code = $3, pan_number = $4,
				uan_number = $5, pf_number = $6, payment_mode = $7,
				bank_details_locked = TRUE, updated_at = NOW()
			WHERE id = $8
		`
		tag, err := q.Exec(ctx, query,
			bank.AccountNumber, bank.BankName, bank.IFSCCode, bank.PANNumber,
			bank.UANNumber, bank.PFNumber, bank.PaymentMode, employeeID,
		)
		if err != nil {
			return fmt.Errorf("failed to update bank details: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return employee.ErrEmployeeNotFound
		}
	}

	return nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
