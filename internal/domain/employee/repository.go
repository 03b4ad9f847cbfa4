package employee

import (
	"context"
)

// BalanceKind names a leave balance column. Only the three quota-backed
// leave types have one.
type BalanceKind string

const (
	BalanceCasual BalanceKind = "casual"
	BalanceSick   BalanceKind = "sick"
	BalanceAnnual BalanceKind = "annual"
)

// EmployeeRepository is the directory of employee records. Leave balances
// are mutated only through DecrementLeaveBalance; salary and bank details
// only through UpdateCompensation.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	GetByEmail(ctx context.Context, email string) (Employee, error)

	// ListActive returns all active employees, used by bulk payroll runs.
	ListActive(ctx context.Context) ([]Employee, error)

	// ListByRoles returns active employees holding any of the given roles,
	// used to fan out approval notifications.
	ListByRoles(ctx context.Context, roles []Role) ([]Employee, error)

	// DecrementLeaveBalance subtracts days from the named balance. Callers
	// run it inside the same transaction as the leave status transition.
	DecrementLeaveBalance(ctx context.Context, employeeID string, kind BalanceKind, days float64) error

	// UpdateCompensation replaces the salary structure and, when bank is
	// non-nil, the bank details. The authorization and lock checks live in
	// the payroll service.
	UpdateCompensation(ctx context.Context, employeeID string, salary SalaryStructure, bank *BankDetails) error
}
