package payroll

import "context"

// Repository persists payslips. CreateIfAbsent writes the payslip unless one
// already exists for the same employee and period, in which case it returns
// the existing record with created=false. The postgres implementation backs
// this with a unique constraint and ON CONFLICT DO NOTHING so concurrent
// generators can never double-write a period.
type Repository interface {
	CreateIfAbsent(ctx context.Context, p *Payslip) (created bool, existing *Payslip, err error)
	GetByID(ctx context.Context, id string) (*Payslip, error)
	GetByEmployeePeriod(ctx context.Context, employeeID, month string, year int) (*Payslip, error)
	ListByEmployee(ctx context.Context, employeeID string, year *int) ([]*Payslip, error)
	ListAll(ctx context.Context, month *string, year *int, department *string, limit, offset int) ([]*Payslip, error)
	Delete(ctx context.Context, id string) (bool, error)
}
