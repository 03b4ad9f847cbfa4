package payroll

import "errors"

var (
	ErrPayslipNotFound  = errors.New("payslip not found")
	ErrInvalidMonth     = errors.New("invalid month name")
	ErrInvalidYear      = errors.New("invalid year")
	ErrNotOwnPayslip    = errors.New("payslip belongs to another employee")
	ErrOperatorRequired = errors.New("payroll operator role required")
)
