package employee

import "context"

// Service is the read-side directory surface. Writes go through the
// payroll service (compensation) and the leave ledger (balances).
type Service interface {
	// Me returns the caller's own record, salary and bank included.
	Me(ctx context.Context) (*EmployeeResponse, error)

	// GetByID returns another employee's record. Approver roles only;
	// salary and bank details are attached for payroll operators.
	GetByID(ctx context.Context, id string) (*EmployeeResponse, error)
}
