package leave

import "context"

// ListFilter narrows leave listings. ExcludeDepartment hides a department
// from the result set, used to keep HR reviewers away from their own
// department's requests.
type ListFilter struct {
	EmployeeID        string
	Status            *Status
	Department        *string
	ExcludeDepartment *string
	ExcludeEmployeeID string
	Limit             int
	Offset            int
}

type Repository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	List(ctx context.Context, filter ListFilter) ([]*Application, error)
	ListByEmployee(ctx context.Context, employeeID string, status *Status) ([]*Application, error)
	// UpdateDecision moves a pending application to its final status and
	// appends the approval entry. It reports false when the application was
	// no longer pending, which callers surface as ErrAlreadyProcessed.
	UpdateDecision(ctx context.Context, id string, status Status, approvals Approvals) (bool, error)
	// UpdateStatus moves a pending application to the given status without
	// touching approvals, used for owner cancellation. Same guard semantics
	// as UpdateDecision.
	UpdateStatus(ctx context.Context, id string, status Status) (bool, error)
}
