package leave

import "context"

// Service is the leave ledger.
type Service interface {
	Apply(ctx context.Context, req *ApplyRequest) (*Response, error)
	ListAll(ctx context.Context, status *Status, department *string, limit, offset int) ([]*Response, error)
	MyLeaves(ctx context.Context, status *Status) ([]*Response, error)
	Balance(ctx context.Context, employeeID string) (*BalanceResponse, error)
	Decide(ctx context.Context, leaveID string, req *DecideRequest) (*Response, error)
	Cancel(ctx context.Context, leaveID string) (*Response, error)
}
