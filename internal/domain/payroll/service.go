package payroll

import "context"

// Service is the payroll settlement engine.
type Service interface {
	LossOfPayDays(ctx context.Context, employeeID, month string, year int) (*LossOfPayResponse, error)
	Generate(ctx context.Context, req *GenerateRequest) (*Response, error)
	BulkGenerate(ctx context.Context, req *BulkGenerateRequest) (*BulkGenerateResult, error)
	UpdateSalary(ctx context.Context, employeeID string, req *UpdateSalaryRequest) error
	MyPayslips(ctx context.Context, year *int) ([]*Response, error)
	ListAll(ctx context.Context, month *string, year *int, department *string, limit, offset int) ([]*Response, error)
	Delete(ctx context.Context, payslipID string) error
}
