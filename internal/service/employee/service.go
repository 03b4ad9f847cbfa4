package employee

import (
	"context"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/employee"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/identity"
)

type service struct {
	repo employee.EmployeeRepository
}

func NewService(repo employee.EmployeeRepository) employee.Service {
	return &service{repo: repo}
}

// Me implements employee.Service.
func (s *service) Me(ctx context.Context) (*employee.EmployeeResponse, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := s.repo.GetByID(ctx, caller.EmployeeID)
	if err != nil {
		return nil, err
	}

	resp := employee.ToResponse(emp, true)
	return &resp, nil
}

// GetByID implements employee.Service.
func (s *service) GetByID(ctx context.Context, id string) (*employee.EmployeeResponse, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if id == caller.EmployeeID {
		return s.Me(ctx)
	}
	if !caller.Role.IsApprover() {
		return nil, employee.ErrAccessDenied
	}

	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := employee.ToResponse(emp, caller.Role.IsPayrollOperator())
	return &resp, nil
}
