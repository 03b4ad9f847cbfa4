package holiday

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/employee"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/holiday"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/identity"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/validator"
)

type service struct {
	repo holiday.Repository
	now  func() time.Time
}

func NewService(repo holiday.Repository) holiday.Service {
	return &service{repo: repo, now: time.Now}
}

// List implements holiday.Service. Year 0 means the current year.
func (s *service) List(ctx context.Context, year int) ([]*holiday.Response, error) {
	if _, err := identity.FromContext(ctx); err != nil {
		return nil, err
	}
	if year == 0 {
		year = s.now().Year()
	}
	if !validator.IsValidYear(year) {
		return nil, validator.ValidationErrors{{Field: "year", Message: "out of range"}}
	}

	items, err := s.repo.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	return holiday.ToResponseList(items), nil
}

// Create implements holiday.Service.
func (s *service) Create(ctx context.Context, req *holiday.CreateRequest) (*holiday.Response, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if caller.Role != employee.RoleAdmin {
		return nil, employee.ErrAccessDenied
	}

	var verrs validator.ValidationErrors
	if validator.IsEmpty(req.Name) {
		verrs = append(verrs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		verrs = append(verrs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	h := &holiday.Holiday{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Date:       date,
		IsOptional: req.IsOptional,
		CreatedAt:  s.now(),
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}

	return holiday.ToResponse(h), nil
}

// Delete implements holiday.Service.
func (s *service) Delete(ctx context.Context, id string) error {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}
	if caller.Role != employee.RoleAdmin {
		return employee.ErrAccessDenied
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
