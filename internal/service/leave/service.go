package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/employee"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/holiday"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/leave"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/notification"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/database"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/email"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/identity"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/validator"
	"github.com/zenith-hr/workforce-backend-go/internal/repository/postgresql"
)

type service struct {
	repo         leave.Repository
	employeeRepo employee.EmployeeRepository
	holidayRepo  holiday.Repository
	notifier     notification.Service
	mailer       email.Service
	runTx        func(ctx context.Context, fn func(ctx context.Context) error) error
	now          func() time.Time
}

func NewService(
	repo leave.Repository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.Repository,
	db *database.DB,
	notifier notification.Service,
	mailer email.Service,
) leave.Service {
	return &service{
		repo:         repo,
		employeeRepo: employeeRepo,
		holidayRepo:  holidayRepo,
		notifier:     notifier,
		mailer:       mailer,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		now: time.Now,
	}
}

var validTypes = []string{
	string(leave.TypeCasual), string(leave.TypeSick), string(leave.TypeAnnual),
	string(leave.TypeMaternity), string(leave.TypePaternity),
	string(leave.TypeUnpaid), string(leave.TypeCompensatory),
}

// Apply implements leave.Service. The balance check here is advisory; the
// binding check happens at approval time inside the decision transaction.
func (s *service) Apply(ctx context.Context, req *leave.ApplyRequest) (*leave.Response, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, caller.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !emp.IsActive {
		return nil, employee.ErrInactiveEmployee
	}

	var verrs validator.ValidationErrors
	if !validator.IsInSlice(string(req.LeaveType), validTypes) {
		verrs = append(verrs, validator.ValidationError{Field: "leave_type", Message: "unknown leave type"})
	}
	if validator.IsEmpty(req.Reason) {
		verrs = append(verrs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	startDate, ok := validator.IsValidDate(req.StartDate)
	if !ok {
		verrs = append(verrs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	endDate, ok := validator.IsValidDate(req.EndDate)
	if !ok {
		verrs = append(verrs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if len(verrs) > 0 {
		return nil, verrs
	}
	if endDate.Before(startDate) {
		return nil, leave.ErrInvalidDateRange
	}

	totalDays := leave.TotalDaysFor(startDate, endDate, req.IsHalfDay)

	if req.LeaveType.DeductsBalance() {
		if balanceFor(emp, req.LeaveType) < totalDays {
			return nil, leave.ErrInsufficientBalance
		}
	}

	app := &leave.Application{
		ID:            uuid.New().String(),
		EmployeeID:    emp.ID,
		EmployeeName:  emp.FullName(),
		Department:    emp.Department,
		LeaveType:     req.LeaveType,
		StartDate:     startDate,
		EndDate:       endDate,
		IsHalfDay:     req.IsHalfDay,
		TotalDays:     totalDays,
		Reason:        req.Reason,
		ContactDuring: req.ContactDuring,
		HandoverNotes: req.HandoverNotes,
		AttachmentURL: req.AttachmentURL,
		Status:        leave.StatusPending,
		Approvals:     leave.Approvals{},
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.notifyApprovers(ctx, emp, app)

	resp := leave.ToResponse(app)
	resp.Warning = s.holidayWarning(ctx, startDate, endDate)

	return resp, nil
}

// holidayWarning checks whether the range begins or ends on a holiday.
// Lookup failures are logged and ignored.
func (s *service) holidayWarning(ctx context.Context, start, end time.Time) *string {
	holidays, err := s.holidayRepo.ListInRange(ctx, start, end)
	if err != nil {
		slog.Error("failed to check holidays for leave application", "error", err)
		return nil
	}
	for _, h := range holidays {
		day := h.Date.Format("2006-01-02")
		if day == start.Format("2006-01-02") || day == end.Format("2006-01-02") {
			msg := fmt.Sprintf("%s (%s) is a holiday", h.Name, day)
			return &msg
		}
	}
	return nil
}

func balanceFor(emp employee.Employee, t leave.Type) float64 {
	switch t {
	case leave.TypeCasual:
		return emp.CasualLeaveBalance
	case leave.TypeSick:
		return emp.SickLeaveBalance
	case leave.TypeAnnual:
		return emp.AnnualLeaveBalance
	}
	return 0
}

func balanceKindFor(t leave.Type) employee.BalanceKind {
	switch t {
	case leave.TypeCasual:
		return employee.BalanceCasual
	case leave.TypeSick:
		return employee.BalanceSick
	case leave.TypeAnnual:
		return employee.BalanceAnnual
	}
	return ""
}

func (s *service) notifyApprovers(ctx context.Context, emp employee.Employee, app *leave.Application) {
	title := "New Leave Application"
	message := fmt.Sprintf("%s applied for %s leave, %s to %s (%.1f days).",
		emp.FullName(), app.LeaveType, app.StartDate.Format("2006-01-02"), app.EndDate.Format("2006-01-02"), app.TotalDays)

	recipients := make(map[string]employee.Employee)
	approvers, err := s.employeeRepo.ListByRoles(ctx, []employee.Role{employee.RoleHR, employee.RoleAdmin})
	if err != nil {
		slog.Error("failed to list approvers for leave notification", "leave_id", app.ID, "error", err)
	} else {
		for _, a := range approvers {
			// HR reviewers never see their own department's requests
			if a.Role == employee.RoleHR && a.Department == emp.Department {
				continue
			}
			recipients[a.ID] = a
		}
	}
	if emp.ReportingManager != nil {
		if manager, err := s.employeeRepo.GetByID(ctx, *emp.ReportingManager); err == nil {
			recipients[manager.ID] = manager
		}
	}
	delete(recipients, emp.ID)

	for _, r := range recipients {
		s.notifier.Notify(r.ID, notification.TypeLeaveApplied, title, message, &app.ID)
		go func(r employee.Employee) {
			if err := s.mailer.SendLeaveApplication(r.Email, r.FullName(), emp.FullName(),
				string(app.LeaveType), app.StartDate.Format("2006-01-02"), app.EndDate.Format("2006-01-02"), app.TotalDays); err != nil {
				slog.Error("failed to send leave application email", "to", r.Email, "error", err)
			}
		}(r)
	}
}

// ListAll implements leave.Service. Managers and admins see everything,
// HR everything outside their own department.
func (s *service) ListAll(ctx context.Context, status *leave.Status, department *string, limit, offset int) ([]*leave.Response, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !caller.Role.IsApprover() {
		return nil, leave.ErrApprovalRoleRequired
	}

	filter := leave.ListFilter{
		Status:     status,
		Department: department,
		Limit:      limit,
		Offset:     offset,
	}

	if caller.Role == employee.RoleHR {
		dept := caller.Department
		filter.ExcludeDepartment = &dept
		filter.ExcludeEmployeeID = caller.EmployeeID
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return leave.ToResponseList(items), nil
}

// MyLeaves implements leave.Service.
func (s *service) MyLeaves(ctx context.Context, status *leave.Status) ([]*leave.Response, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListByEmployee(ctx, caller.EmployeeID, status)
	if err != nil {
		return nil, err
	}

	return leave.ToResponseList(items), nil
}

// Balance implements leave.Service.
func (s *service) Balance(ctx context.Context, employeeID string) (*leave.BalanceResponse, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if employeeID == "" {
		employeeID = caller.EmployeeID
	}
	if employeeID != caller.EmployeeID && !caller.Role.IsApprover() {
		return nil, employee.ErrAccessDenied
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return &leave.BalanceResponse{
		EmployeeID: emp.ID,
		Casual:     emp.CasualLeaveBalance,
		Sick:       emp.SickLeaveBalance,
		Annual:     emp.AnnualLeaveBalance,
	}, nil
}

// Decide implements leave.Service. The status transition and the balance
// decrement commit or roll back together; the guarded update means exactly
// one concurrent decision wins.
func (s *service) Decide(ctx context.Context, leaveID string, req *leave.DecideRequest) (*leave.Response, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !caller.Role.IsApprover() {
		return nil, leave.ErrApprovalRoleRequired
	}
	if req.Action != leave.StatusApproved && req.Action != leave.StatusRejected {
		return nil, leave.ErrInvalidDecision
	}

	app, err := s.repo.GetByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}
	if app.Status != leave.StatusPending {
		return nil, leave.ErrAlreadyProcessed
	}
	if app.EmployeeID == caller.EmployeeID {
		return nil, employee.ErrAccessDenied
	}

	requester, err := s.employeeRepo.GetByID(ctx, app.EmployeeID)
	if err != nil {
		return nil, err
	}

	if caller.Role == employee.RoleHR {
		if requester.Department == caller.Department {
			return nil, leave.ErrOwnDepartmentConflict
		}
		if requester.Role == employee.RoleHR {
			return nil, leave.ErrHRPeerApproval
		}
	}

	approver, err := s.employeeRepo.GetByID(ctx, caller.EmployeeID)
	if err != nil {
		return nil, err
	}

	approvals := append(app.Approvals, leave.Approval{
		ApproverID:   approver.ID,
		ApproverName: approver.FullName(),
		ApproverRole: string(caller.Role),
		Action:       req.Action,
		Comments:     req.Comments,
		DecidedAt:    s.now(),
	})

	err = s.runTx(ctx, func(txCtx context.Context) error {
		moved, err := s.repo.UpdateDecision(txCtx, leaveID, req.Action, approvals)
		if err != nil {
			return err
		}
		if !moved {
			return leave.ErrAlreadyProcessed
		}

		if req.Action == leave.StatusApproved && app.LeaveType.DeductsBalance() {
			if err := s.employeeRepo.DecrementLeaveBalance(txCtx, app.EmployeeID, balanceKindFor(app.LeaveType), app.TotalDays); err != nil {
				if errors.Is(err, employee.ErrInsufficientBalance) {
					return leave.ErrInsufficientBalance
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	app.Status = req.Action
	app.Approvals = approvals

	s.notifyDecision(requester, app, req.Comments)

	return leave.ToResponse(app), nil
}

func (s *service) notifyDecision(requester employee.Employee, app *leave.Application, comments *string) {
	typ := notification.TypeLeaveApproved
	if app.Status == leave.StatusRejected {
		typ = notification.TypeLeaveRejected
	}

	s.notifier.Notify(requester.ID, typ,
		fmt.Sprintf("Leave %s", app.Status),
		fmt.Sprintf("Your %s leave from %s to %s was %s.",
			app.LeaveType, app.StartDate.Format("2006-01-02"), app.EndDate.Format("2006-01-02"), app.Status),
		&app.ID,
	)

	go func() {
		if err := s.mailer.SendLeaveStatus(requester.Email, requester.FullName(),
			string(app.LeaveType), app.StartDate.Format("2006-01-02"), app.EndDate.Format("2006-01-02"),
			string(app.Status), comments); err != nil {
			slog.Error("failed to send leave status email", "to", requester.Email, "error", err)
		}
	}()
}

// Cancel implements leave.Service. Only the owner may cancel, and only
// while the application is still pending.
func (s *service) Cancel(ctx context.Context, leaveID string) (*leave.Response, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	app, err := s.repo.GetByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}
	if app.EmployeeID != caller.EmployeeID {
		return nil, leave.ErrNotOwnLeave
	}
	if app.Status != leave.StatusPending {
		return nil, leave.ErrAlreadyProcessed
	}

	moved, err := s.repo.UpdateStatus(ctx, leaveID, leave.StatusCancelled)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, leave.ErrAlreadyProcessed
	}

	app.Status = leave.StatusCancelled

	return leave.ToResponse(app), nil
}
