package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/employee"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/holiday"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/leave"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/notification"
)

func authCtx(employeeID string, role employee.Role, department string) context.Context {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	tok, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"email":       employeeID + "@corp.test",
		"role":        string(role),
		"department":  department,
		"type":        "access",
	})
	if err != nil {
		panic(err)
	}
	return jwtauth.NewContext(context.Background(), tok, nil)
}

type fakeLeaveRepo struct {
	apps map[string]*leave.Application
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{apps: make(map[string]*leave.Application)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, app *leave.Application) error {
	cp := *app
	f.apps[app.ID] = &cp
	return nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (*leave.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, leave.ErrLeaveNotFound
	}
	cp := *app
	return &cp, nil
}

func (f *fakeLeaveRepo) List(_ context.Context, filter leave.ListFilter) ([]*leave.Application, error) {
	var out []*leave.Application
	for _, app := range f.apps {
		if filter.EmployeeID != "" && app.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != nil && app.Status != *filter.Status {
			continue
		}
		if filter.Department != nil && app.Department != *filter.Department {
			continue
		}
		if filter.ExcludeDepartment != nil && app.Department == *filter.ExcludeDepartment {
			continue
		}
		if filter.ExcludeEmployeeID != "" && app.EmployeeID == filter.ExcludeEmployeeID {
			continue
		}
		cp := *app
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string, status *leave.Status) ([]*leave.Application, error) {
	return f.List(context.Background(), leave.ListFilter{EmployeeID: employeeID, Status: status})
}

func (f *fakeLeaveRepo) UpdateDecision(_ context.Context, id string, status leave.Status, approvals leave.Approvals) (bool, error) {
	app, ok := f.apps[id]
	if !ok || app.Status != leave.StatusPending {
		return false, nil
	}
	app.Status = status
	app.Approvals = approvals
	return true, nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status) (bool, error) {
	app, ok := f.apps[id]
	if !ok || app.Status != leave.StatusPending {
		return false, nil
	}
	app.Status = status
	return true, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, mail string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Email == mail {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByRoles(_ context.Context, roles []employee.Role) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		for _, role := range roles {
			if e.IsActive && e.Role == role {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) DecrementLeaveBalance(_ context.Context, employeeID string, kind employee.BalanceKind, days float64) error {
	e, ok := f.employees[employeeID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	switch kind {
	case employee.BalanceCasual:
		if e.CasualLeaveBalance < days {
			return employee.ErrInsufficientBalance
		}
		e.CasualLeaveBalance -= days
	case employee.BalanceSick:
		if e.SickLeaveBalance < days {
			return employee.ErrInsufficientBalance
		}
		e.SickLeaveBalance -= days
	case employee.BalanceAnnual:
		if e.AnnualLeaveBalance < days {
			return employee.ErrInsufficientBalance
		}
		e.AnnualLeaveBalance -= days
	}
	f.employees[employeeID] = e
	return nil
}

func (f *fakeEmployeeRepo) UpdateCompensation(_ context.Context, employeeID string, salary employee.SalaryStructure, bank *employee.BankDetails) error {
	e, ok := f.employees[employeeID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.Salary = salary
	if bank != nil {
		e.Bank = *bank
		e.BankDetailsLocked = true
	}
	f.employees[employeeID] = e
	return nil
}

type fakeNotifier struct {
	sent []notification.Type
}

func (f *fakeNotifier) Notify(_ string, typ notification.Type, _, _ string, _ *string) {
	f.sent = append(f.sent, typ)
}

func (f *fakeNotifier) List(context.Context, bool, int, int) ([]*notification.Response, error) {
	return nil, nil
}
func (f *fakeNotifier) MarkRead(context.Context, string) error     { return nil }
func (f *fakeNotifier) MarkAllRead(context.Context) (int64, error) { return 0, nil }
func (f *fakeNotifier) UnreadCount(context.Context) (int, error)   { return 0, nil }
func (f *fakeNotifier) Shutdown()                                  {}

type noopMailer struct{}

func (noopMailer) SendLateArrival(string, string, string, int) error { return nil }
func (noopMailer) SendShortHours(string, string, string, float64, float64) error {
	return nil
}
func (noopMailer) SendLeaveApplication(string, string, string, string, string, string, float64) error {
	return nil
}
func (noopMailer) SendLeaveStatus(string, string, string, string, string, string, *string) error {
	return nil
}
func (noopMailer) SendPayslipGenerated(string, string, string, int) error { return nil }

func testEmployee(id string, role employee.Role, department string) employee.Employee {
	return employee.Employee{
		ID:                 id,
		FirstName:          "Ravi",
		LastName:           "Iyer",
		Email:              id + "@corp.test",
		Department:         department,
		Role:               role,
		IsActive:           true,
		CasualLeaveBalance: 12,
		SickLeaveBalance:   10,
		AnnualLeaveBalance: 20,
	}
}

type fakeHolidayRepo struct {
	holidays []*holiday.Holiday
}

func (f *fakeHolidayRepo) Create(_ context.Context, h *holiday.Holiday) error {
	f.holidays = append(f.holidays, h)
	return nil
}

func (f *fakeHolidayRepo) ListInRange(_ context.Context, start, end time.Time) ([]*holiday.Holiday, error) {
	var out []*holiday.Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) ListByYear(_ context.Context, year int) ([]*holiday.Holiday, error) {
	var out []*holiday.Holiday
	for _, h := range f.holidays {
		if h.Date.Year() == year {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) Delete(context.Context, string) (bool, error) { return false, nil }

func newTestService(repo *fakeLeaveRepo, employees *fakeEmployeeRepo, notifier *fakeNotifier) *service {
	return &service{
		repo:         repo,
		employeeRepo: employees,
		holidayRepo:  &fakeHolidayRepo{},
		notifier:     notifier,
		mailer:       noopMailer{},
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
		now: func() time.Time { return time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC) },
	}
}

func TestApplyFullSpan(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee, "Engineering"),
		"HR001":  testEmployee("HR001", employee.RoleHR, "People"),
	}}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, employees, notifier)

	resp, err := svc.Apply(authCtx("EMP001", employee.RoleEmployee, "Engineering"), &leave.ApplyRequest{
		LeaveType: leave.TypeCasual,
		StartDate: "2026-04-01",
		EndDate:   "2026-04-03",
		Reason:    "family function",
	})
	require.NoError(t, err)

	assert.Equal(t, 3.0, resp.TotalDays)
	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Empty(t, resp.Approvals)
	assert.Contains(t, notifier.sent, notification.TypeLeaveApplied)
}

func TestApplyHalfDay(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee, "Engineering"),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{})

	resp, err := svc.Apply(authCtx("EMP001", employee.RoleEmployee, "Engineering"), &leave.ApplyRequest{
		LeaveType: leave.TypeSick,
		StartDate: "2026-04-01",
		EndDate:   "2026-04-01",
		IsHalfDay: true,
		Reason:    "doctor visit",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.5, resp.TotalDays)
}

func TestApplyInvalidDateRange(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee, "Engineering"),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{})

	_, err := svc.Apply(authCtx("EMP001", employee.RoleEmployee, "Engineering"), &leave.ApplyRequest{
		LeaveType: leave.TypeCasual,
		StartDate: "2026-04-05",
		EndDate:   "2026-04-01",
		Reason:    "trip",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestApplyInsufficientBalance(t *testing.T) {
	repo := newFakeLeaveRepo()
	emp := testEmployee("EMP001", employee.RoleEmployee, "Engineering")
	emp.CasualLeaveBalance = 1
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{"EMP001": emp}}
	svc := newTestService(repo, employees, &fakeNotifier{})

	_, err := svc.Apply(authCtx("EMP001", employee.RoleEmployee, "Engineering"), &leave.ApplyRequest{
		LeaveType: leave.TypeCasual,
		StartDate: "2026-04-01",
		EndDate:   "2026-04-03",
		Reason:    "trip",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestApplyUnpaidSkipsBalanceCheck(t *testing.T) {
	repo := newFakeLeaveRepo()
	emp := testEmployee("EMP001", employee.RoleEmployee, "Engineering")
	emp.CasualLeaveBalance = 0
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{"EMP001": emp}}
	svc := newTestService(repo, employees, &fakeNotifier{})

	resp, err := svc.Apply(authCtx("EMP001", employee.RoleEmployee, "Engineering"), &leave.ApplyRequest{
		LeaveType: leave.TypeUnpaid,
		StartDate: "2026-04-01",
		EndDate:   "2026-04-10",
		Reason:    "sabbatical",
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, resp.TotalDays)
}

func applyLeave(t *testing.T, svc *service, employeeID, department string) string {
	t.Helper()
	resp, err := svc.Apply(authCtx(employeeID, employee.RoleEmployee, department), &leave.ApplyRequest{
		LeaveType: leave.TypeCasual,
		StartDate: "2026-04-01",
		EndDate:   "2026-04-02",
		Reason:    "personal",
	})
	require.NoError(t, err)
	return resp.ID
}

func TestDecideApproveDeductsBalance(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee, "Engineering"),
		"HR001":  testEmployee("HR001", employee.RoleHR, "People"),
	}}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, employees, notifier)

	id := applyLeave(t, svc, "EMP001", "Engineering")

	resp, err := svc.Decide(authCtx("HR001", employee.RoleHR, "People"), id, &leave.DecideRequest{
		Action: leave.StatusApproved,
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, resp.Status)
	require.Len(t, resp.Approvals, 1)
	assert.Equal(t, "HR001", resp.Approvals[0].ApproverID)

	emp, _ := employees.GetByID(context.Background(), "EMP001")
	assert.Equal(t, 10.0, emp.CasualLeaveBalance)
	assert.Contains(t, notifier.sent, notification.TypeLeaveApproved)
}

func TestDecideRejectKeepsBalance(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee, "Engineering"),
		"HR001":  testEmployee("HR001", employee.RoleHR, "People"),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{})

	id := applyLeave(t, svc, "EMP001", "Engineering")

	resp, err := svc.Decide(authCtx("HR001", employee.RoleHR, "People"), id, &leave.DecideRequest{
		Action: leave.StatusRejected,
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusRejected, resp.Status)
	emp, _ := employees.GetByID(context.Background(), "EMP001")
	assert.Equal(t, 12.0, emp.CasualLeaveBalance)
}

func TestDecideAlreadyProcessed(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee, "Engineering"),
		"HR001":  testEmployee("HR001", employee.RoleHR, "People"),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{})

	id := applyLeave(t, svc, "EMP001", "Engineering")

	_, err := svc.Decide(authCtx("HR001", employee.RoleHR, "People"), id, &leave.DecideRequest{Action: leave.StatusApproved})
	require.NoError(t, err)

	_, err = svc.Decide(authCtx("HR001", employee.RoleHR, "People"), id, &leave.DecideRequest{Action: leave.StatusRejected})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestDecideOwnLeaveDenied(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"HR001": testEmployee("HR001", employee.RoleHR, "People"),
		"ADM01": testEmployee("ADM01", employee.RoleAdmin, "Management"),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{})

	resp, err := svc.Apply(authCtx("HR001", employee.RoleHR, "People"), &leave.ApplyRequest{
		LeaveType: leave.TypeCasual,
		StartDate: "2026-04-01",
		EndDate:   "2026-04-02",
		Reason:    "personal",
	})
	require.NoError(t, err)

	_, err = svc.Decide(authCtx("HR001", employee.RoleHR, "People"), resp.ID, &leave.DecideRequest{Action: leave.StatusApproved})
	assert.ErrorIs(t, err, employee.ErrAccessDenied)
}

func TestDecideHROwnDepartmentConflict(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee, "People"),
		"HR001":  testEmployee("HR001", employee.RoleHR, "People"),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{})

	id := applyLeave(t, svc, "EMP001", "People")

	_, err := svc.Decide(authCtx("HR001", employee.RoleHR, "People"), id, &leave.DecideRequest{Action: leave.StatusApproved})
	assert.ErrorIs(t, err, leave.ErrOwnDepartmentConflict)
}

func TestDecideHRPeerDenied(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"HR001": testEmployee("HR001", employee.RoleHR, "People"),
		"HR002": testEmployee("HR002", employee.RoleHR, "Recruitment"),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{})

	resp, err := svc.Apply(authCtx("HR001", employee.RoleHR, "People"), &leave.ApplyRequest{
		LeaveType: leave.TypeCasual,
		StartDate: "2026-04-01",
		EndDate:   "2026-04-02",
		Reason:    "personal",
	})
	require.NoError(t, err)

	_, err = svc.Decide(authCtx("HR002", employee.RoleHR, "Recruitment"), resp.ID, &leave.DecideRequest{Action: leave.StatusApproved})
	assert.ErrorIs(t, err, leave.ErrHRPeerApproval)
}

func TestDecideManagerAnyDepartment(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee, "Engineering"),
		"MGR01":  testEmployee("MGR01", employee.RoleManager, "Sales"),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{})

	id := applyLeave(t, svc, "EMP001", "Engineering")

	// Managers are not department-scoped; only HR carries the
	// conflict-of-interest rules.
	resp, err := svc.Decide(authCtx("MGR01", employee.RoleManager, "Sales"), id, &leave.DecideRequest{Action: leave.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, resp.Status)
}

func TestDecideApprovalRoleRequired(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee, "Engineering"),
		"EMP002": testEmployee("EMP002", employee.RoleEmployee, "Engineering"),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{})

	id := applyLeave(t, svc, "EMP001", "Engineering")

	_, err := svc.Decide(authCtx("EMP002", employee.RoleEmployee, "Engineering"), id, &leave.DecideRequest{Action: leave.StatusApproved})
	assert.ErrorIs(t, err, leave.ErrApprovalRoleRequired)
}

func TestCancelOwnPendingLeave(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee, "Engineering"),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{})

	id := applyLeave(t, svc, "EMP001", "Engineering")

	resp, err := svc.Cancel(authCtx("EMP001", employee.RoleEmployee, "Engineering"), id)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusCancelled, resp.Status)
}

func TestCancelOtherEmployeesLeave(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee, "Engineering"),
		"EMP002": testEmployee("EMP002", employee.RoleEmployee, "Engineering"),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{})

	id := applyLeave(t, svc, "EMP001", "Engineering")

	_, err := svc.Cancel(authCtx("EMP002", employee.RoleEmployee, "Engineering"), id)
	assert.ErrorIs(t, err, leave.ErrNotOwnLeave)
}

func TestListAllScoping(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee, "Engineering"),
		"EMP002": testEmployee("EMP002", employee.RoleEmployee, "People"),
		"HR001":  testEmployee("HR001", employee.RoleHR, "People"),
		"MGR01":  testEmployee("MGR01", employee.RoleManager, "Engineering"),
		"ADM01":  testEmployee("ADM01", employee.RoleAdmin, "Management"),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{})

	applyLeave(t, svc, "EMP001", "Engineering")
	applyLeave(t, svc, "EMP002", "People")

	// Admin sees everything
	all, err := svc.ListAll(authCtx("ADM01", employee.RoleAdmin, "Management"), nil, nil, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// HR is blind to their own department
	hrView, err := svc.ListAll(authCtx("HR001", employee.RoleHR, "People"), nil, nil, 0, 0)
	require.NoError(t, err)
	require.Len(t, hrView, 1)
	assert.Equal(t, "EMP001", hrView[0].EmployeeID)

	// Managers list across the organization
	mgrView, err := svc.ListAll(authCtx("MGR01", employee.RoleManager, "Engineering"), nil, nil, 0, 0)
	require.NoError(t, err)
	assert.Len(t, mgrView, 2)

	// Plain employees are denied
	_, err = svc.ListAll(authCtx("EMP001", employee.RoleEmployee, "Engineering"), nil, nil, 0, 0)
	assert.ErrorIs(t, err, leave.ErrApprovalRoleRequired)
}

func TestBalance(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee, "Engineering"),
		"EMP002": testEmployee("EMP002", employee.RoleEmployee, "Engineering"),
		"HR001":  testEmployee("HR001", employee.RoleHR, "People"),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{})

	b, err := svc.Balance(authCtx("EMP001", employee.RoleEmployee, "Engineering"), "")
	require.NoError(t, err)
	assert.Equal(t, 12.0, b.Casual)
	assert.Equal(t, 10.0, b.Sick)
	assert.Equal(t, 20.0, b.Annual)

	// Approvers may read anyone's balance, employees only their own
	_, err = svc.Balance(authCtx("HR001", employee.RoleHR, "People"), "EMP001")
	require.NoError(t, err)

	_, err = svc.Balance(authCtx("EMP002", employee.RoleEmployee, "Engineering"), "EMP001")
	assert.ErrorIs(t, err, employee.ErrAccessDenied)
}

func TestApplyWarnsOnHolidayOverlap(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee, "Engineering"),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{})
	svc.holidayRepo = &fakeHolidayRepo{holidays: []*holiday.Holiday{
		{ID: "h1", Name: "Republic Day", Date: time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC)},
	}}

	resp, err := svc.Apply(authCtx("EMP001", employee.RoleEmployee, "Engineering"), &leave.ApplyRequest{
		LeaveType: leave.TypeCasual,
		StartDate: "2026-04-01",
		EndDate:   "2026-04-03",
		Reason:    "family function",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Warning)
	assert.Contains(t, *resp.Warning, "Republic Day")

	// A holiday strictly inside the range does not warn
	resp, err = svc.Apply(authCtx("EMP001", employee.RoleEmployee, "Engineering"), &leave.ApplyRequest{
		LeaveType: leave.TypeCasual,
		StartDate: "2026-04-02",
		EndDate:   "2026-04-04",
		Reason:    "family function",
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Warning)
}
