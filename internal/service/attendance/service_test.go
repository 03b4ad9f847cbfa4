package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenith-hr/workforce-backend-go/internal/config"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/employee"
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

type fakeAttendanceRepo struct {
	records []*attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(_ context.Context, a *attendance.Attendance) error {
	for _, existing := range f.records {
		if existing.EmployeeID == a.EmployeeID && existing.CheckOutTime == nil {
			return attendance.ErrActiveSession
		}
	}
	cp := *a
	f.records = append(f.records, &cp)
	return nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (*attendance.Attendance, error) {
	for _, r := range f.records {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetOpenSession(_ context.Context, employeeID string) (*attendance.Attendance, error) {
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.CheckOutTime == nil {
			cp := *r
			return &cp, nil
		}
	}
	return nil, attendance.ErrNoActiveSession
}

func (f *fakeAttendanceRepo) Update(_ context.Context, a *attendance.Attendance) error {
	for i, r := range f.records {
		if r.ID == a.ID {
			cp := *a
			f.records[i] = &cp
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) HasRecordForDate(_ context.Context, employeeID string, date time.Time) (bool, error) {
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) ([]*attendance.Attendance, error) {
	var out []*attendance.Attendance
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.Date.Equal(date) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.ListFilter) ([]*attendance.Attendance, error) {
	var out []*attendance.Attendance
	for _, r := range f.records {
		if r.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.StartDate != nil && r.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && r.Date.After(*filter.EndDate) {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListForDate(_ context.Context, date time.Time) ([]*attendance.Attendance, error) {
	var out []*attendance.Attendance
	for _, r := range f.records {
		if r.Date.Equal(date) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) CountDistinctDaysByStatus(_ context.Context, employeeID string, start, end time.Time, statuses []attendance.Status) (int, error) {
	days := make(map[string]struct{})
	for _, r := range f.records {
		if r.EmployeeID != employeeID || r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		for _, s := range statuses {
			if r.Status == s {
				days[r.Date.Format("2006-01-02")] = struct{}{}
			}
		}
	}
	return len(days), nil
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

type sentNotification struct {
	RecipientID string
	Type        notification.Type
}

type fakeNotifier struct {
	sent []sentNotification
}

func (f *fakeNotifier) Notify(recipientID string, typ notification.Type, _, _ string, _ *string) {
	f.sent = append(f.sent, sentNotification{RecipientID: recipientID, Type: typ})
}

func (f *fakeNotifier) List(context.Context, bool, int, int) ([]*notification.Response, error) {
	return nil, nil
}
func (f *fakeNotifier) MarkRead(context.Context, string) error       { return nil }
func (f *fakeNotifier) MarkAllRead(context.Context) (int64, error)   { return 0, nil }
func (f *fakeNotifier) UnreadCount(context.Context) (int, error)     { return 0, nil }
func (f *fakeNotifier) Shutdown()                                    {}

func defaultConfig() config.AttendanceConfig {
	return config.AttendanceConfig{
		LateThresholdMinutes:           15,
		EarlyDepartureThresholdMinutes: 30,
		DailyTargetHours:               8,
		ShortHoursWindowMinutes:        60,
	}
}

func testEmployee(id string, role employee.Role) employee.Employee {
	return employee.Employee{
		ID:             id,
		FirstName:      "Asha",
		LastName:       "Verma",
		Email:          id + "@corp.test",
		Department:     "Engineering",
		Designation:    "Engineer",
		Role:           role,
		IsActive:       true,
		ShiftStartTime: "09:00",
		ShiftEndTime:   "18:00",
	}
}

type noopMailer struct{}

func (noopMailer) SendLateArrival(string, string, string, int) error             { return nil }
func (noopMailer) SendShortHours(string, string, string, float64, float64) error { return nil }
func (noopMailer) SendLeaveApplication(string, string, string, string, string, string, float64) error {
	return nil
}
func (noopMailer) SendLeaveStatus(string, string, string, string, string, string, *string) error {
	return nil
}
func (noopMailer) SendPayslipGenerated(string, string, string, int) error { return nil }

func newTestService(repo *fakeAttendanceRepo, employees *fakeEmployeeRepo, notifier *fakeNotifier, at time.Time) *service {
	return &service{
		repo:         repo,
		employeeRepo: employees,
		notifier:     notifier,
		mailer:       noopMailer{},
		cfg:          defaultConfig(),
		now:          func() time.Time { return at },
	}
}

func TestCheckInOnTime(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee),
	}}
	notifier := &fakeNotifier{}
	at := time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC)
	svc := newTestService(repo, employees, notifier, at)

	resp, err := svc.CheckIn(authCtx("EMP001", employee.RoleEmployee, "Engineering"), &attendance.CaptureRequest{})
	require.NoError(t, err)

	assert.False(t, resp.IsLate)
	assert.Equal(t, 0, resp.LateByMins)
	assert.Equal(t, attendance.StatusPresent, resp.Attendance.Status)
	assert.Empty(t, notifier.sent)
}

func TestCheckInLate(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee),
	}}
	notifier := &fakeNotifier{}
	at := time.Date(2026, 3, 10, 9, 40, 0, 0, time.UTC)
	svc := newTestService(repo, employees, notifier, at)

	resp, err := svc.CheckIn(authCtx("EMP001", employee.RoleEmployee, "Engineering"), &attendance.CaptureRequest{})
	require.NoError(t, err)

	assert.True(t, resp.IsLate)
	assert.Equal(t, 40, resp.LateByMins)
	assert.Equal(t, attendance.StatusLate, resp.Attendance.Status)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, notification.TypeLateArrival, notifier.sent[0].Type)
	assert.Equal(t, "EMP001", notifier.sent[0].RecipientID)
}

func TestCheckInSecondSessionNeverLate(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee),
	}}
	notifier := &fakeNotifier{}
	ctx := authCtx("EMP001", employee.RoleEmployee, "Engineering")

	morning := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, employees, notifier, morning)
	_, err := svc.CheckIn(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	noon := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return noon }
	_, err = svc.CheckOut(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	// Back from lunch well past the grace period, still not late
	afternoon := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return afternoon }
	resp, err := svc.CheckIn(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)
	assert.False(t, resp.IsLate)
	assert.Equal(t, attendance.StatusPresent, resp.Attendance.Status)
}

func TestCheckInRejectsSecondOpenSession(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{}, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	ctx := authCtx("EMP001", employee.RoleEmployee, "Engineering")

	_, err := svc.CheckIn(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, &attendance.CaptureRequest{})
	assert.ErrorIs(t, err, attendance.ErrActiveSession)
}

func TestCheckOutComputesHoursAndShortDay(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee),
	}}
	notifier := &fakeNotifier{}
	ctx := authCtx("EMP001", employee.RoleEmployee, "Engineering")

	svc := newTestService(repo, employees, notifier, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	// Checkout at 17:30, within the hour before shift end, 5.5h total
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 17, 30, 0, 0, time.UTC) }
	resp, err := svc.CheckOut(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	assert.InDelta(t, 5.5, resp.SessionHours, 0.001)
	assert.InDelta(t, 5.5, resp.TotalHours, 0.001)
	assert.True(t, resp.ShortHours)
	assert.True(t, resp.Attendance.IsEarlyDeparture)

	found := false
	for _, n := range notifier.sent {
		if n.Type == notification.TypeShortHours {
			found = true
		}
	}
	assert.True(t, found, "short hours notification expected")
}

func TestCheckOutEarlyNoShortHoursAlert(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee),
	}}
	notifier := &fakeNotifier{}
	ctx := authCtx("EMP001", employee.RoleEmployee, "Engineering")

	svc := newTestService(repo, employees, notifier, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	// A midday break checkout is hours before shift end: no alert even
	// though the running total is under target.
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	resp, err := svc.CheckOut(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	assert.False(t, resp.ShortHours)
	for _, n := range notifier.sent {
		assert.NotEqual(t, notification.TypeShortHours, n.Type)
	}
}

func TestCheckOutSumsMultipleSessions(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee),
	}}
	ctx := authCtx("EMP001", employee.RoleEmployee, "Engineering")

	svc := newTestService(repo, employees, &fakeNotifier{}, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC) }
	_, err = svc.CheckOut(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC) }
	_, err = svc.CheckIn(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC) }
	resp, err := svc.CheckOut(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	assert.InDelta(t, 4.0, resp.SessionHours, 0.001)
	assert.InDelta(t, 8.0, resp.TotalHours, 0.001)
	assert.False(t, resp.ShortHours)
	assert.False(t, resp.Attendance.IsEarlyDeparture)
}

func TestCheckOutWithoutSession(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{}, time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC))

	_, err := svc.CheckOut(authCtx("EMP001", employee.RoleEmployee, "Engineering"), &attendance.CaptureRequest{})
	assert.ErrorIs(t, err, attendance.ErrNoActiveSession)
}

func TestTodayReportsOwnSessions(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee),
	}}
	ctx := authCtx("EMP001", employee.RoleEmployee, "Engineering")

	svc := newTestService(repo, employees, &fakeNotifier{}, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	status, err := svc.Today(ctx)
	require.NoError(t, err)
	assert.False(t, status.Marked)
	assert.Nil(t, status.Attendance)

	_, err = svc.CheckIn(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	status, err = svc.Today(ctx)
	require.NoError(t, err)
	assert.True(t, status.Marked)
	assert.True(t, status.CheckedIn)
	assert.False(t, status.CheckedOut)

	svc.now = func() time.Time { return time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC) }
	_, err = svc.CheckOut(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	status, err = svc.Today(ctx)
	require.NoError(t, err)
	assert.True(t, status.Marked)
	assert.True(t, status.CheckedOut)
}

func TestOverviewRequiresApproverRole(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{}, time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))

	_, err := svc.Overview(authCtx("EMP001", employee.RoleEmployee, "Engineering"))
	assert.ErrorIs(t, err, employee.ErrAccessDenied)
}

func TestOverviewCounts(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee),
		"EMP002": testEmployee("EMP002", employee.RoleEmployee),
		"EMP003": testEmployee("EMP003", employee.RoleEmployee),
		"HR001":  testEmployee("HR001", employee.RoleHR),
	}}
	notifier := &fakeNotifier{}

	svc := newTestService(repo, employees, notifier, time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC))
	_, err := svc.CheckIn(authCtx("EMP001", employee.RoleEmployee, "Engineering"), &attendance.CaptureRequest{})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 10, 9, 45, 0, 0, time.UTC) }
	_, err = svc.CheckIn(authCtx("EMP002", employee.RoleEmployee, "Engineering"), &attendance.CaptureRequest{})
	require.NoError(t, err)

	overview, err := svc.Overview(authCtx("HR001", employee.RoleHR, "People"))
	require.NoError(t, err)

	assert.Equal(t, 4, overview.TotalActive)
	assert.Equal(t, 2, overview.PresentCount)
	assert.Equal(t, 1, overview.LateCount)
	assert.Equal(t, 2, overview.AbsentCount)
	assert.Len(t, overview.Records, 2)
}

func TestStatsSelfAndAccess(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee),
		"EMP002": testEmployee("EMP002", employee.RoleEmployee),
	}}
	ctx := authCtx("EMP001", employee.RoleEmployee, "Engineering")

	svc := newTestService(repo, employees, &fakeNotifier{}, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC) }
	_, err = svc.CheckOut(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	stats, err := svc.Stats(ctx, "", start, end)
	require.NoError(t, err)
	assert.Equal(t, "EMP001", stats.EmployeeID)
	assert.Equal(t, 1, stats.DaysPresent)
	assert.Equal(t, 1, stats.SessionsCount)
	assert.InDelta(t, 9.0, stats.TotalHours, 0.001)

	// A plain employee cannot read another employee's stats
	_, err = svc.Stats(ctx, "EMP002", start, end)
	assert.ErrorIs(t, err, employee.ErrAccessDenied)
}

func TestCheckOutKeepsSessionStatus(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee),
	}}
	ctx := authCtx("EMP001", employee.RoleEmployee, "Engineering")

	// Morning session 09:00-11:00, afternoon session 12:00-18:00: a full
	// 8-hour day split in two. Neither checkout may rewrite the status the
	// check-in assigned.
	svc := newTestService(repo, employees, &fakeNotifier{}, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC) }
	_, err = svc.CheckOut(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, repo.records[0].Status)

	svc.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	_, err = svc.CheckIn(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC) }
	resp, err := svc.CheckOut(ctx, &attendance.CaptureRequest{})
	require.NoError(t, err)

	assert.InDelta(t, 8.0, resp.TotalHours, 0.001)
	for _, r := range repo.records {
		assert.Equal(t, attendance.StatusPresent, r.Status)
	}
}

func TestStatsBucketsEveryStatus(t *testing.T) {
	hours := func(v float64) *float64 { return &v }
	day := func(d int, status attendance.Status, total *float64) *attendance.Attendance {
		return &attendance.Attendance{
			ID:         "a" + string(rune('0'+d)),
			EmployeeID: "EMP001",
			Date:       time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC),
			Status:     status,
			TotalHours: total,
		}
	}
	repo := &fakeAttendanceRepo{records: []*attendance.Attendance{
		day(2, attendance.StatusPresent, hours(8)),
		day(3, attendance.StatusLate, hours(7.5)),
		day(4, attendance.StatusHalfDay, hours(4)),
		day(5, attendance.StatusOnLeave, nil),
		day(6, attendance.StatusWorkFromHome, hours(8)),
		day(9, attendance.StatusAbsent, nil),
	}}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": testEmployee("EMP001", employee.RoleEmployee),
	}}
	svc := newTestService(repo, employees, &fakeNotifier{}, time.Date(2026, 3, 31, 9, 0, 0, 0, time.UTC))

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	stats, err := svc.Stats(authCtx("EMP001", employee.RoleEmployee, "Engineering"), "", start, end)
	require.NoError(t, err)

	// Present counts PRESENT and LATE days only
	assert.Equal(t, 2, stats.DaysPresent)
	assert.Equal(t, 1, stats.DaysLate)
	assert.Equal(t, 1, stats.DaysHalfDay)
	assert.Equal(t, 1, stats.DaysOnLeave)
	assert.Equal(t, 1, stats.DaysWFH)
	assert.Equal(t, 1, stats.DaysAbsent)

	// 2 of 6 recorded days present
	assert.InDelta(t, 33.33, stats.Percentage, 0.001)
	assert.InDelta(t, 27.5, stats.TotalHours, 0.001)
}
