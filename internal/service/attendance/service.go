package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/zenith-hr/workforce-backend-go/internal/config"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/employee"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/notification"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/email"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/identity"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/validator"
)

type service struct {
	repo         attendance.Repository
	employeeRepo employee.EmployeeRepository
	notifier     notification.Service
	mailer       email.Service
	cfg          config.AttendanceConfig
	now          func() time.Time
}

func NewService(
	repo attendance.Repository,
	employeeRepo employee.EmployeeRepository,
	notifier notification.Service,
	mailer email.Service,
	cfg config.AttendanceConfig,
) attendance.Service {
	return &service{
		repo:         repo,
		employeeRepo: employeeRepo,
		notifier:     notifier,
		mailer:       mailer,
		cfg:          cfg,
		now:          time.Now,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CheckIn implements attendance.Service. Lateness is judged only on the
// first session of the day; re-entries after breaks are never late.
func (s *service) CheckIn(ctx context.Context, req *attendance.CaptureRequest) (*attendance.CheckInResponse, error) {
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

	captureType := req.CaptureType
	if captureType == "" {
		captureType = attendance.CaptureManual
	}

	now := s.now()
	today := dateOnly(now)

	firstOfDay, err := s.repo.HasRecordForDate(ctx, emp.ID, today)
	if err != nil {
		return nil, err
	}
	firstOfDay = !firstOfDay

	isLate := false
	lateBy := 0
	status := attendance.StatusPresent
	if firstOfDay {
		shiftStart, ok := validator.ParseClock(emp.ShiftStartTime, now)
		if !ok {
			return nil, employee.ErrInvalidShiftWindow
		}
		grace := shiftStart.Add(time.Duration(s.cfg.LateThresholdMinutes) * time.Minute)
		if now.After(grace) {
			isLate = true
			lateBy = int(now.Sub(shiftStart).Minutes())
			status = attendance.StatusLate
		}
	}

	record := &attendance.Attendance{
		ID:              uuid.New().String(),
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName(),
		Department:      emp.Department,
		Date:            today,
		DayOfWeek:       now.Weekday().String(),
		CheckInTime:     &now,
		CheckInType:     &captureType,
		CheckInLocation: req.Location,
		CheckInDevice:   req.DeviceID,
		Status:          status,
		IsLate:          isLate,
		Remarks:         req.Remarks,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	message := "Checked in successfully"
	if isLate {
		message = fmt.Sprintf("Checked in %d minutes after shift start", lateBy)
		s.notifier.Notify(emp.ID, notification.TypeLateArrival,
			"Late Arrival",
			fmt.Sprintf("Your check-in on %s was %d minutes after shift start.", today.Format("2006-01-02"), lateBy),
			&record.ID,
		)
		go func() {
			if err := s.mailer.SendLateArrival(emp.Email, emp.FullName(), today.Format("2006-01-02"), lateBy); err != nil {
				slog.Error("failed to send late arrival email", "to", emp.Email, "error", err)
			}
		}()
	}

	return &attendance.CheckInResponse{
		Attendance: attendance.ToResponse(record),
		IsLate:     isLate,
		LateByMins: lateBy,
		Message:    message,
	}, nil
}

// CheckOut implements attendance.Service. It closes the caller's open
// session, sums the day's hours across all finished sessions and raises a
// short-hours alert when the day ends under target near or past shift end.
func (s *service) CheckOut(ctx context.Context, req *attendance.CaptureRequest) (*attendance.CheckOutResponse, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.GetOpenSession(ctx, caller.EmployeeID)
	if err != nil {
		return nil, err
	}
	if session.CheckInTime == nil {
		return nil, attendance.ErrNoActiveSession
	}

	emp, err := s.employeeRepo.GetByID(ctx, caller.EmployeeID)
	if err != nil {
		return nil, err
	}

	captureType := req.CaptureType
	if captureType == "" {
		captureType = attendance.CaptureManual
	}

	now := s.now()
	sessionHours := round2(now.Sub(*session.CheckInTime).Hours())
	if sessionHours < 0 {
		sessionHours = 0
	}

	// Sum the other finished sessions of the same day
	dayTotal := sessionHours
	sameDay, err := s.repo.ListByEmployeeAndDate(ctx, caller.EmployeeID, session.Date)
	if err != nil {
		return nil, err
	}
	for _, a := range sameDay {
		if a.ID != session.ID && a.TotalHours != nil {
			dayTotal += *a.TotalHours
		}
	}
	dayTotal = round2(dayTotal)

	shiftEnd, ok := validator.ParseClock(emp.ShiftEndTime, *session.CheckInTime)
	if !ok {
		return nil, employee.ErrInvalidShiftWindow
	}

	earlyCutoff := shiftEnd.Add(-time.Duration(s.cfg.EarlyDepartureThresholdMinutes) * time.Minute)
	isEarly := now.Before(earlyCutoff)

	session.CheckOutTime = &now
	session.CheckOutType = &captureType
	session.CheckOutLocation = req.Location
	session.CheckOutDevice = req.DeviceID
	session.TotalHours = &sessionHours
	session.IsEarlyDeparture = isEarly
	if req.Remarks != nil {
		session.Remarks = req.Remarks
	}

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, err
	}

	// A short-hours alert fires only when the day is effectively over: the
	// checkout happened near or past shift end and the total is under target.
	shortHours := false
	alertWindow := shiftEnd.Add(-time.Duration(s.cfg.ShortHoursWindowMinutes) * time.Minute)
	if dayTotal < s.cfg.DailyTargetHours && !now.Before(alertWindow) {
		shortHours = true
		s.notifier.Notify(emp.ID, notification.TypeShortHours,
			"Short Working Hours",
			fmt.Sprintf("You worked %.2f hours on %s, below the %.1f hour target.",
				dayTotal, session.Date.Format("2006-01-02"), s.cfg.DailyTargetHours),
			&session.ID,
		)
		go func(dayTotal float64, date string) {
			if err := s.mailer.SendShortHours(emp.Email, emp.FullName(), date, dayTotal, s.cfg.DailyTargetHours); err != nil {
				slog.Error("failed to send short hours email", "to", emp.Email, "error", err)
			}
		}(dayTotal, session.Date.Format("2006-01-02"))
	}

	return &attendance.CheckOutResponse{
		Attendance:   attendance.ToResponse(session),
		SessionHours: sessionHours,
		TotalHours:   dayTotal,
		ShortHours:   shortHours,
		Message:      "Checked out successfully",
	}, nil
}

// MyAttendance implements attendance.Service.
func (s *service) MyAttendance(ctx context.Context, start, end *time.Time, limit, offset int) ([]*attendance.Response, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx, attendance.ListFilter{
		EmployeeID: caller.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, err
	}

	return attendance.ToResponseList(items), nil
}

// Today implements attendance.Service. The active session wins; with none
// open, the most recent session of the calendar day is reported.
func (s *service) Today(ctx context.Context) (*attendance.TodayStatus, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.GetOpenSession(ctx, caller.EmployeeID)
	if err != nil && !errors.Is(err, attendance.ErrNoActiveSession) {
		return nil, err
	}

	if session == nil {
		sameDay, err := s.repo.ListByEmployeeAndDate(ctx, caller.EmployeeID, dateOnly(s.now()))
		if err != nil {
			return nil, err
		}
		for _, a := range sameDay {
			if session == nil || (a.CheckInTime != nil && session.CheckInTime != nil && a.CheckInTime.After(*session.CheckInTime)) {
				session = a
			}
		}
	}

	if session == nil {
		return &attendance.TodayStatus{}, nil
	}

	return &attendance.TodayStatus{
		Marked:     true,
		CheckedIn:  session.CheckInTime != nil,
		CheckedOut: session.CheckOutTime != nil,
		Attendance: attendance.ToResponse(session),
	}, nil
}

// Overview implements attendance.Service. Restricted to approver roles.
func (s *service) Overview(ctx context.Context) (*attendance.TodayOverview, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !caller.Role.IsApprover() {
		return nil, employee.ErrAccessDenied
	}

	today := dateOnly(s.now())

	records, err := s.repo.ListForDate(ctx, today)
	if err != nil {
		return nil, err
	}

	active, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]attendance.Status)
	for _, r := range records {
		// The worst status of the day wins for counting purposes
		current, ok := seen[r.EmployeeID]
		if !ok || current == attendance.StatusPresent {
			seen[r.EmployeeID] = r.Status
		}
	}

	overview := &attendance.TodayOverview{
		Date:        today.Format("2006-01-02"),
		TotalActive: len(active),
		Records:     attendance.ToResponseList(records),
	}
	for _, status := range seen {
		switch status {
		case attendance.StatusLate:
			overview.LateCount++
			overview.PresentCount++
		case attendance.StatusOnLeave:
			overview.OnLeaveCount++
		default:
			overview.PresentCount++
		}
	}
	overview.AbsentCount = overview.TotalActive - overview.PresentCount - overview.OnLeaveCount
	if overview.AbsentCount < 0 {
		overview.AbsentCount = 0
	}

	return overview, nil
}

// Stats implements attendance.Service. Employees may query their own stats,
// approver roles anyone's.
func (s *service) Stats(ctx context.Context, employeeID string, start, end time.Time) (*attendance.Stats, error) {
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

	items, err := s.repo.List(ctx, attendance.ListFilter{
		EmployeeID: employeeID,
		StartDate:  &start,
		EndDate:    &end,
		Limit:      10000,
	})
	if err != nil {
		return nil, err
	}

	stats := &attendance.Stats{
		EmployeeID: employeeID,
		StartDate:  start.Format("2006-01-02"),
		EndDate:    end.Format("2006-01-02"),
	}

	days := make(map[string]attendance.Status)
	for _, a := range items {
		stats.SessionsCount++
		if a.TotalHours != nil {
			stats.TotalHours += *a.TotalHours
		}
		key := a.Date.Format("2006-01-02")
		current, ok := days[key]
		if !ok || current == attendance.StatusPresent {
			days[key] = a.Status
		}
	}

	for _, status := range days {
		switch status {
		case attendance.StatusPresent:
			stats.DaysPresent++
		case attendance.StatusLate:
			stats.DaysLate++
			stats.DaysPresent++
		case attendance.StatusHalfDay:
			stats.DaysHalfDay++
		case attendance.StatusOnLeave:
			stats.DaysOnLeave++
		case attendance.StatusWorkFromHome:
			stats.DaysWFH++
		case attendance.StatusAbsent:
			stats.DaysAbsent++
		}
	}

	stats.TotalHours = round2(stats.TotalHours)
	if totalDays := len(days); totalDays > 0 {
		stats.Percentage = round2(float64(stats.DaysPresent) / float64(totalDays) * 100)
		stats.AverageHours = round2(stats.TotalHours / float64(totalDays))
	}

	return stats, nil
}
