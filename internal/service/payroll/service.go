package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/employee"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/holiday"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/notification"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/payroll"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/email"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/identity"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/validator"
)

var thirty = decimal.NewFromInt(30)

type service struct {
	repo           payroll.Repository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.Repository
	holidayRepo    holiday.Repository
	notifier       notification.Service
	mailer         email.Service
	now            func() time.Time
}

func NewService(
	repo payroll.Repository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.Repository,
	holidayRepo holiday.Repository,
	notifier notification.Service,
	mailer email.Service,
) payroll.Service {
	return &service{
		repo:           repo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		notifier:       notifier,
		mailer:         mailer,
		now:            time.Now,
	}
}

// LossOfPayDays implements payroll.Service. A full absent day costs one day
// of pay, a half day half of one.
func (s *service) LossOfPayDays(ctx context.Context, employeeID, month string, year int) (*payroll.LossOfPayResponse, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if employeeID == "" {
		employeeID = caller.EmployeeID
	}
	if employeeID != caller.EmployeeID && !caller.Role.IsPayrollOperator() {
		return nil, employee.ErrAccessDenied
	}

	summary, err := s.attendanceSummary(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	return &payroll.LossOfPayResponse{
		EmployeeID:   employeeID,
		Month:        month,
		Year:         year,
		DaysAbsent:   summary.DaysAbsent,
		HalfDays:     summary.HalfDays,
		LossOfPayDay: summary.LossOfPayDay,
	}, nil
}

func (s *service) attendanceSummary(ctx context.Context, employeeID, month string, year int) (*payroll.AttendanceSummary, error) {
	if !validator.IsValidYear(year) {
		return nil, payroll.ErrInvalidYear
	}
	start, end, ok := payroll.PeriodBounds(month, year)
	if !ok {
		return nil, payroll.ErrInvalidMonth
	}

	holidays, err := s.holidayRepo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	holidayDates := make(map[string]struct{})
	for _, h := range holidays {
		if !h.IsOptional {
			holidayDates[h.Date.Format("2006-01-02")] = struct{}{}
		}
	}

	workingDays := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if _, isHoliday := holidayDates[d.Format("2006-01-02")]; isHoliday {
			continue
		}
		workingDays++
	}

	present, err := s.attendanceRepo.CountDistinctDaysByStatus(ctx, employeeID, start, end,
		[]attendance.Status{attendance.StatusPresent, attendance.StatusLate, attendance.StatusWorkFromHome})
	if err != nil {
		return nil, err
	}
	halfDays, err := s.attendanceRepo.CountDistinctDaysByStatus(ctx, employeeID, start, end,
		[]attendance.Status{attendance.StatusHalfDay})
	if err != nil {
		return nil, err
	}
	onLeave, err := s.attendanceRepo.CountDistinctDaysByStatus(ctx, employeeID, start, end,
		[]attendance.Status{attendance.StatusOnLeave})
	if err != nil {
		return nil, err
	}

	// Only recorded absences cost pay. A day with no attendance record at
	// all is not billed, so an employee with an empty month owes nothing.
	absent, err := s.attendanceRepo.CountDistinctDaysByStatus(ctx, employeeID, start, end,
		[]attendance.Status{attendance.StatusAbsent})
	if err != nil {
		return nil, err
	}

	return &payroll.AttendanceSummary{
		WorkingDays:  workingDays,
		DaysPresent:  present,
		DaysAbsent:   absent,
		HalfDays:     halfDays,
		DaysOnLeave:  onLeave,
		LossOfPayDay: float64(absent) + 0.5*float64(halfDays),
	}, nil
}

// Generate implements payroll.Service. The payslip is a one-time frozen
// snapshot: if a payslip for the period already exists, it is returned
// unchanged regardless of any salary or attendance edits since.
func (s *service) Generate(ctx context.Context, req *payroll.GenerateRequest) (*payroll.Response, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !caller.Role.IsPayrollOperator() {
		return nil, payroll.ErrOperatorRequired
	}

	var manualLOP *float64
	if req.AutoCalculateLOP != nil && !*req.AutoCalculateLOP {
		manualLOP = &req.LossOfPayDays
	}

	slip, created, err := s.generateFor(ctx, req.EmployeeID, req.Month, req.Year, req.WorkingDays, manualLOP, caller.EmployeeID)
	if err != nil {
		return nil, err
	}

	if created {
		s.announce(ctx, slip)
	}

	return payroll.ToResponse(slip), nil
}

func (s *service) generateFor(ctx context.Context, employeeID, month string, year, workingDays int, manualLOP *float64, generatedBy string) (*payroll.Payslip, bool, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, false, err
	}

	summary, err := s.attendanceSummary(ctx, employeeID, month, year)
	if err != nil {
		return nil, false, err
	}
	if workingDays > 0 {
		summary.WorkingDays = workingDays
	}
	if manualLOP != nil {
		summary.LossOfPayDay = *manualLOP
	}

	lopDays := decimal.NewFromFloat(summary.LossOfPayDay)
	lossOfPay := emp.Salary.Basic.Div(thirty).Mul(lopDays).Round(2)

	gross := emp.Salary.TotalEarnings()
	totalDeductions := emp.Salary.PFEmployee.Add(emp.Salary.ProfessionalTax).Add(lossOfPay)
	netPay := gross.Sub(totalDeductions)

	slip := &payroll.Payslip{
		ID:           uuid.New().String(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		Department:   emp.Department,
		Designation:  emp.Designation,
		Month:        month,
		Year:         year,
		Earnings: payroll.Earnings{
			Basic:                 emp.Salary.Basic,
			HRA:                   emp.Salary.HRA,
			Conveyance:            emp.Salary.Conveyance,
			SpecialAllowance:      emp.Salary.SpecialAllowance,
			ProfessionalAllowance: emp.Salary.ProfessionalAllowance,
			UniformAllowance:      emp.Salary.UniformAllowance,
			ShiftAllowance:        emp.Salary.ShiftAllowance,
			MedicalAllowance:      emp.Salary.MedicalAllowance,
			GrossEarnings:         gross,
		},
		Deductions: payroll.Deductions{
			PFEmployee:      emp.Salary.PFEmployee,
			ProfessionalTax: emp.Salary.ProfessionalTax,
			LossOfPay:       lossOfPay,
			TotalDeductions: totalDeductions,
		},
		Attendance:  *summary,
		NetPay:      netPay,
		GeneratedBy: generatedBy,
		GeneratedAt: s.now(),
	}

	if emp.Bank.AccountNumber != "" || emp.Bank.BankName != "" {
		slip.Bank = &payroll.BankSnapshot{
			AccountNumber: emp.Bank.AccountNumber,
			BankName:      emp.Bank.BankName,
			IFSCCode:      emp.Bank.IFSCCode,
			PANNumber:     emp.Bank.PANNumber,
			UANNumber:     emp.Bank.UANNumber,
			PFNumber:      emp.Bank.PFNumber,
			PaymentMode:   emp.Bank.PaymentMode,
		}
	}

	created, existing, err := s.repo.CreateIfAbsent(ctx, slip)
	if err != nil {
		return nil, false, err
	}
	if !created {
		return existing, false, nil
	}

	return slip, true, nil
}

func (s *service) announce(ctx context.Context, slip *payroll.Payslip) {
	s.notifier.Notify(slip.EmployeeID, notification.TypePayslipGenerated,
		"Payslip Generated",
		fmt.Sprintf("Your payslip for %s %d is available.", slip.Month, slip.Year),
		&slip.ID,
	)

	emp, err := s.employeeRepo.GetByID(ctx, slip.EmployeeID)
	if err != nil {
		return
	}
	go func() {
		if err := s.mailer.SendPayslipGenerated(emp.Email, emp.FullName(), slip.Month, slip.Year); err != nil {
			slog.Error("failed to send payslip email", "to", emp.Email, "error", err)
		}
	}()
}

// BulkGenerate implements payroll.Service. One failing employee never
// aborts the run; failures are collected and reported.
func (s *service) BulkGenerate(ctx context.Context, req *payroll.BulkGenerateRequest) (*payroll.BulkGenerateResult, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !caller.Role.IsPayrollOperator() {
		return nil, payroll.ErrOperatorRequired
	}
	if !validator.IsValidYear(req.Year) {
		return nil, payroll.ErrInvalidYear
	}
	if _, ok := payroll.MonthNumber(req.Month); !ok {
		return nil, payroll.ErrInvalidMonth
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := &payroll.BulkGenerateResult{
		Month:  req.Month,
		Year:   req.Year,
		Failed: []string{},
	}

	for _, emp := range employees {
		slip, created, err := s.generateFor(ctx, emp.ID, req.Month, req.Year, req.WorkingDays, nil, caller.EmployeeID)
		if err != nil {
			slog.Error("bulk payslip generation failed for employee",
				"employee_id", emp.ID, "month", req.Month, "year", req.Year, "error", err)
			result.Failed = append(result.Failed, emp.ID)
			continue
		}
		if !created {
			result.Skipped++
			continue
		}
		result.Generated++
		s.announce(ctx, slip)
	}

	return result, nil
}

// UpdateSalary implements payroll.Service. Bank details lock on first
// write; only an admin can overwrite them afterwards.
func (s *service) UpdateSalary(ctx context.Context, employeeID string, req *payroll.UpdateSalaryRequest) error {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}
	if !caller.Role.IsPayrollOperator() {
		return payroll.ErrOperatorRequired
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}

	var bank *employee.BankDetails
	if req.Bank != nil {
		if emp.BankDetailsLocked && caller.Role != employee.RoleAdmin {
			return employee.ErrBankDetailsLocked
		}
		details := req.Bank.ToDetails()
		bank = &details
	}

	return s.employeeRepo.UpdateCompensation(ctx, employeeID, req.Salary.ToStructure(), bank)
}

// MyPayslips implements payroll.Service.
func (s *service) MyPayslips(ctx context.Context, year *int) ([]*payroll.Response, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListByEmployee(ctx, caller.EmployeeID, year)
	if err != nil {
		return nil, err
	}

	return payroll.ToResponseList(items), nil
}

// ListAll implements payroll.Service.
func (s *service) ListAll(ctx context.Context, month *string, year *int, department *string, limit, offset int) ([]*payroll.Response, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !caller.Role.IsPayrollOperator() {
		return nil, payroll.ErrOperatorRequired
	}

	items, err := s.repo.ListAll(ctx, month, year, department, limit, offset)
	if err != nil {
		return nil, err
	}

	return payroll.ToResponseList(items), nil
}

// Delete implements payroll.Service. Admin only.
func (s *service) Delete(ctx context.Context, payslipID string) error {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}
	if caller.Role != employee.RoleAdmin {
		return payroll.ErrOperatorRequired
	}

	deleted, err := s.repo.Delete(ctx, payslipID)
	if err != nil {
		return err
	}
	if !deleted {
		return payroll.ErrPayslipNotFound
	}

	return nil
}
