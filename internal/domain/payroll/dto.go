package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/employee"
)

// GenerateRequest drives a single payslip generation. AutoCalculateLOP
// defaults to true when omitted; set it to false to bill the supplied
// LossOfPayDays instead of the attendance-derived figure. A zero
// WorkingDays falls back to the calendar working days of the period.
type GenerateRequest struct {
	EmployeeID       string  `json:"employee_id"`
	Month            string  `json:"month"`
	Year             int     `json:"year"`
	WorkingDays      int     `json:"working_days,omitempty"`
	LossOfPayDays    float64 `json:"loss_of_pay_days,omitempty"`
	AutoCalculateLOP *bool   `json:"auto_calculate_lop,omitempty"`
}

type BulkGenerateRequest struct {
	Month       string `json:"month"`
	Year        int    `json:"year"`
	WorkingDays int    `json:"working_days,omitempty"`
}

type BulkGenerateResult struct {
	Month     string   `json:"month"`
	Year      int      `json:"year"`
	Generated int      `json:"generated"`
	Skipped   int      `json:"skipped"`
	Failed    []string `json:"failed_employee_ids"`
}

type SalaryInput struct {
	Basic                 decimal.Decimal `json:"basic"`
	HRA                   decimal.Decimal `json:"hra"`
	Conveyance            decimal.Decimal `json:"conveyance"`
	SpecialAllowance      decimal.Decimal `json:"special_allowance"`
	ProfessionalAllowance decimal.Decimal `json:"professional_allowance"`
	UniformAllowance      decimal.Decimal `json:"uniform_allowance"`
	ShiftAllowance        decimal.Decimal `json:"shift_allowance"`
	MedicalAllowance      decimal.Decimal `json:"medical_allowance"`
	PFEmployer            decimal.Decimal `json:"pf_employer"`
	PFEmployee            decimal.Decimal `json:"pf_employee"`
	ProfessionalTax       decimal.Decimal `json:"professional_tax"`
}

type BankInput struct {
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	IFSCCode      string `json:"ifsc_code"`
	PANNumber     string `json:"pan_number"`
	UANNumber     string `json:"uan_number"`
	PFNumber      string `json:"pf_number"`
	PaymentMode   string `json:"payment_mode"`
}

type UpdateSalaryRequest struct {
	Salary SalaryInput `json:"salary"`
	Bank   *BankInput  `json:"bank_details,omitempty"`
}

func (s SalaryInput) ToStructure() employee.SalaryStructure {
	return employee.SalaryStructure{
		Basic:                 s.Basic,
		HRA:                   s.HRA,
		Conveyance:            s.Conveyance,
		SpecialAllowance:      s.SpecialAllowance,
		ProfessionalAllowance: s.ProfessionalAllowance,
		UniformAllowance:      s.UniformAllowance,
		ShiftAllowance:        s.ShiftAllowance,
		MedicalAllowance:      s.MedicalAllowance,
		PFEmployer:            s.PFEmployer,
		PFEmployee:            s.PFEmployee,
		ProfessionalTax:       s.ProfessionalTax,
	}
}

func (b BankInput) ToDetails() employee.BankDetails {
	return employee.BankDetails{
		AccountNumber: b.AccountNumber,
		BankName:      b.BankName,
		IFSCCode:      b.IFSCCode,
		PANNumber:     b.PANNumber,
		UANNumber:     b.UANNumber,
		PFNumber:      b.PFNumber,
		PaymentMode:   b.PaymentMode,
	}
}

type LossOfPayResponse struct {
	EmployeeID   string  `json:"employee_id"`
	Month        string  `json:"month"`
	Year         int     `json:"year"`
	DaysAbsent   int     `json:"days_absent"`
	HalfDays     int     `json:"half_days"`
	LossOfPayDay float64 `json:"loss_of_pay_days"`
}

type Response struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	Designation  string `json:"designation"`

	Month string `json:"month"`
	Year  int    `json:"year"`

	Earnings   Earnings          `json:"earnings"`
	Deductions Deductions        `json:"deductions"`
	Attendance AttendanceSummary `json:"attendance_summary"`
	Bank       *BankSnapshot     `json:"bank_details,omitempty"`

	NetPay decimal.Decimal `json:"net_pay"`

	GeneratedBy string    `json:"generated_by"`
	GeneratedAt time.Time `json:"generated_at"`
}

func ToResponse(p *Payslip) *Response {
	return &Response{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		Department:   p.Department,
		Designation:  p.Designation,
		Month:        p.Month,
		Year:         p.Year,
		Earnings:     p.Earnings,
		Deductions:   p.Deductions,
		Attendance:   p.Attendance,
		Bank:         p.Bank,
		NetPay:       p.NetPay,
		GeneratedBy:  p.GeneratedBy,
		GeneratedAt:  p.GeneratedAt,
	}
}

func ToResponseList(items []*Payslip) []*Response {
	out := make([]*Response, 0, len(items))
	for _, p := range items {
		out = append(out, ToResponse(p))
	}
	return out
}
