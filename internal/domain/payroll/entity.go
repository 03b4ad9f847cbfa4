package payroll

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Earnings is the frozen earnings side of a payslip, copied from the
// employee's salary structure at generation time.
type Earnings struct {
	Basic                 decimal.Decimal `json:"basic"`
	HRA                   decimal.Decimal `json:"hra"`
	Conveyance            decimal.Decimal `json:"conveyance"`
	SpecialAllowance      decimal.Decimal `json:"special_allowance"`
	ProfessionalAllowance decimal.Decimal `json:"professional_allowance"`
	UniformAllowance      decimal.Decimal `json:"uniform_allowance"`
	ShiftAllowance        decimal.Decimal `json:"shift_allowance"`
	MedicalAllowance      decimal.Decimal `json:"medical_allowance"`
	GrossEarnings         decimal.Decimal `json:"gross_earnings"`
}

// Deductions is the frozen deductions side of a payslip.
type Deductions struct {
	PFEmployee      decimal.Decimal `json:"pf_employee"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	LossOfPay       decimal.Decimal `json:"loss_of_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
}

// AttendanceSummary is the attendance snapshot the payslip was computed from.
type AttendanceSummary struct {
	WorkingDays  int     `json:"working_days"`
	DaysPresent  int     `json:"days_present"`
	DaysAbsent   int     `json:"days_absent"`
	HalfDays     int     `json:"half_days"`
	DaysOnLeave  int     `json:"days_on_leave"`
	LossOfPayDay float64 `json:"loss_of_pay_days"`
}

// BankSnapshot is the employee's bank and statutory identifiers as they
// stood at generation.
type BankSnapshot struct {
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	IFSCCode      string `json:"ifsc_code"`
	PANNumber     string `json:"pan_number"`
	UANNumber     string `json:"uan_number"`
	PFNumber      string `json:"pf_number"`
	PaymentMode   string `json:"payment_mode"`
}

// Payslip is a frozen settlement for one employee and one period. Once
// written it is never recomputed; later salary or attendance edits do not
// touch existing payslips.
type Payslip struct {
	ID         string
	EmployeeID string

	EmployeeName string
	Department   string
	Designation  string

	Month string
	Year  int

	Earnings   Earnings
	Deductions Deductions
	Attendance AttendanceSummary
	Bank       *BankSnapshot

	NetPay decimal.Decimal

	GeneratedBy string
	GeneratedAt time.Time
}

var monthNumbers = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// MonthNumber resolves a month name to its calendar number. The second
// return is false for unknown names.
func MonthNumber(name string) (time.Month, bool) {
	m, ok := monthNumbers[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// PeriodBounds returns the first and last day of the named month.
func PeriodBounds(month string, year int) (time.Time, time.Time, bool) {
	m, ok := MonthNumber(month)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	start := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end, true
}
