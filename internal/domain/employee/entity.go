package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role of an employee within the organization. Roles gate approval and
// payroll operations; see the service packages for the exact rules.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleHR       Role = "hr"
	RoleAdmin    Role = "admin"
)

// SalaryStructure is the fixed monthly salary breakdown.
type SalaryStructure struct {
	Basic                 decimal.Decimal
	HRA                   decimal.Decimal
	Conveyance            decimal.Decimal
	SpecialAllowance      decimal.Decimal
	ProfessionalAllowance decimal.Decimal
	UniformAllowance      decimal.Decimal
	ShiftAllowance        decimal.Decimal
	MedicalAllowance      decimal.Decimal
	PFEmployer            decimal.Decimal
	PFEmployee            decimal.Decimal
	ProfessionalTax       decimal.Decimal
}

// TotalEarnings sums the earning components. PF and professional tax are
// deductions and do not contribute.
func (s SalaryStructure) TotalEarnings() decimal.Decimal {
	return s.Basic.
		Add(s.HRA).
		Add(s.Conveyance).
		Add(s.SpecialAllowance).
		Add(s.ProfessionalAllowance).
		Add(s.UniformAllowance).
		Add(s.ShiftAllowance).
		Add(s.MedicalAllowance)
}

// BankDetails holds payout and tax identifiers.
type BankDetails struct {
	AccountNumber string
	BankName      string
	IFSCCode      string
	PANNumber     string
	UANNumber     string
	PFNumber      string
	PaymentMode   string
}

type Employee struct {
	ID               string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Department       string
	Designation      string
	Role             Role
	ReportingManager *string
	JoiningDate      time.Time
	EmploymentType   string
	IsActive         bool

	// Shift window, "HH:MM" time of day
	ShiftStartTime string
	ShiftEndTime   string

	// Leave balances, mutated only by the leave ledger
	CasualLeaveBalance float64
	SickLeaveBalance   float64
	AnnualLeaveBalance float64

	Salary            SalaryStructure
	Bank              BankDetails
	BankDetailsLocked bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins first and last name for display and denormalized storage.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// IsApprover reports whether the role may decide leave applications.
func (r Role) IsApprover() bool {
	return r == RoleManager || r == RoleHR || r == RoleAdmin
}

// IsPayrollOperator reports whether the role may manage salary data and
// generate payslips.
func (r Role) IsPayrollOperator() bool {
	return r == RoleHR || r == RoleAdmin
}
