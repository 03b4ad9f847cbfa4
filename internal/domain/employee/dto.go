package employee

import "github.com/shopspring/decimal"

// EmployeeResponse is the outward shape of an employee record. Salary and
// bank details are attached only for the owner and payroll operators.
type EmployeeResponse struct {
	ID               string           `json:"id"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Department       string           `json:"department"`
	Designation      string           `json:"designation"`
	Role             string           `json:"role"`
	ReportingManager *string          `json:"reporting_manager,omitempty"`
	JoiningDate      string           `json:"joining_date"`
	EmploymentType   string           `json:"employment_type"`
	IsActive         bool             `json:"is_active"`
	ShiftStartTime   string           `json:"shift_start_time"`
	ShiftEndTime     string           `json:"shift_end_time"`
	CasualLeave      float64          `json:"casual_leave_balance"`
	SickLeave        float64          `json:"sick_leave_balance"`
	AnnualLeave      float64          `json:"annual_leave_balance"`
	Salary           *SalaryResponse  `json:"salary_details,omitempty"`
	Bank             *BankResponse    `json:"bank_details,omitempty"`
	BankLocked       bool             `json:"is_bank_details_locked"`
}

type SalaryResponse struct {
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

type BankResponse struct {
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	IFSCCode      string `json:"ifsc_code"`
	PANNumber     string `json:"pan_number"`
	UANNumber     string `json:"uan_number"`
	PFNumber      string `json:"pf_number"`
	PaymentMode   string `json:"payment_mode"`
}

// ToResponse maps an employee to its outward shape. includeSensitive
// controls whether salary and bank details are attached.
func ToResponse(e Employee, includeSensitive bool) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		Email:            e.Email,
		Phone:            e.Phone,
		Department:       e.Department,
		Designation:      e.Designation,
		Role:             string(e.Role),
		ReportingManager: e.ReportingManager,
		JoiningDate:      e.JoiningDate.Format("2006-01-02"),
		EmploymentType:   e.EmploymentType,
		IsActive:         e.IsActive,
		ShiftStartTime:   e.ShiftStartTime,
		ShiftEndTime:     e.ShiftEndTime,
		CasualLeave:      e.CasualLeaveBalance,
		SickLeave:        e.SickLeaveBalance,
		AnnualLeave:      e.AnnualLeaveBalance,
		BankLocked:       e.BankDetailsLocked,
	}

	if includeSensitive {
		resp.Salary = &SalaryResponse{
			Basic:                 e.Salary.Basic,
			HRA:                   e.Salary.HRA,
			Conveyance:            e.Salary.Conveyance,
			SpecialAllowance:      e.Salary.SpecialAllowance,
			ProfessionalAllowance: e.Salary.ProfessionalAllowance,
			UniformAllowance:      e.Salary.UniformAllowance,
			ShiftAllowance:        e.Salary.ShiftAllowance,
			MedicalAllowance:      e.Salary.MedicalAllowance,
			PFEmployer:            e.Salary.PFEmployer,
			PFEmployee:            e.Salary.PFEmployee,
			ProfessionalTax:       e.Salary.ProfessionalTax,
		}
		resp.Bank = &BankResponse{
			AccountNumber: e.Bank.AccountNumber,
			BankName:      e.Bank.BankName,
			IFSCCode:      e.Bank.IFSCCode,
			PANNumber:     e.Bank.PANNumber,
			UANNumber:     e.Bank.UANNumber,
			PFNumber:      e.Bank.PFNumber,
			PaymentMode:   e.Bank.PaymentMode,
		}
	}

	return resp
}
