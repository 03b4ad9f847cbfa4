package leave

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Type of leave being requested.
type Type string

const (
	TypeCasual       Type = "casual"
	TypeSick         Type = "sick"
	TypeAnnual       Type = "annual"
	TypeMaternity    Type = "maternity"
	TypePaternity    Type = "paternity"
	TypeUnpaid       Type = "unpaid"
	TypeCompensatory Type = "compensatory"
)

// DeductsBalance reports whether this leave type consumes a tracked balance.
func (t Type) DeductsBalance() bool {
	switch t {
	case TypeCasual, TypeSick, TypeAnnual:
		return true
	}
	return false
}

// Status of a leave application.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Approval is one decision entry. The list is append-only; the latest entry
// reflects the current decision.
type Approval struct {
	ApproverID   string    `json:"approver_id"`
	ApproverName string    `json:"approver_name"`
	ApproverRole string    `json:"approver_role"`
	Action       Status    `json:"action"`
	Comments     *string   `json:"comments,omitempty"`
	DecidedAt    time.Time `json:"decided_at"`
}

// Approvals is stored as a JSONB column.
type Approvals []Approval

func (a Approvals) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

func (a *Approvals) Scan(value interface{}) error {
	if value == nil {
		*a = Approvals{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for approvals: %T", value)
	}
	return json.Unmarshal(data, a)
}

// Application is one leave request.
type Application struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Department   string

	LeaveType Type
	StartDate time.Time
	EndDate   time.Time
	IsHalfDay bool
	TotalDays float64

	Reason          string
	ContactDuring   *string
	HandoverNotes   *string
	AttachmentURL   *string

	Status    Status
	Approvals Approvals

	AppliedAt time.Time
	UpdatedAt time.Time
}

// TotalDaysFor computes the day cost of a request: a half day costs 0.5,
// otherwise the inclusive span of calendar days.
func TotalDaysFor(start, end time.Time, halfDay bool) float64 {
	if halfDay {
		return 0.5
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return float64(days)
}
