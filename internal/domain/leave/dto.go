package leave

import "time"

type ApplyRequest struct {
	LeaveType     Type    `json:"leave_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	IsHalfDay     bool    `json:"is_half_day"`
	Reason        string  `json:"reason"`
	ContactDuring *string `json:"contact_during_leave,omitempty"`
	HandoverNotes *string `json:"handover_notes,omitempty"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
}

type DecideRequest struct {
	Action   Status  `json:"action"`
	Comments *string `json:"comments,omitempty"`
}

type Response struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	Department   string     `json:"department"`
	LeaveType    Type       `json:"leave_type"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	IsHalfDay    bool       `json:"is_half_day"`
	TotalDays    float64    `json:"total_days"`
	Reason       string     `json:"reason"`
	Status       Status     `json:"status"`
	Approvals    []Approval `json:"approvals"`
	AppliedAt    time.Time  `json:"applied_at"`

	// Warning is set only on apply, when the requested range touches a
	// holiday. It never blocks the application.
	Warning *string `json:"warning,omitempty"`
}

type BalanceResponse struct {
	EmployeeID string  `json:"employee_id"`
	Casual     float64 `json:"casual_leave_balance"`
	Sick       float64 `json:"sick_leave_balance"`
	Annual     float64 `json:"annual_leave_balance"`
}

func ToResponse(app *Application) *Response {
	approvals := app.Approvals
	if approvals == nil {
		approvals = Approvals{}
	}
	return &Response{
		ID:           app.ID,
		EmployeeID:   app.EmployeeID,
		EmployeeName: app.EmployeeName,
		Department:   app.Department,
		LeaveType:    app.LeaveType,
		StartDate:    app.StartDate.Format("2006-01-02"),
		EndDate:      app.EndDate.Format("2006-01-02"),
		IsHalfDay:    app.IsHalfDay,
		TotalDays:    app.TotalDays,
		Reason:       app.Reason,
		Status:       app.Status,
		Approvals:    approvals,
		AppliedAt:    app.AppliedAt,
	}
}

func ToResponseList(items []*Application) []*Response {
	out := make([]*Response, 0, len(items))
	for _, app := range items {
		out = append(out, ToResponse(app))
	}
	return out
}
