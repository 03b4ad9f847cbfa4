package notification

import "time"

// Type of notification event.
type Type string

const (
	TypeLateArrival      Type = "late_arrival"
	TypeShortHours       Type = "short_hours"
	TypeLeaveApplied     Type = "leave_applied"
	TypeLeaveApproved    Type = "leave_approved"
	TypeLeaveRejected    Type = "leave_rejected"
	TypeLeaveCancelled   Type = "leave_cancelled"
	TypePayslipGenerated Type = "payslip_generated"
)

// Notification is one in-app message for an employee.
type Notification struct {
	ID          string
	RecipientID string
	Type        Type
	Title       string
	Message     string
	ReferenceID *string
	IsRead      bool
	CreatedAt   time.Time
}

type Response struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	ReferenceID *string   `json:"reference_id,omitempty"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToResponse(n *Notification) *Response {
	return &Response{
		ID:          n.ID,
		Type:        n.Type,
		Title:       n.Title,
		Message:     n.Message,
		ReferenceID: n.ReferenceID,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
	}
}

func ToResponseList(items []*Notification) []*Response {
	out := make([]*Response, 0, len(items))
	for _, n := range items {
		out = append(out, ToResponse(n))
	}
	return out
}
