package attendance

import "time"

type CaptureRequest struct {
	CaptureType CaptureType `json:"capture_type"`
	Location    *Location   `json:"location,omitempty"`
	DeviceID    *string     `json:"device_id,omitempty"`
	Remarks     *string     `json:"remarks,omitempty"`
}

type Response struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`

	Date      string `json:"date"`
	DayOfWeek string `json:"day_of_week"`

	CheckInTime     *time.Time   `json:"check_in_time,omitempty"`
	CheckInType     *CaptureType `json:"check_in_type,omitempty"`
	CheckInLocation *Location    `json:"check_in_location,omitempty"`

	CheckOutTime     *time.Time   `json:"check_out_time,omitempty"`
	CheckOutType     *CaptureType `json:"check_out_type,omitempty"`
	CheckOutLocation *Location    `json:"check_out_location,omitempty"`

	TotalHours *float64 `json:"total_hours,omitempty"`

	Status           Status  `json:"status"`
	IsLate           bool    `json:"is_late"`
	IsEarlyDeparture bool    `json:"is_early_departure"`
	Remarks          *string `json:"remarks,omitempty"`
}

type CheckInResponse struct {
	Attendance *Response `json:"attendance"`
	IsLate     bool      `json:"is_late"`
	LateByMins int       `json:"late_by_minutes"`
	Message    string    `json:"message"`
}

type CheckOutResponse struct {
	Attendance   *Response `json:"attendance"`
	SessionHours float64   `json:"session_hours"`
	TotalHours   float64   `json:"total_hours_today"`
	ShortHours   bool      `json:"short_hours_alert"`
	Message      string    `json:"message"`
}

// TodayStatus is the caller's own attendance state for the current day:
// the active session when one exists, otherwise the latest session today.
type TodayStatus struct {
	Marked     bool      `json:"marked"`
	CheckedIn  bool      `json:"checked_in"`
	CheckedOut bool      `json:"checked_out"`
	Attendance *Response `json:"attendance,omitempty"`
}

type TodayOverview struct {
	Date         string      `json:"date"`
	TotalActive  int         `json:"total_active_employees"`
	PresentCount int         `json:"present_count"`
	LateCount    int         `json:"late_count"`
	AbsentCount  int         `json:"absent_count"`
	OnLeaveCount int         `json:"on_leave_count"`
	Records      []*Response `json:"records"`
}

type Stats struct {
	EmployeeID    string  `json:"employee_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	DaysPresent   int     `json:"days_present"`
	DaysLate      int     `json:"days_late"`
	DaysHalfDay   int     `json:"days_half_day"`
	DaysOnLeave   int     `json:"days_on_leave"`
	DaysWFH       int     `json:"days_work_from_home"`
	DaysAbsent    int     `json:"days_absent"`
	Percentage    float64 `json:"attendance_percentage"`
	TotalHours    float64 `json:"total_hours"`
	AverageHours  float64 `json:"average_hours_per_day"`
	SessionsCount int     `json:"sessions_count"`
}

func ToResponse(a *Attendance) *Response {
	return &Response{
		ID:               a.ID,
		EmployeeID:       a.EmployeeID,
		EmployeeName:     a.EmployeeName,
		Department:       a.Department,
		Date:             a.Date.Format("2006-01-02"),
		DayOfWeek:        a.DayOfWeek,
		CheckInTime:      a.CheckInTime,
		CheckInType:      a.CheckInType,
		CheckInLocation:  a.CheckInLocation,
		CheckOutTime:     a.CheckOutTime,
		CheckOutType:     a.CheckOutType,
		CheckOutLocation: a.CheckOutLocation,
		TotalHours:       a.TotalHours,
		Status:           a.Status,
		IsLate:           a.IsLate,
		IsEarlyDeparture: a.IsEarlyDeparture,
		Remarks:          a.Remarks,
	}
}

func ToResponseList(items []*Attendance) []*Response {
	out := make([]*Response, 0, len(items))
	for _, a := range items {
		out = append(out, ToResponse(a))
	}
	return out
}
