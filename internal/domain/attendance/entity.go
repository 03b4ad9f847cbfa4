package attendance

import (
	"time"
)

// CaptureType is how a check-in or check-out was recorded.
type CaptureType string

const (
	CaptureManual      CaptureType = "manual"
	CaptureFace        CaptureType = "face"
	CaptureRFID        CaptureType = "rfid"
	CaptureFingerprint CaptureType = "fingerprint"
)

// Status of an attendance record for a day.
type Status string

const (
	StatusPresent      Status = "present"
	StatusAbsent       Status = "absent"
	StatusLate         Status = "late"
	StatusHalfDay      Status = "half_day"
	StatusOnLeave      Status = "on_leave"
	StatusWorkFromHome Status = "work_from_home"
)

// Location is optional geolocation evidence attached to a capture.
type Location struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Address   *string  `json:"address,omitempty"`
}

// Attendance is one work session. An employee may have several sessions per
// day; a session with a nil CheckOutTime is the employee's active session
// and at most one may exist at any instant.
type Attendance struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Department   string

	Date      time.Time
	DayOfWeek string

	CheckInTime     *time.Time
	CheckInType     *CaptureType
	CheckInLocation *Location
	CheckInDevice   *string

	CheckOutTime     *time.Time
	CheckOutType     *CaptureType
	CheckOutLocation *Location
	CheckOutDevice   *string

	TotalHours *float64

	Status           Status
	IsLate           bool
	IsEarlyDeparture bool

	Remarks *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
