package attendance

import "errors"

var (
	ErrActiveSession      = errors.New("an active session already exists for this employee")
	ErrNoActiveSession    = errors.New("no active session found for this employee")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNotOwnAttendance   = errors.New("attendance record belongs to another employee")
)
