package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrBankDetailsLocked   = errors.New("bank details are locked and can only be changed by an admin")
	ErrInactiveEmployee    = errors.New("employee is inactive")
	ErrAccessDenied        = errors.New("not allowed to access this employee record")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrInvalidShiftWindow  = errors.New("shift window is not a valid HH:MM time range")
)
