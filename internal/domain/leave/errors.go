package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave application not found")
	ErrInvalidDateRange      = errors.New("end date must not be before start date")
	ErrInsufficientBalance   = errors.New("insufficient leave balance")
	ErrAlreadyProcessed      = errors.New("leave application has already been processed")
	ErrApprovalRoleRequired  = errors.New("approver role required to decide leave applications")
	ErrOwnDepartmentConflict = errors.New("hr cannot decide leave applications from their own department")
	ErrHRPeerApproval        = errors.New("hr leave applications cannot be decided by hr")
	ErrNotOwnLeave           = errors.New("leave application belongs to another employee")
	ErrInvalidDecision       = errors.New("decision must be approved or rejected")
)
