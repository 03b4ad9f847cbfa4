package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/employee"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/holiday"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/leave"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/notification"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/payroll"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/identity"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, identity.ErrNoIdentity), errors.Is(err, jwtauth.ErrNoTokenFound):
		Unauthorized(w, "Authentication required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInactiveEmployee):
		Forbidden(w, "Employee is inactive")
	case errors.Is(err, employee.ErrAccessDenied):
		Forbidden(w, err.Error())
	case errors.Is(err, employee.ErrBankDetailsLocked):
		Forbidden(w, "Bank details are locked; only an admin may change them")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrActiveSession):
		Conflict(w, "An active session already exists")
	case errors.Is(err, attendance.ErrNoActiveSession):
		NotFound(w, "No active session to check out from")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNotOwnAttendance):
		Forbidden(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave application already processed")
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrApprovalRoleRequired),
		errors.Is(err, leave.ErrOwnDepartmentConflict),
		errors.Is(err, leave.ErrHRPeerApproval),
		errors.Is(err, leave.ErrNotOwnLeave):
		Forbidden(w, err.Error())

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrInvalidMonth), errors.Is(err, payroll.ErrInvalidYear):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrNotOwnPayslip), errors.Is(err, payroll.ErrOperatorRequired):
		Forbidden(w, err.Error())

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrDuplicateDate):
		Conflict(w, "A holiday already exists on this date")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrNotOwnNotification):
		Forbidden(w, err.Error())

	default:
		slog.Error("unhandled error in request", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
