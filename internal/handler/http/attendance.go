package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/zenith-hr/workforce-backend-go/internal/domain/payroll"
	"github.com/zenith-hr/workforce-backend-go/internal/handler/http/response"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CaptureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CaptureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	var start, end *time.Time

	if s := r.URL.Query().Get("start_date"); s != "" {
		date, ok := validator.IsValidDate(s)
		if !ok {
			response.BadRequest(w, "start_date must be YYYY-MM-DD", nil)
			return
		}
		start = &date
	}
	if e := r.URL.Query().Get("end_date"); e != "" {
		date, ok := validator.IsValidDate(e)
		if !ok {
			response.BadRequest(w, "end_date must be YYYY-MM-DD", nil)
			return
		}
		end = &date
	}

	limit := getIntQueryParam(r, "limit", 50)
	offset := getIntQueryParam(r, "offset", 0)

	results, err := h.attendanceService.MyAttendance(r.Context(), start, end, limit, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Overview implements AttendanceHandler.
func (h *attendanceHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Overview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Stats implements AttendanceHandler. The month defaults to the current
// one when not given.
func (h *attendanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	month := r.URL.Query().Get("month")
	if month == "" {
		month = now.Month().String()
	}
	year := getIntQueryParam(r, "year", now.Year())

	start, end, ok := payroll.PeriodBounds(month, year)
	if !ok {
		response.HandleError(w, payroll.ErrInvalidMonth)
		return
	}

	employeeID := r.URL.Query().Get("employee_id")

	result, err := h.attendanceService.Stats(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
