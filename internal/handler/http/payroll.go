package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/payroll"
	"github.com/zenith-hr/workforce-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	LossOfPayDays(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	BulkGenerate(w http.ResponseWriter, r *http.Request)
	UpdateSalary(w http.ResponseWriter, r *http.Request)
	GetMyPayslips(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// LossOfPayDays implements PayrollHandler.
func (h *payrollHandlerImpl) LossOfPayDays(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	month := r.URL.Query().Get("month")
	year := getIntQueryParam(r, "year", 0)

	result, err := h.payrollService.LossOfPayDays(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Generate implements PayrollHandler.
func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Generate(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip generated", result)
}

// BulkGenerate implements PayrollHandler.
func (h *payrollHandlerImpl) BulkGenerate(w http.ResponseWriter, r *http.Request) {
	var req payroll.BulkGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.BulkGenerate(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bulk generation complete", result)
}

// UpdateSalary implements PayrollHandler.
func (h *payrollHandlerImpl) UpdateSalary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req payroll.UpdateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.payrollService.UpdateSalary(r.Context(), employeeID, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary details updated", nil)
}

// GetMyPayslips implements PayrollHandler.
func (h *payrollHandlerImpl) GetMyPayslips(w http.ResponseWriter, r *http.Request) {
	var year *int
	if y := getIntQueryParam(r, "year", 0); y != 0 {
		year = &y
	}

	results, err := h.payrollService.MyPayslips(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// List implements PayrollHandler.
func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var month *string
	if m := r.URL.Query().Get("month"); m != "" {
		month = &m
	}
	var year *int
	if y := getIntQueryParam(r, "year", 0); y != 0 {
		year = &y
	}
	var department *string
	if d := r.URL.Query().Get("department"); d != "" {
		department = &d
	}

	limit := getIntQueryParam(r, "limit", 50)
	offset := getIntQueryParam(r, "offset", 0)

	results, err := h.payrollService.ListAll(r.Context(), month, year, department, limit, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Delete implements PayrollHandler.
func (h *payrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip deleted", nil)
}
