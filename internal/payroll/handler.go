package payroll

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/mauriciopaint/backoffice/internal/transport"
)

type ServiceAPI interface {
	CreatePayroll(dto CreatePayrollDTO) (*Payroll, error)
	ListPayrolls() ([]PayrollResponse, error)
	ListForEmployee(employeeID int64) ([]PayrollResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) CreatePayroll(w http.ResponseWriter, r *http.Request) {
	var dto CreatePayrollDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.CreatePayroll(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, toResponse(p))
}

func (h *Handler) GetPayrolls(w http.ResponseWriter, r *http.Request) {
	payrolls, err := h.Service.ListPayrolls()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, PayrollsResponse{Payrolls: payrolls})
}

func (h *Handler) GetEmployeePayrolls(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	payrolls, err := h.Service.ListForEmployee(employeeID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, PayrollsResponse{Payrolls: payrolls})
}
