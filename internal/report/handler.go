package report

import (
	"net/http"

	"github.com/mauriciopaint/backoffice/internal/transport"
)

type ServiceAPI interface {
	PayablesReport(f Filter) (*PayablesReport, error)
	PaidReport(f Filter) (*PaidReport, error)
	MonthlyExpensesReport(f Filter) (*MonthlyExpensesReport, error)
	PaymentForecast() (*ForecastReport, error)
	Dashboard() (*DashboardSummary, error)
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

func (h *Handler) GetPayablesReport(w http.ResponseWriter, r *http.Request) {
	f, err := ParseFilter(r.URL.Query())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	rep, err := h.Service.PayablesReport(f)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, rep)
}

func (h *Handler) GetPaidReport(w http.ResponseWriter, r *http.Request) {
	f, err := ParseFilter(r.URL.Query())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	rep, err := h.Service.PaidReport(f)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, rep)
}

func (h *Handler) GetMonthlyExpensesReport(w http.ResponseWriter, r *http.Request) {
	f, err := ParseFilter(r.URL.Query())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	rep, err := h.Service.MonthlyExpensesReport(f)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, rep)
}

func (h *Handler) GetPaymentForecast(w http.ResponseWriter, r *http.Request) {
	rep, err := h.Service.PaymentForecast()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, rep)
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Dashboard()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}
