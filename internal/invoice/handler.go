package invoice

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/mauriciopaint/backoffice/internal/transport"
)

type ServiceAPI interface {
	CreateProject(dto CreateProjectDTO) (*Project, error)
	ListProjects() ([]ProjectResponse, error)
	CreateInvoice(dto CreateInvoiceDTO) (*Invoice, error)
	ListInvoices() ([]InvoiceResponse, error)
	RenderInvoicePDF(invoiceID int64) ([]byte, string, error)
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

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var dto CreateProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.CreateProject(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, toProjectResponse(p))
}

func (h *Handler) GetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Service.ListProjects()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ProjectsResponse{Projects: projects})
}

func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var dto CreateInvoiceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inv, err := h.Service.CreateInvoice(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, toInvoiceResponse(inv))
}

func (h *Handler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Service.ListInvoices()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, InvoicesResponse{Invoices: invoices})
}

func (h *Handler) DownloadInvoicePDF(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid invoice id")
		return
	}

	pdf, filename, err := h.Service.RenderInvoicePDF(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename=`+filename)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		h.Logger.Error("failed to write pdf response", "invoice_id", id, "error", err)
	}
}
