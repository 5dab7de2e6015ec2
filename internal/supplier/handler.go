package supplier

import (
	"encoding/json"
	"net/http"

	"github.com/mauriciopaint/backoffice/internal/transport"
)

type ServiceAPI interface {
	GetAllSuppliers() ([]SupplierResponse, error)
	CreateSupplier(dto CreateSupplierDTO) (*Supplier, error)
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

func (h *Handler) GetSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.Service.GetAllSuppliers()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, SuppliersResponse{Suppliers: suppliers})
}

func (h *Handler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var dto CreateSupplierDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sp, err := h.Service.CreateSupplier(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, toResponse(sp))
}
