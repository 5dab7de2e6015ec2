package ledger

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/mauriciopaint/backoffice/internal/transport"
)

// Direct paid entries accept a multipart receipt up to this size.
const maxReceiptBytes = 10 << 20

type ServiceAPI interface {
	CreatePayable(dto CreatePayableDTO) (*AccountsPayable, error)
	MarkPaid(payableID int64) (*AccountsPaid, error)
	CreatePaid(dto CreatePaidDTO, receipt []byte, receiptName string) (*AccountsPaid, error)
	CreateMonthlyExpense(dto CreateMonthlyExpenseDTO) (*MonthlyExpense, error)
	GetPayable(id int64) (*AccountsPayable, error)
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

func (h *Handler) CreatePayable(w http.ResponseWriter, r *http.Request) {
	var dto CreatePayableDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.CreatePayable(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToPayableResponse(p))
}

func (h *Handler) GetPayable(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid payable id")
		return
	}

	p, err := h.Service.GetPayable(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToPayableResponse(p))
}

func (h *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid payable id")
		return
	}

	paid, err := h.Service.MarkPaid(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToPaidResponse(paid))
}

// CreatePaid accepts either a JSON body or a multipart form with a "payload"
// JSON part and an optional "receipt" file part.
func (h *Handler) CreatePaid(w http.ResponseWriter, r *http.Request) {
	var dto CreatePaidDTO
	var receipt []byte
	var receiptName string

	contentType := r.Header.Get("Content-Type")
	if len(contentType) >= 19 && contentType[:19] == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxReceiptBytes); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}
		if err := json.Unmarshal([]byte(r.FormValue("payload")), &dto); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid payload field")
			return
		}
		file, header, err := r.FormFile("receipt")
		if err == nil {
			defer file.Close()
			receipt, err = io.ReadAll(io.LimitReader(file, maxReceiptBytes))
			if err != nil {
				h.WriteError(w, http.StatusBadRequest, "failed to read receipt")
				return
			}
			receiptName = header.Filename
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	p, err := h.Service.CreatePaid(dto, receipt, receiptName)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToPaidResponse(p))
}

func (h *Handler) CreateMonthlyExpense(w http.ResponseWriter, r *http.Request) {
	var dto CreateMonthlyExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.Service.CreateMonthlyExpense(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToMonthlyExpenseResponse(m))
}
