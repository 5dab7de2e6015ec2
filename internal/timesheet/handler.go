package timesheet

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/mauriciopaint/backoffice/internal/transport"
)

type ServiceAPI interface {
	RecordEntry(dto RecordEntryDTO) (*DailyEntry, error)
	EntriesForPeriod(employeeID int64, start, end time.Time) ([]*DailyEntry, error)
	HoursForPeriod(employeeID int64, start, end time.Time) (float64, error)
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

func (h *Handler) RecordEntry(w http.ResponseWriter, r *http.Request) {
	var dto RecordEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.Service.RecordEntry(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, toResponse(entry))
}

// GetEntries lists an employee's entries for ?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *Handler) GetEntries(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	start, err := time.Parse(DateLayout, r.URL.Query().Get("start"))
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "start must be formatted YYYY-MM-DD")
		return
	}
	end, err := time.Parse(DateLayout, r.URL.Query().Get("end"))
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "end must be formatted YYYY-MM-DD")
		return
	}

	entries, err := h.Service.EntriesForPeriod(employeeID, start, end)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	responses := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, toResponse(e))
	}

	h.WriteJSON(w, http.StatusOK, EntriesResponse{Entries: responses})
}
