package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/MikeSquared-Agency/Shortlist/internal/csvio"
	"github.com/MikeSquared-Agency/Shortlist/internal/events"
	"github.com/MikeSquared-Agency/Shortlist/internal/session"
)

// exportFilename is the download name browsers save the table under.
const exportFilename = "my_rankings.csv"

type TransferHandler struct {
	manager *session.Manager
	events  events.Client
}

func NewTransferHandler(m *session.Manager, ev events.Client) *TransferHandler {
	return &TransferHandler{manager: m, events: ev}
}

func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.manager, w, r)
	if !ok {
		return
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "read body: " + err.Error()})
		return
	}

	categories, n, err := s.ImportCSV(data)
	if err != nil {
		if errors.Is(err, csvio.ErrMissingProgramColumn) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectSessionImported(s.ID.String()), events.ImportCompletedEvent{
			SessionID:  s.ID.String(),
			Categories: categories,
			Rows:       n,
		})
	}

	writeJSON(w, http.StatusOK, snapshot(s))
}

func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.manager, w, r)
	if !ok {
		return
	}
	data := s.ExportCSV()
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
