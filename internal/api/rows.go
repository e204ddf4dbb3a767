package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/Shortlist/internal/session"
	"github.com/MikeSquared-Agency/Shortlist/internal/table"
)

type RowsHandler struct {
	manager *session.Manager
}

func NewRowsHandler(m *session.Manager) *RowsHandler {
	return &RowsHandler{manager: m}
}

// rowPayload accepts cells as arbitrary JSON scalars; the table stores their
// string forms and coercion back to ratings happens at scoring time.
type rowPayload struct {
	Program string                 `json:"program"`
	Values  map[string]interface{} `json:"values"`
}

func (p rowPayload) toRow() table.Row {
	values := make(map[string]string, len(p.Values))
	for k, v := range p.Values {
		values[k] = stringifyCell(v)
	}
	return table.Row{Program: p.Program, Values: values}
}

func stringifyCell(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func (h *RowsHandler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.manager, w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Rows())
}

func (h *RowsHandler) Append(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.manager, w, r)
	if !ok {
		return
	}
	var req rowPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	s.AppendRow(req.toRow())
	writeJSON(w, http.StatusCreated, s.Rows())
}

func (h *RowsHandler) Replace(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.manager, w, r)
	if !ok {
		return
	}
	var req []rowPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	rows := make([]table.Row, len(req))
	for i, p := range req {
		rows[i] = p.toRow()
	}
	s.ReplaceRows(rows)
	writeJSON(w, http.StatusOK, s.Rows())
}

func (h *RowsHandler) Update(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.manager, w, r)
	if !ok {
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid row index"})
		return
	}
	var req rowPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := s.UpdateRow(idx, req.toRow()); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.Rows())
}

func (h *RowsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.manager, w, r)
	if !ok {
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid row index"})
		return
	}
	if err := s.DeleteRow(idx); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.Rows())
}
