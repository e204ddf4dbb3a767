package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Shortlist/internal/session"
	"github.com/MikeSquared-Agency/Shortlist/internal/table"
)

type SessionsHandler struct {
	manager *session.Manager
}

func NewSessionsHandler(m *session.Manager) *SessionsHandler {
	return &SessionsHandler{manager: m}
}

// SessionView is the snapshot returned by create, get, and import: enough to
// render the whole working table.
type SessionView struct {
	ID         string      `json:"id"`
	CreatedAt  time.Time   `json:"created_at"`
	Categories []string    `json:"categories"`
	Rows       []table.Row `json:"rows"`
}

func snapshot(s *session.Session) SessionView {
	return SessionView{
		ID:         s.ID.String(),
		CreatedAt:  s.CreatedAt,
		Categories: s.Categories(),
		Rows:       s.Rows(),
	}
}

func (h *SessionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, err := h.manager.Create()
	if err != nil {
		if errors.Is(err, session.ErrTooManySessions) {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, snapshot(s))
}

func (h *SessionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.manager, w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snapshot(s))
}

func (h *SessionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session id"})
		return
	}
	if !h.manager.Delete(id) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// sessionFromRequest resolves the {id} route param. On failure it has
// already written the error response and the handler just returns.
func sessionFromRequest(m *session.Manager, w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session id"})
		return nil, false
	}
	s, ok := m.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return nil, false
	}
	return s, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
