package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Shortlist/internal/session"
)

type AdminHandler struct {
	manager *session.Manager
}

func NewAdminHandler(m *session.Manager) *AdminHandler {
	return &AdminHandler{manager: m}
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.manager.Stats())
}
