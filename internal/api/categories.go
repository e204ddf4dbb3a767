package api

import (
	"encoding/json"
	"net/http"

	"github.com/MikeSquared-Agency/Shortlist/internal/session"
)

type CategoriesHandler struct {
	manager *session.Manager
}

func NewCategoriesHandler(m *session.Manager) *CategoriesHandler {
	return &CategoriesHandler{manager: m}
}

type addCategoryRequest struct {
	Name string `json:"name"`
}

type removeCategoriesRequest struct {
	Names []string `json:"names"`
}

func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.manager, w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": s.Categories()})
}

func (h *CategoriesHandler) Add(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.manager, w, r)
	if !ok {
		return
	}
	var req addCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	added := s.AddCategory(req.Name)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"added":      added,
		"categories": s.Categories(),
	})
}

func (h *CategoriesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.manager, w, r)
	if !ok {
		return
	}
	var req removeCategoriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	removed := s.RemoveCategories(req.Names)
	if removed == nil {
		removed = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"removed":    removed,
		"categories": s.Categories(),
	})
}
