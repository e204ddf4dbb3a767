package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/MikeSquared-Agency/Shortlist/internal/config"
	"github.com/MikeSquared-Agency/Shortlist/internal/scoring"
	"github.com/MikeSquared-Agency/Shortlist/internal/session"
)

type RankingsHandler struct {
	manager *session.Manager
	cfg     *config.Config
}

func NewRankingsHandler(m *session.Manager, cfg *config.Config) *RankingsHandler {
	return &RankingsHandler{manager: m, cfg: cfg}
}

type rankRequest struct {
	Weights map[string]int `json:"weights"`
}

type compareRequest struct {
	Weights  map[string]int `json:"weights"`
	Programs []string       `json:"programs"`
}

type compareResponse struct {
	Axes    []string             `json:"axes"`
	Vectors map[string][]float64 `json:"vectors"`
}

// effectiveWeights substitutes the full default weight set when the caller
// sent none, then clamps every weight into the configured bounds.
func (h *RankingsHandler) effectiveWeights(s *session.Session, weights map[string]int) scoring.Weights {
	var w scoring.Weights
	if weights == nil {
		w = scoring.DefaultWeights(s.Categories(), h.cfg.Scoring.DefaultWeight)
	} else {
		w = scoring.Weights(weights)
	}
	return w.Clamped(h.cfg.Scoring.WeightMin, h.cfg.Scoring.WeightMax)
}

func (h *RankingsHandler) Rank(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.manager, w, r)
	if !ok {
		return
	}
	var req rankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result := s.Rank(h.effectiveWeights(s, req.Weights))
	writeJSON(w, http.StatusOK, result)
}

func (h *RankingsHandler) Compare(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.manager, w, r)
	if !ok {
		return
	}
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	axes, vectors := s.Compare(h.effectiveWeights(s, req.Weights), req.Programs)
	if axes == nil {
		axes = []string{}
	}
	writeJSON(w, http.StatusOK, compareResponse{Axes: axes, Vectors: vectors})
}
