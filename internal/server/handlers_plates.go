package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/claude/liftkit/internal/plates"
	"github.com/go-chi/chi/v5"
)

// resolveResponse wraps a forward resolve result. An infeasible target is a
// result variant, not an HTTP error: the caller renders the reason instead
// of a plate list.
type resolveResponse struct {
	Infeasible bool            `json:"infeasible"`
	Reason     string          `json:"reason,omitempty"`
	Loadout    *plates.Loadout `json:"loadout,omitempty"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Target float64 `json:"target"`
		Bar    float64 `json:"bar"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Target <= 0 {
		writeError(w, http.StatusBadRequest, "target must be positive")
		return
	}

	var out plates.Loadout
	var err error
	if req.Bar > 0 {
		out, err = plates.ResolveForward(req.Target, req.Bar, s.inv.Denominations())
	} else {
		out, err = s.inv.Resolve(req.Target)
	}
	if errors.Is(err, plates.ErrTargetNotAboveBar) {
		writeJSON(w, http.StatusOK, resolveResponse{Infeasible: true, Reason: err.Error()})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resolveResponse{Loadout: &out})
}

func (s *Server) handleReverse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Bar    float64             `json:"bar"`
		Plates []plates.PlateCount `json:"plates"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	bar := req.Bar
	if bar <= 0 {
		bar = s.inv.BarWeight()
	}

	load := plates.ReverseLoad{}
	for _, p := range req.Plates {
		if p.Weight <= 0 || p.Count <= 0 {
			continue
		}
		load[p.Weight] += p.Count
	}

	writeJSON(w, http.StatusOK, map[string]float64{
		"total": plates.ResolveReverse(load, bar),
	})
}

func (s *Server) handleGetInventory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.inv.Snapshot())
}

func (s *Server) handleAddDenomination(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Weight float64 `json:"weight"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if !s.inv.AddDenomination(req.Weight) {
		writeError(w, http.StatusConflict, "denomination already exists or weight is not positive")
		return
	}
	s.settings.SaveInventory()
	writeJSON(w, http.StatusCreated, s.inv.Snapshot())
}

func (s *Server) handleSetAvailable(w http.ResponseWriter, r *http.Request) {
	weight, err := strconv.ParseFloat(chi.URLParam(r, "weight"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid weight")
		return
	}
	var req struct {
		Available int `json:"available"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if !s.inv.SetAvailableCount(weight, req.Available) {
		writeError(w, http.StatusNotFound, "no such denomination")
		return
	}
	s.settings.SaveInventory()
	writeJSON(w, http.StatusOK, s.inv.Snapshot())
}

func (s *Server) handleRemoveDenomination(w http.ResponseWriter, r *http.Request) {
	weight, err := strconv.ParseFloat(chi.URLParam(r, "weight"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid weight")
		return
	}
	if !s.inv.RemoveDenomination(weight) {
		writeError(w, http.StatusNotFound, "no such denomination")
		return
	}
	s.settings.SaveInventory()
	writeJSON(w, http.StatusOK, s.inv.Snapshot())
}

func (s *Server) handleResetInventory(w http.ResponseWriter, r *http.Request) {
	s.inv.ResetToDefaults(s.settings.Get().Unit())
	s.settings.SaveInventory()
	writeJSON(w, http.StatusOK, s.inv.Snapshot())
}

func (s *Server) handleSetBar(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Weight float64 `json:"weight"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if !s.inv.SetBarWeight(req.Weight) {
		writeError(w, http.StatusBadRequest, "bar weight must be positive")
		return
	}
	s.settings.SaveInventory()
	writeJSON(w, http.StatusOK, s.inv.Snapshot())
}

func (s *Server) handleAddBar(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Weight float64 `json:"weight"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if !s.inv.AddBar(req.Weight) {
		writeError(w, http.StatusConflict, "bar already exists or weight is not positive")
		return
	}
	s.settings.SaveInventory()
	writeJSON(w, http.StatusCreated, s.inv.Snapshot())
}
