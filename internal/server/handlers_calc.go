package server

import (
	"net/http"
	"strconv"

	"github.com/claude/liftkit/internal/strength"
	"github.com/claude/liftkit/internal/units"
)

func (s *Server) handleOneRM(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Weight float64 `json:"weight"`
		Reps   int     `json:"reps"`
		RPE    float64 `json:"rpe"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	oneRM, err := strength.OneRepMax(req.Weight, req.Reps, req.RPE)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"one_rm":      oneRM,
		"percentages": strength.PercentTable(oneRM),
	})
}

func (s *Server) handleRPEWeight(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OneRM float64 `json:"one_rm"`
		Reps  int     `json:"reps"`
		RPE   float64 `json:"rpe"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	weight, err := strength.TargetWeight(req.OneRM, req.Reps, req.RPE)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"weight": weight})
}

func (s *Server) handlePercentTable(w http.ResponseWriter, r *http.Request) {
	oneRM, err := strconv.ParseFloat(r.URL.Query().Get("one_rm"), 64)
	if err != nil || oneRM <= 0 {
		writeError(w, http.StatusBadRequest, "one_rm parameter must be a positive number")
		return
	}
	writeJSON(w, http.StatusOK, strength.PercentTable(oneRM))
}

func (s *Server) handleExercises(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, strength.Exercises)
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	value, err := strconv.ParseFloat(r.URL.Query().Get("value"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "value parameter must be a number")
		return
	}
	from, err := units.Parse(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := units.Parse(r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"value": units.Convert(value, from, to),
		"unit":  to.Suffix(),
	})
}
