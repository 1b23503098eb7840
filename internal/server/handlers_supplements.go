package server

import (
	"net/http"
	"time"

	"github.com/claude/liftkit/internal/supplements"
	"github.com/go-chi/chi/v5"
)

// supplementView is a Supplement plus its computed next dose time.
type supplementView struct {
	supplements.Supplement
	NextDose string `json:"next_dose"`
}

func (s *Server) handleListSupplements(w http.ResponseWriter, r *http.Request) {
	list, err := s.db.ListSupplements(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	now := time.Now()
	views := make([]supplementView, len(list))
	for i, sup := range list {
		views[i] = supplementView{Supplement: sup, NextDose: sup.NextDose(now)}
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleCreateSupplement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string   `json:"name"`
		PillsPerDose  int      `json:"pills_per_dose"`
		ScheduleTimes []string `json:"schedule_times"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	sup, err := supplements.New(req.Name, req.PillsPerDose, req.ScheduleTimes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.db.InsertSupplement(r.Context(), sup); err != nil {
		s.log.Error("insert supplement failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, supplementView{Supplement: sup, NextDose: sup.NextDose(time.Now())})
}

func (s *Server) handleDeleteSupplement(w http.ResponseWriter, r *http.Request) {
	ok, err := s.db.DeleteSupplement(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "no such supplement")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleNextDose(w http.ResponseWriter, r *http.Request) {
	sup, ok, err := s.db.GetSupplement(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "no such supplement")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"next_dose": sup.NextDose(time.Now())})
}
