// Package server exposes the calculators, inventory, settings, supplements,
// and rest timer over a JSON HTTP API.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/claude/liftkit/internal/plates"
	"github.com/claude/liftkit/internal/settings"
	"github.com/claude/liftkit/internal/storage"
	"github.com/claude/liftkit/internal/timer"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	inv      *plates.Inventory
	settings *settings.Manager
	db       *storage.DB
	rest     *timer.Timer
	log      *slog.Logger
	router   chi.Router
}

// New creates a new Server with all routes configured.
func New(inv *plates.Inventory, mgr *settings.Manager, db *storage.DB, log *slog.Logger) *Server {
	s := &Server{
		inv:      inv,
		settings: mgr,
		db:       db,
		rest:     timer.New(),
		log:      log,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/plates", func(r chi.Router) {
			r.Post("/resolve", s.handleResolve)
			r.Post("/reverse", s.handleReverse)
			r.Get("/inventory", s.handleGetInventory)
			r.Post("/inventory", s.handleAddDenomination)
			r.Post("/inventory/reset", s.handleResetInventory)
			r.Put("/inventory/{weight}", s.handleSetAvailable)
			r.Delete("/inventory/{weight}", s.handleRemoveDenomination)
			r.Put("/bar", s.handleSetBar)
			r.Post("/bars", s.handleAddBar)
		})

		r.Route("/calc", func(r chi.Router) {
			r.Post("/onerm", s.handleOneRM)
			r.Post("/rpe", s.handleRPEWeight)
			r.Get("/percentages", s.handlePercentTable)
			r.Get("/exercises", s.handleExercises)
		})

		r.Get("/convert", s.handleConvert)

		r.Get("/settings", s.handleGetSettings)
		r.Patch("/settings", s.handlePatchSettings)

		r.Route("/supplements", func(r chi.Router) {
			r.Get("/", s.handleListSupplements)
			r.Post("/", s.handleCreateSupplement)
			r.Delete("/{id}", s.handleDeleteSupplement)
			r.Get("/{id}/next-dose", s.handleNextDose)
		})

		r.Route("/timer", func(r chi.Router) {
			r.Get("/", s.handleTimerStatus)
			r.Post("/", s.handleTimerSet)
			r.Post("/start", s.timerAction((*timer.Timer).Start))
			r.Post("/pause", s.timerAction((*timer.Timer).Pause))
			r.Post("/toggle", s.timerAction((*timer.Timer).Toggle))
			r.Post("/reset", s.timerAction((*timer.Timer).Reset))
			r.Post("/stop", s.timerAction((*timer.Timer).Stop))
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decode parses a JSON request body into v, rejecting unknown fields.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
