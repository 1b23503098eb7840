package server

import (
	"net/http"
	"time"

	"github.com/claude/liftkit/internal/timer"
)

// timerStatus is the rest timer state as the UI polls it.
type timerStatus struct {
	Clock            string  `json:"clock"`
	RemainingSeconds int     `json:"remaining_seconds"`
	Running          bool    `json:"running"`
	Expired          bool    `json:"expired"`
	Progress         float64 `json:"progress"`
}

func (s *Server) timerState() timerStatus {
	rem := s.rest.Remaining()
	return timerStatus{
		Clock:            timer.FormatClock(rem),
		RemainingSeconds: int(rem / time.Second),
		Running:          s.rest.Running(),
		Expired:          s.rest.Expired(),
		Progress:         s.rest.Progress(),
	}
}

func (s *Server) handleTimerStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.timerState())
}

// handleTimerSet arms the timer from whichever field the client sent:
// raw seconds, an mm:ss clock string, or a whole-minute preset.
func (s *Server) handleTimerSet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Seconds       int    `json:"seconds"`
		Clock         string `json:"clock"`
		PresetMinutes int    `json:"preset_minutes"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	switch {
	case req.Clock != "":
		d, err := timer.ParseClock(req.Clock)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.rest.Set(d)
	case req.PresetMinutes > 0:
		s.rest.Preset(req.PresetMinutes)
	case req.Seconds > 0:
		s.rest.Set(time.Duration(req.Seconds) * time.Second)
	default:
		writeError(w, http.StatusBadRequest, "one of seconds, clock, or preset_minutes is required")
		return
	}

	writeJSON(w, http.StatusOK, s.timerState())
}

// timerAction wraps a Timer method as a handler that returns the updated
// state.
func (s *Server) timerAction(fn func(*timer.Timer)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(s.rest)
		writeJSON(w, http.StatusOK, s.timerState())
	}
}
