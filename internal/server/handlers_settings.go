package server

import (
	"net/http"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.settings.Get())
}

// handlePatchSettings applies partial settings updates. Pointer fields
// distinguish "not sent" from "set to false". Flipping use_kilograms resets
// the plate inventory to the new unit's defaults.
func (s *Server) handlePatchSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UseKilograms       *bool `json:"use_kilograms"`
		DarkMode           *bool `json:"dark_mode"`
		MotivationReminder *bool `json:"motivation_reminder"`
		HarshMotivation    *bool `json:"harsh_motivation"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if req.UseKilograms != nil {
		s.settings.SetUseKilograms(*req.UseKilograms)
	}
	if req.DarkMode != nil {
		s.settings.SetDarkMode(*req.DarkMode)
	}
	if req.MotivationReminder != nil {
		s.settings.SetMotivationReminder(*req.MotivationReminder)
	}
	if req.HarshMotivation != nil {
		s.settings.SetHarshMotivation(*req.HarshMotivation)
	}

	writeJSON(w, http.StatusOK, s.settings.Get())
}
