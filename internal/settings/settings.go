// Package settings holds the app-wide user settings behind an explicit
// manager that components receive by injection. The unit flag is the one
// setting with a side effect: flipping it resets the plate inventory to the
// new unit's defaults.
package settings

import (
	"log/slog"
	"sync"

	"github.com/claude/liftkit/internal/plates"
	"github.com/claude/liftkit/internal/units"
)

// Settings is the persistable user settings snapshot.
type Settings struct {
	UseKilograms       bool `json:"use_kilograms"`
	DarkMode           bool `json:"dark_mode"`
	MotivationReminder bool `json:"motivation_reminder"`
	HarshMotivation    bool `json:"harsh_motivation"`
}

// Defaults returns the out-of-the-box settings: kilograms, light mode.
func Defaults() Settings {
	return Settings{UseKilograms: true}
}

// Unit returns the active display unit.
func (s Settings) Unit() units.Unit {
	if s.UseKilograms {
		return units.Kilograms
	}
	return units.Pounds
}

// Persister saves a state value in the background. storage.Saver implements
// it; tests substitute fakes.
type Persister interface {
	SaveAsync(key string, v any)
}

// State keys the manager persists under. They match the storage package's
// constants; redeclared here so the core does not import storage.
const (
	keySettings  = "settings"
	keyInventory = "inventory"
)

// Manager owns the settings and applies mutation side effects.
type Manager struct {
	mu      sync.Mutex
	s       Settings
	inv     *plates.Inventory
	persist Persister
	log     *slog.Logger
}

// NewManager creates a manager over the given inventory. persist may be nil
// when persistence is unavailable; mutations then apply in memory only.
func NewManager(s Settings, inv *plates.Inventory, persist Persister, log *slog.Logger) *Manager {
	return &Manager{s: s, inv: inv, persist: persist, log: log}
}

// Get returns the current settings.
func (m *Manager) Get() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s
}

// SetUseKilograms flips the unit flag. Changing it resets the inventory to
// the new unit's default plates and bar; custom inventory is discarded, not
// converted. A no-op when the flag already matches.
func (m *Manager) SetUseKilograms(v bool) {
	m.mu.Lock()
	if m.s.UseKilograms == v {
		m.mu.Unlock()
		return
	}
	m.s.UseKilograms = v
	s := m.s
	m.mu.Unlock()

	m.inv.ResetToDefaults(s.Unit())
	m.log.Info("unit changed, inventory reset", "unit", s.Unit())
	m.save(s)
	m.SaveInventory()
}

// SetDarkMode sets the dark mode flag.
func (m *Manager) SetDarkMode(v bool) {
	m.setFlag(func(s *Settings) { s.DarkMode = v })
}

// SetMotivationReminder sets the motivation reminder flag.
func (m *Manager) SetMotivationReminder(v bool) {
	m.setFlag(func(s *Settings) { s.MotivationReminder = v })
}

// SetHarshMotivation sets the harsh motivation flag.
func (m *Manager) SetHarshMotivation(v bool) {
	m.setFlag(func(s *Settings) { s.HarshMotivation = v })
}

func (m *Manager) setFlag(apply func(*Settings)) {
	m.mu.Lock()
	apply(&m.s)
	s := m.s
	m.mu.Unlock()
	m.save(s)
}

func (m *Manager) save(s Settings) {
	if m.persist == nil {
		return
	}
	m.persist.SaveAsync(keySettings, s)
}

// SaveInventory persists the current inventory snapshot. Called by the
// manager on unit flips and by handlers after inventory mutations.
func (m *Manager) SaveInventory() {
	if m.persist == nil {
		return
	}
	m.persist.SaveAsync(keyInventory, m.inv.Snapshot())
}
