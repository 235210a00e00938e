// Package prefs provides JSON-based application preferences.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"wainscot-designer/internal/units"
)

const prefsFile = "preferences.json"

// Preference keys.
const (
	keyUnitSystem   = "unitSystem"
	keyUnitSub      = "unitSubUnit"
	keyScale        = "drawingScale"
	keyWindowWidth  = "windowWidth"
	keyWindowHeight = "windowHeight"
)

// Prefs stores application preferences as a key-value map.
type Prefs struct {
	mu     sync.RWMutex
	values map[string]interface{}
	path   string
}

// Load reads preferences from ~/.config/wainscot-designer/preferences.json.
// Returns a Prefs with defaults if the file doesn't exist.
func Load() *Prefs {
	p := &Prefs{
		values: make(map[string]interface{}),
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	dir := filepath.Join(configDir, "wainscot-designer")
	p.path = filepath.Join(dir, prefsFile)

	data, err := os.ReadFile(p.path)
	if err != nil {
		return p
	}
	_ = json.Unmarshal(data, &p.values)
	return p
}

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	p.mu.RLock()
	data, err := json.MarshalIndent(p.values, "", "  ")
	p.mu.RUnlock()
	if err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

// UnitPreference returns the stored display-unit preference, or the default
// when nothing is stored or the stored pair is not a valid combination.
func (p *Prefs) UnitPreference() units.Preference {
	system := units.System(p.str(keyUnitSystem))
	sub := units.SubUnit(p.str(keyUnitSub))
	for _, valid := range units.SubUnits(system) {
		if sub == valid {
			return units.Preference{System: system, SubUnit: sub}
		}
	}
	return units.DefaultPreference()
}

// SetUnitPreference stores the display-unit preference.
func (p *Prefs) SetUnitPreference(pref units.Preference) {
	p.mu.Lock()
	p.values[keyUnitSystem] = string(pref.System)
	p.values[keyUnitSub] = string(pref.SubUnit)
	p.mu.Unlock()
}

// Scale returns the stored drawing scale, or fallback if not set.
func (p *Prefs) Scale(fallback float64) float64 {
	if v := p.num(keyScale); v > 0 {
		return v
	}
	return fallback
}

// SetScale stores the drawing scale.
func (p *Prefs) SetScale(pxPerMM float64) {
	p.mu.Lock()
	p.values[keyScale] = pxPerMM
	p.mu.Unlock()
}

// WindowSize returns the stored window size, or (0, 0) if not set.
func (p *Prefs) WindowSize() (w, h float64) {
	return p.num(keyWindowWidth), p.num(keyWindowHeight)
}

// SetWindowSize stores the window size.
func (p *Prefs) SetWindowSize(w, h float64) {
	p.mu.Lock()
	p.values[keyWindowWidth] = w
	p.values[keyWindowHeight] = h
	p.mu.Unlock()
}

func (p *Prefs) str(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (p *Prefs) num(key string) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return 0
}
