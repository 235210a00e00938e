// Package style provides named wainscot style presets and their registry.
package style

import (
	"fmt"
	"sort"
)

// Style is a named set of default frame-member sizes, in canonical
// millimeters, plus a default panel grid.
type Style struct {
	Name string `json:"name"`

	TopRailMM      float64 `json:"top_rail_mm"`
	BottomRailMM   float64 `json:"bottom_rail_mm"`
	StileMM        float64 `json:"stile_mm"`
	PanelMoldingMM float64 `json:"panel_molding_mm"`

	WainscotCapMM float64 `json:"wainscot_cap_mm"`
	ChairRailMM   float64 `json:"chair_rail_mm"`
	BaseboardMM   float64 `json:"baseboard_mm"`
	ShoeMoldingMM float64 `json:"shoe_molding_mm"`

	Columns int `json:"columns"`
	Rows    int `json:"rows"`
}

// Validate checks the preset for internal consistency.
func (s *Style) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("style name is required")
	}
	if s.TopRailMM <= 0 || s.BottomRailMM <= 0 || s.StileMM <= 0 {
		return fmt.Errorf("style %q: rail and stile sizes must be positive", s.Name)
	}
	if s.PanelMoldingMM < 0 || s.WainscotCapMM < 0 || s.ChairRailMM < 0 ||
		s.BaseboardMM < 0 || s.ShoeMoldingMM < 0 {
		return fmt.Errorf("style %q: molding sizes must not be negative", s.Name)
	}
	if s.Columns < 1 || s.Rows < 1 {
		return fmt.Errorf("style %q: panel counts must be at least 1", s.Name)
	}
	return nil
}

const mmPerInch = 25.4

// ClassicColonial is a traditional raised-panel look: wide rails, generous
// panel molding, full baseboard stack.
func ClassicColonial() *Style {
	return &Style{
		Name:           "Classic Colonial",
		TopRailMM:      3 * mmPerInch,
		BottomRailMM:   3 * mmPerInch,
		StileMM:        3 * mmPerInch,
		PanelMoldingMM: 0.75 * mmPerInch,
		WainscotCapMM:  1.25 * mmPerInch,
		ChairRailMM:    2.5 * mmPerInch,
		BaseboardMM:    5.5 * mmPerInch,
		ShoeMoldingMM:  0.75 * mmPerInch,
		Columns:        4,
		Rows:           1,
	}
}

// ShakerFlat is a plain flat-panel style with no panel molding.
func ShakerFlat() *Style {
	return &Style{
		Name:           "Shaker Flat",
		TopRailMM:      2.5 * mmPerInch,
		BottomRailMM:   2.5 * mmPerInch,
		StileMM:        2.5 * mmPerInch,
		PanelMoldingMM: 0,
		WainscotCapMM:  1 * mmPerInch,
		ChairRailMM:    2 * mmPerInch,
		BaseboardMM:    4.5 * mmPerInch,
		ShoeMoldingMM:  0.5 * mmPerInch,
		Columns:        3,
		Rows:           1,
	}
}

// Craftsman uses heavy members and tall narrow panels.
func Craftsman() *Style {
	return &Style{
		Name:           "Craftsman",
		TopRailMM:      4 * mmPerInch,
		BottomRailMM:   4 * mmPerInch,
		StileMM:        4 * mmPerInch,
		PanelMoldingMM: 0.5 * mmPerInch,
		WainscotCapMM:  1.5 * mmPerInch,
		ChairRailMM:    3 * mmPerInch,
		BaseboardMM:    6 * mmPerInch,
		ShoeMoldingMM:  0.75 * mmPerInch,
		Columns:        5,
		Rows:           1,
	}
}

// PictureFrame is applied molding boxes on a flat wall: slim members, a
// double row of small panels.
func PictureFrame() *Style {
	return &Style{
		Name:           "Picture Frame",
		TopRailMM:      1.5 * mmPerInch,
		BottomRailMM:   1.5 * mmPerInch,
		StileMM:        1.5 * mmPerInch,
		PanelMoldingMM: 1 * mmPerInch,
		WainscotCapMM:  0.75 * mmPerInch,
		ChairRailMM:    2 * mmPerInch,
		BaseboardMM:    4 * mmPerInch,
		ShoeMoldingMM:  0.5 * mmPerInch,
		Columns:        4,
		Rows:           2,
	}
}

// Registry of known styles
var registry = make(map[string]*Style)

// Register adds a style to the registry.
func Register(s *Style) {
	registry[s.Name] = s
}

// Get returns a style by name, or nil.
func Get(name string) *Style {
	if s, ok := registry[name]; ok {
		return s
	}
	return nil
}

// List returns all registered style names, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(ClassicColonial())
	Register(ShakerFlat())
	Register(Craftsman())
	Register(PictureFrame())
}
