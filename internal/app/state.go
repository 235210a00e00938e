// Package app provides the application state, events, and the synchronous
// recompute pipeline that derives the drawing from the canonical design
// values.
package app

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wainscot-designer/internal/layout"
	"wainscot-designer/internal/style"
	"wainscot-designer/internal/units"
)

// stateLog carries the module field for all state logging.
var stateLog zerolog.Logger = log.With().Str("module", "state").Logger()

// Field identifies one of the physical dimensions of the design. A single
// generic accessor pair serves all of them; there are no per-field update
// functions.
type Field int

const (
	FieldWallWidth Field = iota
	FieldWallHeight
	FieldTopRail
	FieldBottomRail
	FieldStile
	FieldPanelMolding
	FieldWainscotCap
	FieldChairRail
	FieldBaseboard
	FieldShoeMolding

	numFields
)

func (f Field) String() string {
	switch f {
	case FieldWallWidth:
		return "Wall Width"
	case FieldWallHeight:
		return "Wall Height"
	case FieldTopRail:
		return "Top Rail"
	case FieldBottomRail:
		return "Bottom Rail"
	case FieldStile:
		return "Stile"
	case FieldPanelMolding:
		return "Panel Molding"
	case FieldWainscotCap:
		return "Wainscot Cap"
	case FieldChairRail:
		return "Chair Rail"
	case FieldBaseboard:
		return "Baseboard"
	case FieldShoeMolding:
		return "Shoe Molding"
	default:
		return "Unknown"
	}
}

// WallFields lists the fields of the wall card, in form order.
func WallFields() []Field {
	return []Field{FieldWallWidth, FieldWallHeight}
}

// FrameFields lists the fields of the frame card, in form order.
func FrameFields() []Field {
	return []Field{FieldTopRail, FieldBottomRail, FieldStile, FieldPanelMolding}
}

// TrimFields lists the fields of the trim card, in form order.
func TrimFields() []Field {
	return []Field{FieldWainscotCap, FieldChairRail, FieldBaseboard, FieldShoeMolding}
}

// Panel count bounds enforced by the input controls.
const (
	MinColumns = 1
	MaxColumns = 10
	MinRows    = 1
	MaxRows    = 5
)

// EventType identifies different application events.
type EventType int

const (
	EventLayoutChanged EventType = iota
	EventUnitsChanged
	EventChairRailClamped
	EventStyleApplied
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the canonical design values and their derived drawing. All
// dimensions are stored in canonical millimeters; the derived layout is in
// drawing-space pixels. Every mutation synchronously recomputes the whole
// layout before listeners observe the change, so no torn intermediate state
// is ever visible.
type State struct {
	mu sync.RWMutex

	dims    [numFields]float64 // canonical mm
	columns int
	rows    int

	pref  units.Preference
	scale float64 // drawing pixels per millimeter

	layout layout.Layout

	listeners map[EventType][]EventListener
}

// DefaultScale is the startup drawing scale in pixels per millimeter.
const DefaultScale = 0.2

// NewState creates a state seeded from the Classic Colonial preset on a
// 12 ft by 8 ft wall.
func NewState() *State {
	s := &State{
		pref:      units.DefaultPreference(),
		scale:     DefaultScale,
		listeners: make(map[EventType][]EventListener),
	}
	s.dims[FieldWallWidth] = units.ToCanonical(144, units.SystemImperial, units.UnitInches)
	s.dims[FieldWallHeight] = units.ToCanonical(96, units.SystemImperial, units.UnitInches)
	s.applyStyleLocked(style.ClassicColonial())
	s.recomputeLocked()
	return s
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Units returns the current display-unit preference.
func (s *State) Units() units.Preference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pref
}

// SetUnits changes the display-unit preference. Canonical dimensions are
// untouched; the layout is recomputed so measurement labels re-derive.
func (s *State) SetUnits(pref units.Preference) {
	s.mu.Lock()
	s.pref = pref
	s.recomputeLocked()
	s.mu.Unlock()

	s.Emit(EventUnitsChanged, pref)
	s.Emit(EventLayoutChanged, nil)
}

// Dimension returns a canonical dimension in millimeters.
func (s *State) Dimension(f Field) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dims[f]
}

// SetDimension stores a canonical dimension and recomputes the layout.
// Setting the wall height re-validates the chair-rail ceiling and silently
// clamps the chair rail when the new height makes it invalid; setting the
// chair rail itself is clamped the same way. Clamping is a correction, not
// an error.
func (s *State) SetDimension(f Field, mm float64) {
	s.mu.Lock()
	s.dims[f] = mm

	clamped := false
	var clampedTo float64
	switch f {
	case FieldWallHeight, FieldChairRail:
		ceiling := units.ChairRailCeiling(s.dims[FieldWallHeight])
		if s.dims[FieldChairRail] > ceiling {
			stateLog.Debug().
				Float64("chair_rail_mm", s.dims[FieldChairRail]).
				Float64("ceiling_mm", ceiling).
				Msg("chair rail clamped")
			s.dims[FieldChairRail] = ceiling
			clamped = true
			clampedTo = ceiling
		}
	}

	s.recomputeLocked()
	s.mu.Unlock()

	if clamped {
		s.Emit(EventChairRailClamped, clampedTo)
	}
	s.Emit(EventLayoutChanged, nil)
}

// ChairRailCeiling returns the current maximum valid chair-rail height in
// millimeters.
func (s *State) ChairRailCeiling() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return units.ChairRailCeiling(s.dims[FieldWallHeight])
}

// Grid returns the panel counts.
func (s *State) Grid() (columns, rows int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.columns, s.rows
}

// SetGrid stores the panel counts and recomputes the layout. Counts below 1
// are raised to 1; the geometry engine must never divide by zero.
func (s *State) SetGrid(columns, rows int) {
	if columns < MinColumns {
		columns = MinColumns
	}
	if rows < MinRows {
		rows = MinRows
	}

	s.mu.Lock()
	s.columns = columns
	s.rows = rows
	s.recomputeLocked()
	s.mu.Unlock()

	s.Emit(EventLayoutChanged, nil)
}

// Scale returns the drawing scale in pixels per millimeter.
func (s *State) Scale() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scale
}

// SetScale changes the drawing scale and recomputes the layout.
func (s *State) SetScale(pxPerMM float64) {
	if pxPerMM <= 0 {
		return
	}
	s.mu.Lock()
	s.scale = pxPerMM
	s.recomputeLocked()
	s.mu.Unlock()

	s.Emit(EventLayoutChanged, nil)
}

// ApplyStyle overwrites the frame and trim members and the panel grid from
// a preset. Wall dimensions are kept.
func (s *State) ApplyStyle(st *style.Style) {
	if st == nil {
		return
	}

	s.mu.Lock()
	s.applyStyleLocked(st)
	s.recomputeLocked()
	s.mu.Unlock()

	stateLog.Info().Str("style", st.Name).Msg("style applied")
	s.Emit(EventStyleApplied, st.Name)
	s.Emit(EventLayoutChanged, nil)
}

func (s *State) applyStyleLocked(st *style.Style) {
	s.dims[FieldTopRail] = st.TopRailMM
	s.dims[FieldBottomRail] = st.BottomRailMM
	s.dims[FieldStile] = st.StileMM
	s.dims[FieldPanelMolding] = st.PanelMoldingMM
	s.dims[FieldWainscotCap] = st.WainscotCapMM
	s.dims[FieldChairRail] = st.ChairRailMM
	s.dims[FieldBaseboard] = st.BaseboardMM
	s.dims[FieldShoeMolding] = st.ShoeMoldingMM
	s.columns = st.Columns
	s.rows = st.Rows

	ceiling := units.ChairRailCeiling(s.dims[FieldWallHeight])
	if s.dims[FieldChairRail] > ceiling {
		s.dims[FieldChairRail] = ceiling
	}
}

// Layout returns the current derived drawing.
func (s *State) Layout() layout.Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layout
}

// FormatLength renders a canonical length in the current display units,
// with the unit label appended.
func (s *State) FormatLength(mm float64) string {
	s.mu.RLock()
	pref := s.pref
	s.mu.RUnlock()

	v := units.FromCanonical(mm, pref.System, pref.SubUnit)
	return units.FormatDisplay(v, pref.System, pref.SubUnit) + " " +
		units.UnitLabel(pref.System, pref.SubUnit)
}

// recomputeLocked rebuilds the entire layout from the canonical values.
// Caller must hold s.mu. Conversions run before geometry; there is no
// incremental update and no caching.
func (s *State) recomputeLocked() {
	scale := s.scale
	pref := s.pref

	format := func(px float64) string {
		mm := px / scale
		v := units.FromCanonical(mm, pref.System, pref.SubUnit)
		return units.FormatDisplay(v, pref.System, pref.SubUnit) + " " +
			units.UnitLabel(pref.System, pref.SubUnit)
	}

	s.layout = layout.Compute(layout.Params{
		WallWidth:    s.dims[FieldWallWidth] * scale,
		WallHeight:   s.dims[FieldWallHeight] * scale,
		TopRail:      s.dims[FieldTopRail] * scale,
		BottomRail:   s.dims[FieldBottomRail] * scale,
		Stile:        s.dims[FieldStile] * scale,
		PanelMolding: s.dims[FieldPanelMolding] * scale,
		WainscotCap:  s.dims[FieldWainscotCap] * scale,
		ChairRail:    s.dims[FieldChairRail] * scale,
		Baseboard:    s.dims[FieldBaseboard] * scale,
		ShoeMolding:  s.dims[FieldShoeMolding] * scale,
		Columns:      s.columns,
		Rows:         s.rows,
		Format:       format,
	})
}
