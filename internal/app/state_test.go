package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wainscot-designer/internal/style"
	"wainscot-designer/internal/units"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()

	assert.Equal(t, units.DefaultPreference(), s.Units())
	assert.Equal(t, DefaultScale, s.Scale())
	assert.Equal(t, 144*25.4, s.Dimension(FieldWallWidth))
	assert.Equal(t, 96*25.4, s.Dimension(FieldWallHeight))

	// Seeded from Classic Colonial.
	preset := style.ClassicColonial()
	assert.Equal(t, preset.TopRailMM, s.Dimension(FieldTopRail))
	cols, rows := s.Grid()
	assert.Equal(t, preset.Columns, cols)
	assert.Equal(t, preset.Rows, rows)

	// Derived drawing is available immediately.
	l := s.Layout()
	assert.Equal(t, 144*25.4*DefaultScale, l.Wall.Width)
	assert.Len(t, l.Panels, cols*rows)
}

func TestSetDimensionRecomputes(t *testing.T) {
	s := NewState()
	s.SetDimension(FieldWallWidth, 3000)

	assert.Equal(t, 3000.0, s.Dimension(FieldWallWidth))
	assert.Equal(t, 3000*s.Scale(), s.Layout().Wall.Width)
}

func TestLayoutUpdatedBeforeListeners(t *testing.T) {
	s := NewState()

	var seen float64
	s.On(EventLayoutChanged, func(interface{}) {
		seen = s.Layout().Wall.Width
	})

	s.SetDimension(FieldWallWidth, 2500)
	assert.Equal(t, 2500*s.Scale(), seen)
}

func TestChairRailClampOnWallHeightChange(t *testing.T) {
	s := NewState()
	s.SetDimension(FieldChairRail, 250)

	var clampedTo float64
	clamps := 0
	s.On(EventChairRailClamped, func(data interface{}) {
		clampedTo = data.(float64)
		clamps++
	})

	// Ceiling drops to 200 mm; the chair rail follows silently.
	s.SetDimension(FieldWallHeight, 1000)

	assert.Equal(t, 200.0, s.ChairRailCeiling())
	assert.Equal(t, 200.0, s.Dimension(FieldChairRail))
	assert.Equal(t, 1, clamps)
	assert.Equal(t, 200.0, clampedTo)
}

func TestChairRailBelowCeilingUntouched(t *testing.T) {
	s := NewState()
	s.SetDimension(FieldChairRail, 150)

	clamps := 0
	s.On(EventChairRailClamped, func(interface{}) { clamps++ })

	s.SetDimension(FieldWallHeight, 1000)

	assert.Equal(t, 150.0, s.Dimension(FieldChairRail))
	assert.Zero(t, clamps)
}

func TestSetChairRailAboveCeilingClamps(t *testing.T) {
	s := NewState()
	s.SetDimension(FieldWallHeight, 1000)

	s.SetDimension(FieldChairRail, 500)
	assert.Equal(t, 200.0, s.Dimension(FieldChairRail))
}

func TestSetGridFloorsAtOne(t *testing.T) {
	s := NewState()
	s.SetGrid(0, -3)

	cols, rows := s.Grid()
	assert.Equal(t, 1, cols)
	assert.Equal(t, 1, rows)
	assert.Len(t, s.Layout().Panels, 1)
}

func TestSetGridRecomputesPanels(t *testing.T) {
	s := NewState()
	s.SetGrid(5, 2)
	assert.Len(t, s.Layout().Panels, 10)
}

func TestSetUnitsKeepsCanonicalValues(t *testing.T) {
	s := NewState()
	before := s.Dimension(FieldWallWidth)

	unitsChanged := 0
	s.On(EventUnitsChanged, func(interface{}) { unitsChanged++ })

	s.SetUnits(units.Preference{System: units.SystemMetric, SubUnit: units.UnitCM})

	assert.Equal(t, before, s.Dimension(FieldWallWidth))
	assert.Equal(t, units.SystemMetric, s.Units().System)
	assert.Equal(t, 1, unitsChanged)
}

func TestSetScaleRejectsNonPositive(t *testing.T) {
	s := NewState()
	s.SetScale(0)
	assert.Equal(t, DefaultScale, s.Scale())

	s.SetScale(0.5)
	assert.Equal(t, 0.5, s.Scale())
	assert.Equal(t, s.Dimension(FieldWallWidth)*0.5, s.Layout().Wall.Width)
}

func TestApplyStyleOverwritesMembersKeepsWall(t *testing.T) {
	s := NewState()
	s.SetDimension(FieldWallWidth, 4000)

	var applied string
	s.On(EventStyleApplied, func(data interface{}) { applied = data.(string) })

	preset := style.Get("Craftsman")
	require.NotNil(t, preset)
	s.ApplyStyle(preset)

	assert.Equal(t, 4000.0, s.Dimension(FieldWallWidth))
	assert.Equal(t, preset.StileMM, s.Dimension(FieldStile))
	cols, rows := s.Grid()
	assert.Equal(t, preset.Columns, cols)
	assert.Equal(t, preset.Rows, rows)
	assert.Equal(t, "Craftsman", applied)
}

func TestApplyStyleNilIsNoOp(t *testing.T) {
	s := NewState()
	before := s.Dimension(FieldStile)
	s.ApplyStyle(nil)
	assert.Equal(t, before, s.Dimension(FieldStile))
}

func TestFormatLength(t *testing.T) {
	s := NewState()
	assert.Equal(t, "10 ¼ inches", s.FormatLength(10.25*25.4))

	s.SetUnits(units.Preference{System: units.SystemMetric, SubUnit: units.UnitMM})
	assert.Equal(t, "914 mm", s.FormatLength(914))
}

func TestArrowLabelsFollowUnits(t *testing.T) {
	s := NewState()
	s.SetDimension(FieldWallWidth, 1000)
	s.SetUnits(units.Preference{System: units.SystemMetric, SubUnit: units.UnitMM})

	l := s.Layout()
	require.NotEmpty(t, l.Arrows)
	assert.Equal(t, "1000 mm", l.Arrows[0].Label)
}
