// Package panels provides the form controls that drive the design.
package panels

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"wainscot-designer/internal/app"
	"wainscot-designer/internal/units"
)

// SidePanel holds the design form: unit selection, wall dimensions, frame
// and trim member sizes, and panel counts. It is the input collaborator of
// the geometry engine; integer-only and range enforcement for the panel
// counts lives here, not in the engine.
type SidePanel struct {
	state     *app.State
	container fyne.CanvasObject

	systemSelect  *widget.Select
	subUnitSelect *widget.Select

	fields map[app.Field]*dimensionEntry

	columnsSelect *widget.Select
	rowsSelect    *widget.Select

	ceilingLabel *widget.Label

	// applying suppresses select callbacks during programmatic updates.
	applying bool
}

// NewSidePanel creates the side panel and wires it to the state.
func NewSidePanel(state *app.State) *SidePanel {
	sp := &SidePanel{
		state:  state,
		fields: make(map[app.Field]*dimensionEntry),
	}

	unitsCard := sp.buildUnitsCard()
	wallCard := sp.buildDimensionCard("Wall", app.WallFields())
	frameCard := sp.buildDimensionCard("Frame Members", app.FrameFields())
	trimCard := sp.buildTrimCard()
	panelsCard := sp.buildPanelsCard()

	sp.container = container.NewVScroll(container.NewVBox(
		unitsCard,
		wallCard,
		frameCard,
		trimCard,
		panelsCard,
	))

	state.On(app.EventUnitsChanged, func(interface{}) {
		sp.refreshAll()
	})
	state.On(app.EventChairRailClamped, func(interface{}) {
		if de, ok := sp.fields[app.FieldChairRail]; ok {
			de.refresh()
		}
		sp.updateCeilingLabel()
	})
	state.On(app.EventStyleApplied, func(interface{}) {
		sp.refreshAll()
	})
	state.On(app.EventLayoutChanged, func(interface{}) {
		sp.updateCeilingLabel()
	})

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

func (sp *SidePanel) buildUnitsCard() fyne.CanvasObject {
	pref := sp.state.Units()

	sp.subUnitSelect = widget.NewSelect(subUnitStrings(pref.System), func(selected string) {
		if sp.applying {
			return
		}
		cur := sp.state.Units()
		sp.state.SetUnits(units.Preference{System: cur.System, SubUnit: units.SubUnit(selected)})
	})
	sp.subUnitSelect.SetSelected(string(pref.SubUnit))

	sp.systemSelect = widget.NewSelect(
		[]string{string(units.SystemImperial), string(units.SystemMetric)},
		func(selected string) {
			if sp.applying {
				return
			}
			system := units.System(selected)
			// Switching systems lands on the system's first sub-unit.
			sub := units.SubUnits(system)[0]
			sp.state.SetUnits(units.Preference{System: system, SubUnit: sub})
		},
	)
	sp.systemSelect.SetSelected(string(pref.System))

	form := widget.NewForm(
		widget.NewFormItem("System", sp.systemSelect),
		widget.NewFormItem("Unit", sp.subUnitSelect),
	)
	return widget.NewCard("Units", "", form)
}

func (sp *SidePanel) buildDimensionCard(title string, fields []app.Field) fyne.CanvasObject {
	items := make([]*widget.FormItem, 0, len(fields))
	for _, f := range fields {
		de := newDimensionEntry(sp.state, f)
		sp.fields[f] = de
		items = append(items, widget.NewFormItem(f.String(), de.entry))
	}
	return widget.NewCard(title, "", widget.NewForm(items...))
}

func (sp *SidePanel) buildTrimCard() fyne.CanvasObject {
	items := make([]*widget.FormItem, 0, len(app.TrimFields())+1)
	for _, f := range app.TrimFields() {
		de := newDimensionEntry(sp.state, f)
		sp.fields[f] = de
		items = append(items, widget.NewFormItem(f.String(), de.entry))
	}

	sp.ceilingLabel = widget.NewLabel("")
	sp.ceilingLabel.Wrapping = fyne.TextWrapWord
	sp.updateCeilingLabel()

	return widget.NewCard("Trim", "",
		container.NewVBox(widget.NewForm(items...), sp.ceilingLabel))
}

func (sp *SidePanel) buildPanelsCard() fyne.CanvasObject {
	columns, rows := sp.state.Grid()

	sp.columnsSelect = widget.NewSelect(countStrings(app.MinColumns, app.MaxColumns), func(selected string) {
		if sp.applying {
			return
		}
		if n, err := strconv.Atoi(selected); err == nil {
			_, r := sp.state.Grid()
			sp.state.SetGrid(n, r)
		}
	})
	sp.columnsSelect.SetSelected(strconv.Itoa(columns))

	sp.rowsSelect = widget.NewSelect(countStrings(app.MinRows, app.MaxRows), func(selected string) {
		if sp.applying {
			return
		}
		if n, err := strconv.Atoi(selected); err == nil {
			c, _ := sp.state.Grid()
			sp.state.SetGrid(c, n)
		}
	})
	sp.rowsSelect.SetSelected(strconv.Itoa(rows))

	form := widget.NewForm(
		widget.NewFormItem("Panels Across", sp.columnsSelect),
		widget.NewFormItem("Panel Rows", sp.rowsSelect),
	)
	return widget.NewCard("Panels", "", form)
}

// refreshAll re-derives every control from the canonical state.
func (sp *SidePanel) refreshAll() {
	sp.applying = true

	pref := sp.state.Units()
	sp.systemSelect.SetSelected(string(pref.System))
	sp.subUnitSelect.Options = subUnitStrings(pref.System)
	sp.subUnitSelect.SetSelected(string(pref.SubUnit))
	sp.subUnitSelect.Refresh()

	columns, rows := sp.state.Grid()
	sp.columnsSelect.SetSelected(strconv.Itoa(columns))
	sp.rowsSelect.SetSelected(strconv.Itoa(rows))

	sp.applying = false

	for _, de := range sp.fields {
		de.refresh()
	}
	sp.updateCeilingLabel()
}

// updateCeilingLabel shows the current chair-rail ceiling so the silent
// clamp is at least visible.
func (sp *SidePanel) updateCeilingLabel() {
	if sp.ceilingLabel == nil {
		return
	}
	sp.ceilingLabel.SetText(fmt.Sprintf("Chair rail max: %s",
		sp.state.FormatLength(sp.state.ChairRailCeiling())))
}
