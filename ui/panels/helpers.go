package panels

import (
	"strconv"

	"fyne.io/fyne/v2/widget"

	"wainscot-designer/internal/app"
	"wainscot-designer/internal/units"
)

// dimensionEntry binds one Entry widget to one canonical dimension. Raw
// input is snapped to the unit's entry grid and converted to canonical
// millimeters before storing; non-numeric input is ignored and the stored
// value left unchanged. The entry text is re-derived from the canonical
// value on unit changes and clamps, never round-tripped through itself.
type dimensionEntry struct {
	state *app.State
	field app.Field
	entry *widget.Entry

	// applying suppresses the change callback while refresh rewrites the
	// entry text programmatically.
	applying bool
}

func newDimensionEntry(state *app.State, field app.Field) *dimensionEntry {
	de := &dimensionEntry{
		state: state,
		field: field,
		entry: widget.NewEntry(),
	}

	de.entry.OnChanged = func(text string) {
		if de.applying {
			return
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return // leave the stored value unchanged
		}
		pref := state.Units()
		v = units.RoundToGridFraction(v, pref.System, pref.SubUnit)
		state.SetDimension(field, units.ToCanonical(v, pref.System, pref.SubUnit))
	}

	de.refresh()
	return de
}

// refresh rewrites the entry text from the canonical value in the current
// display units.
func (de *dimensionEntry) refresh() {
	pref := de.state.Units()
	v := units.FromCanonical(de.state.Dimension(de.field), pref.System, pref.SubUnit)

	de.applying = true
	de.entry.SetText(strconv.FormatFloat(v, 'f', -1, 64))
	de.applying = false
}

// countStrings returns the decimal strings lo..hi for a count selector.
func countStrings(lo, hi int) []string {
	out := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, strconv.Itoa(i))
	}
	return out
}

// subUnitStrings returns the sub-unit names for a system.
func subUnitStrings(system units.System) []string {
	subs := units.SubUnits(system)
	out := make([]string, len(subs))
	for i, s := range subs {
		out[i] = string(s)
	}
	return out
}
