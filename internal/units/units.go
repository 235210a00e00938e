// Package units converts between the canonical internal unit (millimeters)
// and user-facing display units, including fractional-inch rounding and
// display formatting.
package units

import (
	"fmt"
	"math"
	"strconv"
)

// System identifies a measurement system.
type System string

const (
	SystemImperial System = "imperial"
	SystemMetric   System = "metric"
)

// SubUnit identifies a display unit within a system.
type SubUnit string

const (
	UnitInches SubUnit = "inches"
	UnitFeet   SubUnit = "feet"
	UnitMM     SubUnit = "mm"
	UnitCM     SubUnit = "cm"
	UnitM      SubUnit = "m"
)

// Preference is a user's display-unit selection. Changing it never alters
// canonical dimensions, only their displayed projection.
type Preference struct {
	System  System  `json:"system"`
	SubUnit SubUnit `json:"sub_unit"`
}

// DefaultPreference returns the startup unit selection.
func DefaultPreference() Preference {
	return Preference{System: SystemImperial, SubUnit: UnitInches}
}

// SubUnits returns the valid sub-units for a system, in menu order.
func SubUnits(system System) []SubUnit {
	if system == SystemImperial {
		return []SubUnit{UnitInches, UnitFeet}
	}
	return []SubUnit{UnitMM, UnitCM, UnitM}
}

// Millimeters per display unit.
const (
	mmPerInch = 25.4
	mmPerFoot = 304.8
)

// factor returns the canonical millimeters in one display unit.
func factor(system System, sub SubUnit) float64 {
	if system == SystemImperial {
		if sub == UnitFeet {
			return mmPerFoot
		}
		return mmPerInch
	}
	switch sub {
	case UnitCM:
		return 10
	case UnitM:
		return 1000
	default:
		return 1
	}
}

// ToCanonical converts a display-unit value to canonical millimeters.
// No rounding is applied.
func ToCanonical(value float64, system System, sub SubUnit) float64 {
	return value * factor(system, sub)
}

// FromCanonical converts canonical millimeters to a display-unit value,
// rounded to the unit's granularity: inches to the nearest 1/16, feet to
// 2 decimals, mm to integers, cm to 1 decimal, meters to 3 decimals.
func FromCanonical(mm float64, system System, sub SubUnit) float64 {
	v := mm / factor(system, sub)
	if system == SystemImperial {
		if sub == UnitFeet {
			return math.Round(v*100) / 100
		}
		return math.Round(v*16) / 16
	}
	switch sub {
	case UnitCM:
		return math.Round(v*10) / 10
	case UnitM:
		return math.Round(v*1000) / 1000
	default:
		return math.Round(v)
	}
}

// RoundToGridFraction snaps a raw display-unit input to the unit's entry
// grid before conversion to canonical. Only imperial inches snap (to the
// nearest 1/16); every other combination is the identity. Idempotent.
func RoundToGridFraction(value float64, system System, sub SubUnit) float64 {
	if system == SystemImperial && sub == UnitInches {
		return math.Round(value*16) / 16
	}
	return value
}

// InputStep returns the increment granularity for an input control showing
// the given unit. Has no effect on conversion correctness.
func InputStep(system System, sub SubUnit) float64 {
	if system == SystemImperial {
		if sub == UnitFeet {
			return 0.01
		}
		return 1.0 / 16.0
	}
	switch sub {
	case UnitCM:
		return 0.1
	case UnitM:
		return 0.001
	default:
		return 1
	}
}

// UnitLabel returns the sub-unit name verbatim.
func UnitLabel(system System, sub SubUnit) string {
	return string(sub)
}

// sixteenthGlyphs maps a sixteenth count (1..15) to its fraction glyph.
var sixteenthGlyphs = [16]string{
	1:  "¹⁄₁₆",
	2:  "⅛",
	3:  "³⁄₁₆",
	4:  "¼",
	5:  "⁵⁄₁₆",
	6:  "⅜",
	7:  "⁷⁄₁₆",
	8:  "½",
	9:  "⁹⁄₁₆",
	10: "⅝",
	11: "¹¹⁄₁₆",
	12: "¾",
	13: "¹³⁄₁₆",
	14: "⅞",
	15: "¹⁵⁄₁₆",
}

// fractionTolerance is the allowed floating-point drift, in inches, when
// matching a fractional inch to a canonical sixteenth.
const fractionTolerance = 1e-4

// FormatDisplay renders a display-unit value as label text. Imperial inches
// decompose into a whole part and a sixteenth-fraction glyph; a fractional
// part of at least 0.9999 carries into the whole. Values that do not sit on
// a canonical sixteenth fall back to plain 2-decimal rendering. Feet render
// with 2 decimals; metric values render as-is.
func FormatDisplay(value float64, system System, sub SubUnit) string {
	if system == SystemImperial && sub == UnitInches {
		return formatInches(value)
	}
	if system == SystemImperial && sub == UnitFeet {
		return fmt.Sprintf("%.2f", value)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatInches(value float64) string {
	neg := ""
	if value < 0 {
		neg = "-"
		value = -value
	}

	whole := math.Floor(value)
	frac := value - whole
	if frac >= 0.9999 {
		whole++
		frac = 0
	}

	sixteenths := frac * 16
	n := math.Round(sixteenths)
	if math.Abs(sixteenths-n) > fractionTolerance*16 {
		// Not on the sixteenth grid; fall back to decimal.
		return fmt.Sprintf("%s%.2f", neg, whole+frac)
	}

	switch {
	case n <= 0:
		return fmt.Sprintf("%s%d", neg, int(whole))
	case n >= 16:
		return fmt.Sprintf("%s%d", neg, int(whole)+1)
	case whole == 0:
		return neg + sixteenthGlyphs[int(n)]
	default:
		return fmt.Sprintf("%s%d %s", neg, int(whole), sixteenthGlyphs[int(n)])
	}
}

// maxChairRailMM is the fixed upper bound on chair-rail height (32 inches).
const maxChairRailMM = 32 * mmPerInch

// ChairRailCeiling returns the maximum valid chair-rail height in canonical
// millimeters for a wall of the given height: one fifth of the wall, capped
// at 32 inches.
func ChairRailCeiling(wallHeightMM float64) float64 {
	return math.Min(wallHeightMM/5, maxChairRailMM)
}
