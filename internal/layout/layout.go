// Package layout computes the rectangle set for a wainscoting elevation
// drawing: the outer frame, interior dividers, trim bands, panel openings,
// and measurement-arrow geometry. All computation is pure; the package does
// no I/O and never fails. Inputs and outputs are in drawing-space pixels
// with the origin at the top-left of the wall box.
package layout

import (
	"wainscot-designer/pkg/geometry"
)

// MemberKind identifies a frame or trim member in the drawing.
type MemberKind int

const (
	MemberTopRail MemberKind = iota
	MemberBottomRail
	MemberLeftStile
	MemberRightStile
	MemberDividerVertical
	MemberDividerHorizontal
	MemberWainscotCap
	MemberChairRail
	MemberBaseboard
	MemberShoeMolding
)

func (k MemberKind) String() string {
	switch k {
	case MemberTopRail:
		return "top rail"
	case MemberBottomRail:
		return "bottom rail"
	case MemberLeftStile:
		return "left stile"
	case MemberRightStile:
		return "right stile"
	case MemberDividerVertical:
		return "vertical divider"
	case MemberDividerHorizontal:
		return "horizontal divider"
	case MemberWainscotCap:
		return "wainscot cap"
	case MemberChairRail:
		return "chair rail"
	case MemberBaseboard:
		return "baseboard"
	case MemberShoeMolding:
		return "shoe molding"
	default:
		return "unknown"
	}
}

// Trim reports whether the member is a trim band rather than part of the
// panel frame.
func (k MemberKind) Trim() bool {
	switch k {
	case MemberWainscotCap, MemberChairRail, MemberBaseboard, MemberShoeMolding:
		return true
	}
	return false
}

// Member is a single frame or trim rectangle.
type Member struct {
	Kind MemberKind
	Rect geometry.Rect
}

// PanelCell is one panel opening, identified by its grid coordinates.
// Molding is the inner outline of the panel molding, inset from the opening
// by the molding width.
type PanelCell struct {
	Row     int
	Col     int
	Rect    geometry.Rect
	Molding geometry.Rect
}

// Arrow is a dimension annotation: a line between two points carrying a
// formatted measurement label.
type Arrow struct {
	Start geometry.Point2D
	End   geometry.Point2D
	Label string
}

// Offsets of the dimension arrows from the wall box edges.
const (
	overallArrowOffset = 30
	panelArrowOffset   = 15
)

// Params are the inputs to a layout computation. All lengths are
// drawing-space pixels. Columns and Rows must be at least 1; the input
// controls enforce this, the engine does not. Thicknesses of zero are valid;
// thicknesses large relative to the wall produce degenerate rectangles,
// returned as-is.
type Params struct {
	WallWidth  float64
	WallHeight float64

	TopRail      float64
	BottomRail   float64
	Stile        float64
	PanelMolding float64

	WainscotCap float64
	ChairRail   float64
	Baseboard   float64
	ShoeMolding float64

	Columns int
	Rows    int

	// Format renders a drawing-space length as a measurement label.
	// A nil Format produces empty labels.
	Format func(px float64) string
}

// Layout is the complete rectangle set for one drawing. Produced wholesale
// on every recomputation, never mutated.
type Layout struct {
	Wall    geometry.Rect
	Members []Member
	Panels  []PanelCell
	Arrows  []Arrow
}

// PanelAt returns the panel cell at the given grid coordinates, or nil.
func (l *Layout) PanelAt(row, col int) *PanelCell {
	for i := range l.Panels {
		if l.Panels[i].Row == row && l.Panels[i].Col == col {
			return &l.Panels[i]
		}
	}
	return nil
}

// Bounds returns the bounding box of the wall plus all trim and arrows,
// which extends above and to the right of the wall box.
func (l *Layout) Bounds() geometry.Rect {
	rects := []geometry.Rect{l.Wall}
	for _, m := range l.Members {
		rects = append(rects, m.Rect)
	}
	for _, a := range l.Arrows {
		rects = append(rects, geometry.Rect{X: a.Start.X, Y: a.Start.Y})
		rects = append(rects, geometry.Rect{X: a.End.X, Y: a.End.Y})
	}
	return geometry.BoundingBox(rects)
}

// Compute derives the full layout from the given parameters. The outer
// frame, interior dividers, and panel cells exactly tile the wall rectangle
// when member thicknesses are uniform and counts are positive.
func Compute(p Params) Layout {
	l := Layout{
		Wall: geometry.NewRect(0, 0, p.WallWidth, p.WallHeight),
	}

	l.Members = append(l.Members, frameMembers(p)...)
	l.Members = append(l.Members, dividers(p)...)
	l.Members = append(l.Members, trimBands(p)...)
	l.Panels = panelCells(p)
	l.Arrows = arrows(p, l.Panels)

	return l
}

// frameMembers places the outer frame: rails spanning the full width at the
// top and bottom edges, stiles spanning the full height at the left and
// right edges.
func frameMembers(p Params) []Member {
	return []Member{
		{MemberTopRail, geometry.NewRect(0, 0, p.WallWidth, p.TopRail)},
		{MemberBottomRail, geometry.NewRect(0, p.WallHeight-p.BottomRail, p.WallWidth, p.BottomRail)},
		{MemberLeftStile, geometry.NewRect(0, 0, p.Stile, p.WallHeight)},
		{MemberRightStile, geometry.NewRect(p.WallWidth-p.Stile, 0, p.Stile, p.WallHeight)},
	}
}

// dividers places one interior member centered on each internal section
// boundary, spanning the full perpendicular dimension. Centering lets the
// two adjacent panel cells read the shared divider symmetrically.
func dividers(p Params) []Member {
	var members []Member

	sectionW := p.WallWidth / float64(p.Columns)
	for i := 1; i < p.Columns; i++ {
		x := float64(i)*sectionW - p.Stile/2
		members = append(members, Member{
			Kind: MemberDividerVertical,
			Rect: geometry.NewRect(x, 0, p.Stile, p.WallHeight),
		})
	}

	sectionH := p.WallHeight / float64(p.Rows)
	for i := 1; i < p.Rows; i++ {
		y := float64(i)*sectionH - p.BottomRail/2
		members = append(members, Member{
			Kind: MemberDividerHorizontal,
			Rect: geometry.NewRect(0, y, p.WallWidth, p.BottomRail),
		})
	}

	return members
}

// trimBands places the moldings that dress the panel frame: the wainscot cap
// directly above the wall box with the chair rail on top of it, and the
// baseboard overlaying the bottom of the box with the shoe molding in front
// at the floor line.
func trimBands(p Params) []Member {
	return []Member{
		{MemberChairRail, geometry.NewRect(0, -p.WainscotCap-p.ChairRail, p.WallWidth, p.ChairRail)},
		{MemberWainscotCap, geometry.NewRect(0, -p.WainscotCap, p.WallWidth, p.WainscotCap)},
		{MemberBaseboard, geometry.NewRect(0, p.WallHeight-p.Baseboard, p.WallWidth, p.Baseboard)},
		{MemberShoeMolding, geometry.NewRect(0, p.WallHeight-p.ShoeMolding, p.WallWidth, p.ShoeMolding)},
	}
}

// panelCells computes the panel openings. Each cell is inset from its
// section by the full member thickness along outer wall edges and by half
// the shared divider thickness along interior boundaries, so that cells and
// members tile each section exactly.
func panelCells(p Params) []PanelCell {
	sectionW := p.WallWidth / float64(p.Columns)
	sectionH := p.WallHeight / float64(p.Rows)

	cells := make([]PanelCell, 0, p.Rows*p.Columns)
	for row := 0; row < p.Rows; row++ {
		top := p.BottomRail / 2
		if row == 0 {
			top = p.TopRail
		}
		bottom := p.BottomRail / 2
		if row == p.Rows-1 {
			bottom = p.BottomRail
		}

		for col := 0; col < p.Columns; col++ {
			left := p.Stile / 2
			if col == 0 {
				left = p.Stile
			}
			right := p.Stile / 2
			if col == p.Columns-1 {
				right = p.Stile
			}

			rect := geometry.NewRect(
				float64(col)*sectionW+left,
				float64(row)*sectionH+top,
				sectionW-left-right,
				sectionH-top-bottom,
			)
			cells = append(cells, PanelCell{
				Row:     row,
				Col:     col,
				Rect:    rect,
				Molding: rect.Inset(p.PanelMolding),
			})
		}
	}
	return cells
}

// arrows builds the three dimension annotations: overall width above the top
// edge, overall height right of the right edge, and first-panel width above
// the first panel cell's x-extent.
func arrows(p Params, panels []PanelCell) []Arrow {
	format := p.Format
	if format == nil {
		format = func(float64) string { return "" }
	}

	out := []Arrow{
		{
			Start: geometry.NewPoint2D(0, -overallArrowOffset),
			End:   geometry.NewPoint2D(p.WallWidth, -overallArrowOffset),
			Label: format(p.WallWidth),
		},
		{
			Start: geometry.NewPoint2D(p.WallWidth+overallArrowOffset, 0),
			End:   geometry.NewPoint2D(p.WallWidth+overallArrowOffset, p.WallHeight),
			Label: format(p.WallHeight),
		},
	}

	if len(panels) > 0 {
		first := panels[0].Rect
		out = append(out, Arrow{
			Start: geometry.NewPoint2D(first.X, -panelArrowOffset),
			End:   geometry.NewPoint2D(first.Right(), -panelArrowOffset),
			Label: format(first.Width),
		})
	}
	return out
}
