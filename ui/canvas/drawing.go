package canvas

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"

	"wainscot-designer/internal/app"
	"wainscot-designer/internal/layout"
	"wainscot-designer/pkg/geometry"
)

const (
	outlineWidth   = 1.5
	dimensionWidth = 1.2
	arrowheadLen   = 7
	arrowheadHalf  = 3
	labelTextSize  = 13
	labelGap       = 4
)

// rebuild reconstructs the canvas object tree from the current layout and
// zoom. The whole tree is rebuilt on every change; the layout is small
// enough that partial invalidation would buy nothing.
func (dc *DrawingCanvas) rebuild() {
	l := dc.layout
	bounds := l.Bounds()

	// Offset that maps drawing coordinates (which extend above y=0 for trim
	// and arrows) into positive canvas space with a margin.
	ox := drawingMargin - bounds.X
	oy := drawingMargin - bounds.Y

	totalW := float32((bounds.Width + 2*drawingMargin) * dc.zoom)
	totalH := float32((bounds.Height + 2*drawingMargin) * dc.zoom)

	objects := make([]fyne.CanvasObject, 0, 8+len(l.Members)+3*len(l.Panels)+len(l.Arrows))

	// Backdrop establishes the scrollable area.
	backdrop := fynecanvas.NewRectangle(app.ColorBackground)
	backdrop.SetMinSize(fyne.NewSize(totalW, totalH))
	backdrop.Resize(fyne.NewSize(totalW, totalH))
	objects = append(objects, backdrop)

	// Wall box.
	objects = append(objects, dc.rectObject(l.Wall, ox, oy, app.ColorWallFill, app.ColorOutline))

	// Frame members, dividers, then trim bands in layout order; the
	// baseboard paints over the bottom rail and the shoe over the baseboard.
	for _, m := range l.Members {
		fill := app.ColorFrame
		if m.Kind.Trim() {
			fill = app.ColorTrim
		}
		objects = append(objects, dc.rectObject(m.Rect, ox, oy, fill, app.ColorOutline))
	}

	// Panel openings with their molding outlines.
	for _, cell := range l.Panels {
		objects = append(objects, dc.rectObject(cell.Rect, ox, oy, app.ColorPanelFill, app.ColorOutline))
		if cell.Molding.Width > 0 && cell.Molding.Height > 0 &&
			cell.Molding != cell.Rect {
			objects = append(objects, dc.rectObject(cell.Molding, ox, oy, color.Transparent, app.ColorMoldingLn))
		}
	}

	// Dimension arrows with labels.
	for _, a := range l.Arrows {
		objects = append(objects, dc.arrowObjects(a, ox, oy)...)
	}

	dc.content.Objects = objects
	dc.content.Resize(fyne.NewSize(totalW, totalH))
	dc.content.Refresh()
	dc.scroll.Refresh()
}

// pos maps a drawing-space point to a canvas position.
func (dc *DrawingCanvas) pos(x, y, ox, oy float64) fyne.Position {
	return fyne.NewPos(float32((x+ox)*dc.zoom), float32((y+oy)*dc.zoom))
}

// rectObject builds a filled, outlined rectangle for a drawing-space rect.
func (dc *DrawingCanvas) rectObject(r geometry.Rect, ox, oy float64, fill, stroke color.Color) fyne.CanvasObject {
	rect := fynecanvas.NewRectangle(fill)
	rect.StrokeColor = stroke
	rect.StrokeWidth = outlineWidth
	rect.Move(dc.pos(r.X, r.Y, ox, oy))
	rect.Resize(fyne.NewSize(float32(r.Width*dc.zoom), float32(r.Height*dc.zoom)))
	return rect
}

// arrowObjects builds the dimension line, arrowheads, and label for one
// measurement arrow. Horizontal arrows carry their label centered above the
// line; vertical arrows carry it to the right, rotated is not available so
// the text stays horizontal.
func (dc *DrawingCanvas) arrowObjects(a layout.Arrow, ox, oy float64) []fyne.CanvasObject {
	objects := []fyne.CanvasObject{
		dc.lineObject(a.Start.X, a.Start.Y, a.End.X, a.End.Y, ox, oy),
	}

	horizontal := a.Start.Y == a.End.Y
	if horizontal {
		// Heads point outward from inside the measured span.
		objects = append(objects,
			dc.lineObject(a.Start.X, a.Start.Y, a.Start.X+arrowheadLen, a.Start.Y-arrowheadHalf, ox, oy),
			dc.lineObject(a.Start.X, a.Start.Y, a.Start.X+arrowheadLen, a.Start.Y+arrowheadHalf, ox, oy),
			dc.lineObject(a.End.X, a.End.Y, a.End.X-arrowheadLen, a.End.Y-arrowheadHalf, ox, oy),
			dc.lineObject(a.End.X, a.End.Y, a.End.X-arrowheadLen, a.End.Y+arrowheadHalf, ox, oy),
		)
	} else {
		objects = append(objects,
			dc.lineObject(a.Start.X, a.Start.Y, a.Start.X-arrowheadHalf, a.Start.Y+arrowheadLen, ox, oy),
			dc.lineObject(a.Start.X, a.Start.Y, a.Start.X+arrowheadHalf, a.Start.Y+arrowheadLen, ox, oy),
			dc.lineObject(a.End.X, a.End.Y, a.End.X-arrowheadHalf, a.End.Y-arrowheadLen, ox, oy),
			dc.lineObject(a.End.X, a.End.Y, a.End.X+arrowheadHalf, a.End.Y-arrowheadLen, ox, oy),
		)
	}

	if a.Label != "" {
		objects = append(objects, dc.labelObject(a, horizontal, ox, oy))
	}
	return objects
}

func (dc *DrawingCanvas) lineObject(x1, y1, x2, y2, ox, oy float64) fyne.CanvasObject {
	line := fynecanvas.NewLine(app.ColorDimension)
	line.StrokeWidth = dimensionWidth
	line.Position1 = dc.pos(x1, y1, ox, oy)
	line.Position2 = dc.pos(x2, y2, ox, oy)
	return line
}

func (dc *DrawingCanvas) labelObject(a layout.Arrow, horizontal bool, ox, oy float64) fyne.CanvasObject {
	text := fynecanvas.NewText(a.Label, app.ColorDimension)
	text.TextSize = labelTextSize
	measured := fyne.MeasureText(a.Label, text.TextSize, text.TextStyle)

	if horizontal {
		mid := dc.pos((a.Start.X+a.End.X)/2, a.Start.Y, ox, oy)
		text.Move(fyne.NewPos(
			mid.X-measured.Width/2,
			mid.Y-measured.Height-labelGap,
		))
	} else {
		mid := dc.pos(a.Start.X, (a.Start.Y+a.End.Y)/2, ox, oy)
		text.Move(fyne.NewPos(
			mid.X+labelGap,
			mid.Y-measured.Height/2,
		))
	}
	return text
}
