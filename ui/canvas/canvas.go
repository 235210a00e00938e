// Package canvas provides the zoomable drawing canvas for the wainscot
// elevation.
package canvas

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"wainscot-designer/internal/layout"
)

const (
	minZoom  = 0.1
	maxZoom  = 10.0
	zoomStep = 1.25

	// drawingMargin is blank space kept around the drawing so arrows and
	// trim above the wall box stay visible, in unzoomed pixels.
	drawingMargin = 50
)

// DrawingCanvas displays a computed layout with pan, zoom, and fit-to-window.
// It consumes the layout read-only and never mutates engine inputs.
type DrawingCanvas struct {
	widget.BaseWidget

	layout layout.Layout
	zoom   float64

	content *fyne.Container
	scroll  *zoomScroll

	fitToWindow    bool
	lastScrollSize fyne.Size

	onZoomChange func(zoom float64)
}

// zoomScroll wraps a scroll container but intercepts the wheel for zoom.
type zoomScroll struct {
	widget.BaseWidget
	scroll *container.Scroll
	canvas *DrawingCanvas
}

func newZoomScroll(content fyne.CanvasObject, canvas *DrawingCanvas) *zoomScroll {
	scroll := container.NewScroll(content)
	scroll.Direction = container.ScrollBoth
	zs := &zoomScroll{scroll: scroll, canvas: canvas}
	zs.ExtendBaseWidget(zs)
	return zs
}

func (zs *zoomScroll) Scrolled(ev *fyne.ScrollEvent) {
	// Use wheel for zoom, not scroll
	if ev.Scrolled.DY > 0 {
		zs.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		zs.canvas.ZoomOut()
	}
}

func (zs *zoomScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(zs.scroll)
}

// Size returns the scroll container's size.
func (zs *zoomScroll) Size() fyne.Size {
	return zs.scroll.Size()
}

// Resize sets the size of the scroll container.
func (zs *zoomScroll) Resize(size fyne.Size) {
	zs.scroll.Resize(size)
	zs.BaseWidget.Resize(size)
}

// Refresh refreshes the scroll container.
func (zs *zoomScroll) Refresh() {
	zs.scroll.Refresh()
	zs.BaseWidget.Refresh()
}

// NewDrawingCanvas creates a new drawing canvas.
func NewDrawingCanvas() *DrawingCanvas {
	dc := &DrawingCanvas{
		zoom:    1.0,
		content: container.NewWithoutLayout(),
	}
	dc.scroll = newZoomScroll(dc.content, dc)
	dc.ExtendBaseWidget(dc)
	return dc
}

// Container returns the canvas container for embedding in layouts.
func (dc *DrawingCanvas) Container() fyne.CanvasObject {
	return dc.scroll
}

// SetLayout replaces the displayed layout and repaints.
func (dc *DrawingCanvas) SetLayout(l layout.Layout) {
	dc.layout = l
	dc.rebuild()
}

// SetZoom sets the zoom level.
func (dc *DrawingCanvas) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	dc.zoom = zoom
	dc.rebuild()

	if dc.onZoomChange != nil {
		dc.onZoomChange(zoom)
	}
}

// GetZoom returns the current zoom level.
func (dc *DrawingCanvas) GetZoom() float64 {
	return dc.zoom
}

// ZoomIn increases the zoom level.
func (dc *DrawingCanvas) ZoomIn() {
	dc.SetZoom(dc.zoom * zoomStep)
}

// ZoomOut decreases the zoom level.
func (dc *DrawingCanvas) ZoomOut() {
	dc.SetZoom(dc.zoom / zoomStep)
}

// FitToWindow adjusts zoom to fit the drawing in the visible area.
func (dc *DrawingCanvas) FitToWindow() {
	bounds := dc.layout.Bounds()
	w := bounds.Width + 2*drawingMargin
	h := bounds.Height + 2*drawingMargin
	if w <= 0 || h <= 0 {
		return
	}

	viewSize := dc.scroll.Size()
	if viewSize.Width <= 0 || viewSize.Height <= 0 {
		return
	}

	zoomX := float64(viewSize.Width) / w
	zoomY := float64(viewSize.Height) / h

	zoom := zoomX
	if zoomY < zoomX {
		zoom = zoomY
	}

	dc.SetZoom(zoom * 0.95) // Leave a small margin
}

// SetFitToWindow enables or disables auto-fit on resize.
func (dc *DrawingCanvas) SetFitToWindow(fit bool) {
	dc.fitToWindow = fit
	if fit {
		dc.FitToWindow()
	}
}

// GetFitToWindow returns the current fit-to-window state.
func (dc *DrawingCanvas) GetFitToWindow() bool {
	return dc.fitToWindow
}

// CheckResize checks if the scroll container was resized and auto-fits if
// enabled.
func (dc *DrawingCanvas) CheckResize(size fyne.Size) {
	if !dc.fitToWindow {
		return
	}
	if size.Width > 0 && size.Height > 0 && size != dc.lastScrollSize {
		dc.lastScrollSize = size
		dc.FitToWindow()
	}
}

// OnZoomChange sets a callback for zoom changes.
func (dc *DrawingCanvas) OnZoomChange(callback func(zoom float64)) {
	dc.onZoomChange = callback
}

// CreateRenderer implements fyne.Widget.
func (dc *DrawingCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &drawingCanvasRenderer{canvas: dc}
}

type drawingCanvasRenderer struct {
	canvas *DrawingCanvas
}

func (r *drawingCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.scroll.Resize(size)
	r.canvas.CheckResize(size)
}

func (r *drawingCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *drawingCanvasRenderer) Refresh() {
	r.canvas.scroll.Refresh()
}

func (r *drawingCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.scroll}
}

func (r *drawingCanvasRenderer) Destroy() {}
