// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"wainscot-designer/internal/app"
	"wainscot-designer/internal/style"
	"wainscot-designer/internal/version"
	"wainscot-designer/ui/canvas"
	"wainscot-designer/ui/panels"
	"wainscot-designer/ui/prefs"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	canvas    *canvas.DrawingCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label

	// Menu items that need state tracking
	fitToWindowItem *fyne.MenuItem
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Wainscot Designer")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	// Paint the initial layout.
	mw.canvas.SetLayout(state.Layout())
	mw.updateSummary()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewDrawingCanvas()
	mw.sidePanel = panels.NewSidePanel(mw.state)
	mw.statusBar = widget.NewLabel("Ready")

	toolbar := mw.createToolbar()

	canvasArea := container.NewBorder(
		toolbar, // top
		nil,     // bottom
		nil,     // left
		nil,     // right
		mw.canvas.Container(), // center
	)

	// Main layout: side panel | drawing area
	split := container.NewHSplit(
		mw.sidePanel.Container(),
		canvasArea,
	)
	split.SetOffset(0.28)

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)

	mw.SetContent(content)
}

// createToolbar creates the toolbar with zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	zoomOutBtn := widget.NewButton("-", func() {
		mw.onZoomOut()
	})
	zoomInBtn := widget.NewButton("+", func() {
		mw.onZoomIn()
	})
	fitBtn := widget.NewButton("Fit", func() {
		mw.onToggleFitToWindow()
	})
	actualBtn := widget.NewButton("1:1", func() {
		mw.onActualSize()
	})

	return container.NewHBox(
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		zoomInBtn,
		fitBtn,
		actualBtn,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Design", mw.onNewDesign),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	mw.fitToWindowItem = fyne.NewMenuItem("  Fit to Window", mw.onToggleFitToWindow)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.onZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.onZoomOut),
		mw.fitToWindowItem,
		fyne.NewMenuItem("Actual Size", mw.onActualSize),
	)

	styleItems := make([]*fyne.MenuItem, 0, len(style.List()))
	for _, name := range style.List() {
		name := name
		styleItems = append(styleItems, fyne.NewMenuItem(name, func() {
			mw.state.ApplyStyle(style.Get(name))
		}))
	}
	styleMenu := fyne.NewMenu("Style", styleItems...)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, viewMenu, styleMenu, helpMenu)
	mw.SetMainMenu(mainMenu)
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventLayoutChanged, func(data interface{}) {
		mw.canvas.SetLayout(mw.state.Layout())
		mw.updateSummary()
	})

	mw.state.On(app.EventChairRailClamped, func(data interface{}) {
		if mm, ok := data.(float64); ok {
			mw.updateStatus("Chair rail clamped to " + mw.state.FormatLength(mm))
		}
	})

	mw.state.On(app.EventStyleApplied, func(data interface{}) {
		if name, ok := data.(string); ok {
			mw.updateStatus("Applied style: " + name)
		}
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// updateSummary shows the grid and first-panel size in the status bar.
func (mw *MainWindow) updateSummary() {
	columns, rows := mw.state.Grid()
	l := mw.state.Layout()
	scale := mw.state.Scale()

	cell := l.PanelAt(0, 0)
	if cell == nil {
		mw.updateStatus(fmt.Sprintf("%d × %d panels", columns, rows))
		return
	}
	mw.updateStatus(fmt.Sprintf("%d × %d panels · panel %s × %s",
		columns, rows,
		mw.state.FormatLength(cell.Rect.Width/scale),
		mw.state.FormatLength(cell.Rect.Height/scale)))
}

// SavePreferences persists the unit preference, drawing scale, and window
// geometry.
func (mw *MainWindow) SavePreferences() error {
	mw.prefs.SetUnitPreference(mw.state.Units())
	mw.prefs.SetScale(mw.state.Scale())
	size := mw.Canvas().Size()
	mw.prefs.SetWindowSize(float64(size.Width), float64(size.Height))
	return mw.prefs.Save()
}

// Menu action handlers

func (mw *MainWindow) onNewDesign() {
	mw.state.ApplyStyle(style.ClassicColonial())
	mw.updateStatus("New design")
}

func (mw *MainWindow) onZoomIn() {
	mw.disableFitToWindow()
	mw.canvas.ZoomIn()
}

func (mw *MainWindow) onZoomOut() {
	mw.disableFitToWindow()
	mw.canvas.ZoomOut()
}

func (mw *MainWindow) onToggleFitToWindow() {
	enabled := !mw.canvas.GetFitToWindow()
	mw.canvas.SetFitToWindow(enabled)

	if enabled {
		mw.fitToWindowItem.Label = "✓ Fit to Window"
	} else {
		mw.fitToWindowItem.Label = "  Fit to Window"
	}
}

func (mw *MainWindow) onActualSize() {
	mw.disableFitToWindow()
	mw.canvas.SetZoom(1.0)
}

func (mw *MainWindow) disableFitToWindow() {
	if mw.canvas.GetFitToWindow() {
		mw.canvas.SetFitToWindow(false)
		mw.fitToWindowItem.Label = "  Fit to Window"
	}
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Wainscot Designer",
		fmt.Sprintf("Wainscot Designer v%s\n\n"+
			"An interactive wall-paneling layout tool.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
