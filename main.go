// Package main provides the entry point for the Wainscot Designer
// application.
package main

import (
	"os"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wainscot-designer/internal/app"
	"wainscot-designer/internal/version"
	"wainscot-designer/ui/mainwindow"
	"wainscot-designer/ui/prefs"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	log.Info().Str("version", version.Version).Msg("starting wainscot designer")

	fyneApp := fyneapp.New()
	fyneApp.Settings().SetTheme(&app.DesignerTheme{})

	appPrefs := prefs.Load()

	state := app.NewState()
	state.SetUnits(appPrefs.UnitPreference())
	state.SetScale(appPrefs.Scale(app.DefaultScale))

	win := mainwindow.New(fyneApp, state, appPrefs)

	if w, h := appPrefs.WindowSize(); w > 0 && h > 0 {
		win.Resize(fyne.NewSize(float32(w), float32(h)))
	} else {
		win.Resize(fyne.NewSize(1100, 760))
	}

	win.SetCloseIntercept(func() {
		if err := win.SavePreferences(); err != nil {
			log.Warn().Err(err).Msg("failed to save preferences")
		}
		fyneApp.Quit()
	})

	win.ShowAndRun()
}
