package main

import (
	"log"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/afero"

	"github.com/ytget/expiration-tracker/internal/config"
	"github.com/ytget/expiration-tracker/internal/platform"
	"github.com/ytget/expiration-tracker/internal/store"
	"github.com/ytget/expiration-tracker/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.expiration-tracker"
	AppName = "Expiration Tracker"
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewTrackerTheme())

	settings := config.NewSettings(myApp)
	files := platform.NewDataFiles(settings.GetDataDirectory())
	if err := platform.CreateDirectoryIfNotExists(files.Dir); err != nil {
		log.Printf("failed to ensure data dir: %v", err)
	}

	fs := afero.NewOsFs()

	shelfLife, err := config.LoadShelfLife(fs, files.ShelfLife)
	if err != nil {
		log.Printf("Using built-in shelf life table: %v", err)
		shelfLife = config.DefaultShelfLife()
	}

	// A file that cannot be read is left alone rather than replaced by an
	// empty list on the next save.
	items, err := store.New(store.NewFileBackend(fs, files.Items), shelfLife)
	if err != nil {
		log.Fatalf("Cannot load items from %s: %v", files.Items, err)
	}

	windowState, err := config.LoadWindowState(fs, files.Window)
	if err != nil {
		log.Printf("Using default window geometry: %v", err)
	}

	myWindow := myApp.NewWindow(AppName)

	ui.NewRootUI(myWindow, myApp, ui.Options{
		Tracker:         items,
		Settings:        settings,
		Fs:              fs,
		WindowStatePath: files.Window,
		WindowState:     windowState,
	})

	myWindow.ShowAndRun()
}
