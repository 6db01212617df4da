package main

import (
	"embed"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"go.uber.org/zap"

	"github.com/npiesco/basalt/internal/appmeta"
	"github.com/npiesco/basalt/internal/logging"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	meta := appmeta.Current()

	// Detect development mode
	devBuild := os.Getenv("BASALT_DEV") != "" || meta.IsDev()

	log := logging.New(devBuild)

	app, err := NewApp(log, devBuild)
	if err != nil {
		// A duplicate command registration is a bootstrap defect;
		// refuse to start with an ambiguous registry.
		log.Fatal("command registration failed", zap.Error(err))
	}

	logLevel := logger.INFO
	if devBuild {
		logLevel = logger.DEBUG
	}

	err = wails.Run(&options.App{
		Title:  meta.Name,
		Width:  1200,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 24, G: 24, B: 27, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
		LogLevel:           logLevel,
		LogLevelProduction: logger.ERROR,
		Debug: options.Debug{
			OpenInspectorOnStartup: devBuild,
		},
	})

	if err != nil {
		// Fatal syncs its own output before exiting.
		log.Fatal("failed to start basalt desktop", zap.Error(err))
	}
	_ = log.Sync()
}
