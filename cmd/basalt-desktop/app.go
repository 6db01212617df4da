package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/npiesco/basalt/internal/appmeta"
	"github.com/npiesco/basalt/internal/bridge"
	"github.com/npiesco/basalt/internal/settings"
)

// startupMarker is printed once on the diagnostic stream when a
// development build finishes initializing. Production builds stay quiet.
const startupMarker = "Basalt desktop initialized"

// markerOut is a package-level hook so tests can capture the marker.
var markerOut io.Writer = os.Stdout

// App is the API surface bound to the Basalt web view. It owns the
// command registry and the dispatcher that serves frontend invocations.
type App struct {
	ctx        context.Context
	log        *zap.Logger
	devBuild   bool
	host       *bridge.Host
	registry   *bridge.Registry
	dispatcher *bridge.Dispatcher
}

// NewApp assembles the host context and the command registry. A
// registration conflict is returned as an error so bootstrap can abort.
func NewApp(log *zap.Logger, devBuild bool) (*App, error) {
	a := &App{
		log:      log,
		devBuild: devBuild,
		host: &bridge.Host{
			Meta:     appmeta.Current(),
			Settings: settings.NewStore(),
		},
		registry: bridge.NewRegistry(),
	}
	if err := a.registerCommands(); err != nil {
		return nil, err
	}
	a.dispatcher = bridge.NewDispatcher(a.registry, a.host, log)
	return a, nil
}

// registerCommands populates the registry with every command the
// frontend may invoke. Runs once, before dispatch begins.
func (a *App) registerCommands() error {
	for _, c := range []struct {
		name    string
		handler bridge.Handler
	}{
		{"app_version", appVersion},
		{"settings_get", settingsGet},
		{"settings_set_theme", settingsSetTheme},
		{"settings_set_font_size", settingsSetFontSize},
	} {
		if err := a.registry.Register(c.name, c.handler); err != nil {
			return err
		}
	}
	return nil
}

// startup is called by the host framework once the UI surface exists.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	if a.devBuild {
		fmt.Fprintln(markerOut, startupMarker)
	}
	a.log.Info("command bridge ready", zap.Strings("commands", a.registry.Names()))
}

// shutdown is called when the app is closing.
func (a *App) shutdown(ctx context.Context) {
	_ = a.log.Sync()
}

// Invoke dispatches a named command from the frontend and returns its
// response. Errors are carried inside the response, never as a Go error,
// so the web-view bridge always receives a well-formed reply.
func (a *App) Invoke(name string, args map[string]any) bridge.Response {
	return a.dispatcher.Dispatch(bridge.Request{Name: name, Args: bridge.Args(args)})
}

// GetVersion returns the application version.
func (a *App) GetVersion() string {
	return a.host.Meta.Version
}
