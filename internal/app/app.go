package app

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shandysiswandi/gomailer/internal/dispatch/inbound"
	"github.com/shandysiswandi/gomailer/internal/pkg/clock"
	"github.com/shandysiswandi/gomailer/internal/pkg/config"
	"github.com/shandysiswandi/gomailer/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailer/internal/pkg/mail"
	"github.com/shandysiswandi/gomailer/internal/pkg/uid"
	"github.com/shandysiswandi/gomailer/internal/pkg/validator"
)

//go:embed config.yaml
var defaultConfig []byte

// App wires dependencies and manages the application lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc
	stdout io.Writer

	// configuration
	loadConfig func() (config.Config, error)
	config     config.Config
	ins        instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID

	// resources
	locator *mail.Locator
	factory *mail.Factory

	// modules
	runner *inbound.Runner

	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
// Senders write to standard output; configuration comes from CONFIG_PATH when set.
func New() *App {
	app, err := build(os.Stdout, loadConfigFromEnv)
	if err != nil {
		slog.Error("failed to init application", "error", err)
		os.Exit(1)
	}

	return app
}

func build(stdout io.Writer, loadConfig func() (config.Config, error)) (*App, error) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	app := &App{
		ctx:        ctx,
		cancel:     cancel,
		stdout:     stdout,
		loadConfig: loadConfig,
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{name: "config", fn: app.initConfig},
		{name: "instrument", fn: app.initInstrument},
		{name: "libraries", fn: app.initLibraries},
		{name: "mail", fn: app.initMail},
		{name: "modules", fn: app.initModules},
	}

	for _, step := range steps {
		if err := step.fn(); err != nil {
			cancel()
			return nil, fmt.Errorf("init %s: %w", step.name, err)
		}
	}

	app.initClosers()

	return app, nil
}
