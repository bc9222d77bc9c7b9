package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"hikerhunger/internal/calorieapi"
	"hikerhunger/internal/config"
	"hikerhunger/internal/service"
	"hikerhunger/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		defaults := config.DefaultConfig()
		cfg = &defaults
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// The TUI owns stdout, so logs go to a file
	logOut, closeLog, err := openLogFile(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()

	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: parseLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	logger.Info("starting hikerhunger",
		"api", cfg.API.BaseURL,
		"start_screen", cfg.Display.StartScreen,
	)

	// Request spans go to the log file next to the logs
	shutdownTracing, err := setupTracing(logOut)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("flushing traces", "error", err)
		}
	}()

	// Create services
	client := calorieapi.NewClient(calorieapi.Options{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.Timeout(),
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Burst:             cfg.API.Burst,
		Logger:            logger,
	})
	plans := service.NewPlanService(client, logger)

	// Launch TUI
	app := tui.NewApp(plans, tui.StartScreen(cfg.Display.StartScreen), logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

func openLogFile(path string) (io.Writer, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// setupTracing installs a global tracer provider exporting to w and the
// W3C trace context propagator used by the calorie client's transport
func setupTracing(w io.Writer) (func(context.Context) error, error) {
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
