package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"SketchBoard/internal/engine"
	"SketchBoard/internal/settings"
	"SketchBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", "sketchboard.toml", "path to the TOML settings file")
	logLevel := flag.String("log-level", "", "override [logging] level")
	flag.Parse()

	if err := run(*configPath, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "sketchboard:", err)
		os.Exit(1)
	}
}

func run(configPath, logLevel string) error {
	s, err := settings.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		s.Logging.Level = logLevel
	}
	logger, err := s.Logging.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	engine.SetLogger(logger)

	logger.Info("starting", "config", configPath,
		"canvas", fmt.Sprintf("%dx%d", s.Canvas.Width, s.Canvas.Height), "tool", s.ActiveTool())
	return ui.RunApp(s)
}
