package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"relato/internal/adapters/browser"
	"relato/internal/adapters/content"
	"relato/internal/adapters/tui"
	"relato/internal/application"
	"relato/internal/config"
	"relato/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}

	w, closeLog, err := logging.Open(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()
	logger := logging.Setup(w, cfg.LogLevel)

	src, closeSrc, err := content.Resolve(cfg.ContentFile, cfg.ContentDB)
	if err != nil {
		return err
	}
	defer closeSrc()

	page, err := src.LoadPage(context.Background())
	if err != nil {
		return fmt.Errorf("loading page: %w", err)
	}

	opener, err := browser.NewOpener(cfg.SiteURL)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(page, tui.Options{
		FrameInterval:  cfg.FrameInterval,
		ScrollDuration: cfg.ScrollDuration,
		Threshold:      cfg.ActiveThreshold,
		Margin:         cfg.ViewportMargin,
		Formatter:      application.NewFormatter(cfg.Tag()),
		Logger:         logger,
		Open:           opener.Open,
	})
	if err != nil {
		return err
	}
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
