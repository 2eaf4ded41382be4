// Command moviematch is the MovieMatch terminal app: describe a mood, pick
// genres or search titles, and browse the matching movies ranked by rating.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/abelbrown/moviematch/internal/catalog"
	"github.com/abelbrown/moviematch/internal/classify"
	"github.com/abelbrown/moviematch/internal/config"
	"github.com/abelbrown/moviematch/internal/controller"
	"github.com/abelbrown/moviematch/internal/logging"
	"github.com/abelbrown/moviematch/internal/mood"
	"github.com/abelbrown/moviematch/internal/store"
	"github.com/abelbrown/moviematch/internal/ui"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "YAML config file (default: search standard locations)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("moviematch", version)
		return
	}

	cfg, err := config.Load(config.Options{File: *configPath, DotEnv: ".env"})
	if err != nil {
		log.Fatal("Failed to load configuration", "err", err)
	}

	if err := logging.Init(logging.Options{
		Dir:        cfg.Log.Dir,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Version:    version,
	}); err != nil {
		log.Fatal("Failed to initialize logging", "err", err)
	}
	defer logging.Close()

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src, closer := catalogSource(cfg.Catalog)
	defer closer.Close()

	// Resolver stays nil when the classifier is disabled; the controller
	// then resolves moods from keywords alone.
	var resolver controller.Resolver
	var healthCheck func() tea.Cmd
	if cfg.Classifier.Enabled {
		client := classify.New(classify.Config{
			BaseURL:          cfg.Classifier.URL,
			Timeout:          cfg.Classifier.Timeout,
			MinInterval:      cfg.Classifier.MinInterval,
			FailureThreshold: cfg.Classifier.FailureThreshold,
			Cooldown:         cfg.Classifier.Cooldown,
			Logger:           logging.WithPrefix("classify"),
		})
		resolver = mood.NewResolver(client,
			mood.WithCache(cfg.Classifier.CacheTTL),
			mood.WithLogger(logging.WithPrefix("mood")),
		)
		healthCheck = func() tea.Cmd {
			return func() tea.Msg {
				up := client.Available(ctx)
				logging.Info("classifier health check", "url", cfg.Classifier.URL, "available", up)
				return ui.ClassifierStatus{Available: up}
			}
		}
	}

	screen := ui.NewScreen()
	ctrl := controller.New(controller.Config{
		View:          screen,
		Source:        src,
		Resolver:      resolver,
		Logger:        logging.WithPrefix("controller"),
		GenresPerPage: cfg.UI.GenresPerPage,
	})
	app := ui.NewApp(ctx, ctrl, screen, healthCheck)

	program := tea.NewProgram(app, tea.WithAltScreen())

	// Run UI (blocks until quit)
	if _, err := program.Run(); err != nil {
		logging.Error("Error running program", "err", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// failedSource reports the error that kept a catalog source from opening, so
// the session falls back to the sample catalog instead of exiting.
type failedSource struct {
	err error
}

func (s failedSource) Load(context.Context) ([]catalog.Movie, error) {
	return nil, s.err
}

// catalogSource picks the first configured source: database, URL, then file.
func catalogSource(cfg config.CatalogConfig) (catalog.Source, io.Closer) {
	switch {
	case cfg.DB != "":
		st, err := store.Open(cfg.DB)
		if err != nil {
			logging.Warn("catalog database unavailable", "db", cfg.DB, "err", err)
			return failedSource{err: fmt.Errorf("catalog: open database %s: %w", cfg.DB, err)}, nopCloser{}
		}
		logging.Info("catalog source", "db", cfg.DB)
		return st, st
	case cfg.URL != "":
		logging.Info("catalog source", "url", cfg.URL)
		return catalog.NewHTTPSource(cfg.URL, cfg.Timeout), nopCloser{}
	default:
		logging.Info("catalog source", "path", cfg.Path)
		return catalog.FileSource{Path: cfg.Path}, nopCloser{}
	}
}
