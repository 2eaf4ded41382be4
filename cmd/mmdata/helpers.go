package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/abelbrown/moviematch/internal/catalog"
	"github.com/abelbrown/moviematch/internal/store"
)

// logger writes progress and errors to stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "mmdata"})

// readCatalog reads a catalog JSON file or fatals.
func readCatalog(path string) []catalog.Movie {
	movies, err := catalog.FileSource{Path: path}.Load(context.Background())
	if err != nil {
		logger.Fatal("failed to read catalog", "path", path, "err", err)
	}
	return movies
}

// writeCatalog writes movies as indented JSON or fatals.
func writeCatalog(path string, movies []catalog.Movie) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Fatal("failed to create output directory", "dir", dir, "err", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		logger.Fatal("failed to create output file", "path", path, "err", err)
	}
	if err := catalog.Encode(f, movies); err != nil {
		f.Close()
		logger.Fatal("failed to write catalog", "path", path, "err", err)
	}
	if err := f.Close(); err != nil {
		logger.Fatal("failed to close output file", "path", path, "err", err)
	}
}

// importDB replaces the database's catalog with movies. The store is closed
// before returning so callers may exit on error.
func importDB(ctx context.Context, path string, movies []catalog.Movie) (int, error) {
	st, err := store.Open(path)
	if err != nil {
		return 0, err
	}
	n, err := st.ReplaceMovies(ctx, movies)
	if cerr := st.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// readDB reads every movie from the database and closes it.
func readDB(ctx context.Context, path string) ([]catalog.Movie, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	movies, err := st.Movies(ctx)
	if cerr := st.Close(); err == nil {
		err = cerr
	}
	return movies, err
}

// isDB reports whether path names a SQLite database rather than JSON.
func isDB(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// requireFlag exits with usage when a required flag is empty.
func requireFlag(name, value string, usage func()) {
	if value == "" {
		logger.Error("missing required flag", "flag", "-"+name)
		usage()
		os.Exit(2)
	}
}
