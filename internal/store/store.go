// Package store provides the SQLite catalog database for MovieMatch.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	"github.com/abelbrown/moviematch/internal/catalog"
)

// Store handles SQLite persistence of the movie catalog. NOT an interface -
// concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex // Protects all database operations
}

// Open creates a new Store with the given database path.
// Creates tables if they don't exist.
// Uses WAL mode for better concurrent read performance (file-based DBs only).
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

// createTables creates the required tables and indexes if they don't exist.
// position keeps catalog order; ids are not required to be unique.
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS movies (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL DEFAULT '',
		year TEXT NOT NULL DEFAULT '',
		rating REAL,
		description TEXT NOT NULL DEFAULT '',
		tags TEXT,
		poster TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_movies_rating ON movies(rating DESC);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
// Thread-safe: acquires write lock to prevent closing during in-flight operations.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// ReplaceMovies swaps the whole catalog for movies in one transaction and
// returns the number of rows written.
// Thread-safe: acquires write lock.
func (s *Store) ReplaceMovies(ctx context.Context, movies []catalog.Movie) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM movies"); err != nil {
		return 0, fmt.Errorf("clear movies: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO movies (position, id, title, year, rating, description, tags, poster)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range movies {
		tags, err := encodeTags(m.Tags)
		if err != nil {
			return 0, fmt.Errorf("encode tags for %q: %w", m.Title, err)
		}
		var rating sql.NullFloat64
		if m.Rating != nil {
			rating = sql.NullFloat64{Float64: *m.Rating, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, i, string(m.ID), m.Title, m.Year, rating, m.Description, tags, m.Poster); err != nil {
			return 0, fmt.Errorf("insert movie %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(movies), nil
}

// Movies returns the catalog in stored order.
// Thread-safe: acquires read lock.
func (s *Store) Movies(ctx context.Context) ([]catalog.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, year, rating, description, tags, poster
		FROM movies
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var movies []catalog.Movie
	for rows.Next() {
		var (
			m      catalog.Movie
			id     string
			rating sql.NullFloat64
			tags   sql.NullString
		)
		if err := rows.Scan(&id, &m.Title, &m.Year, &rating, &m.Description, &tags, &m.Poster); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		m.ID = catalog.ID(id)
		if rating.Valid {
			m.Rating = catalog.Float(rating.Float64)
		}
		if m.Tags, err = decodeTags(tags); err != nil {
			return nil, fmt.Errorf("decode tags for %q: %w", m.Title, err)
		}
		movies = append(movies, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return movies, nil
}

// Count returns the number of stored movies.
// Thread-safe: acquires read lock.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&n); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return n, nil
}

// Load implements catalog.Source. An empty database is an error so the
// caller falls back to the sample catalog.
func (s *Store) Load(ctx context.Context) ([]catalog.Movie, error) {
	movies, err := s.Movies(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("store: catalog database is empty")
	}
	return movies, nil
}

// encodeTags stores absent tags as NULL so they round-trip as nil.
func encodeTags(tags []string) (sql.NullString, error) {
	if tags == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func decodeTags(s sql.NullString) ([]string, error) {
	if !s.Valid {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(s.String), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
