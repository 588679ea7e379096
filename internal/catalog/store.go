package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/juliamirani/gutenberg-explorer/internal/analysis"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS books (
	book_id     TEXT PRIMARY KEY,
	title       TEXT NOT NULL UNIQUE,
	source_url  TEXT,
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS word_frequencies (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	book_id     TEXT NOT NULL,
	word        TEXT NOT NULL,
	frequency   INTEGER NOT NULL,
	UNIQUE (book_id, word),
	FOREIGN KEY (book_id) REFERENCES books(book_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_word_freq_book ON word_frequencies(book_id, frequency DESC);

CREATE TABLE IF NOT EXISTS analysis_log (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	book_id        TEXT NOT NULL,
	source_url     TEXT,
	action         TEXT NOT NULL,
	token_count    INTEGER NOT NULL,
	distinct_words INTEGER NOT NULL,
	top_json       TEXT,
	reason         TEXT,
	created_at     TEXT NOT NULL,
	FOREIGN KEY (book_id) REFERENCES books(book_id)
);
`

// #endregion schema

// ErrNotFound is returned when a title lookup matches no book.
var ErrNotFound = errors.New("book not found")

// #region store-struct
// Store manages the book catalog in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region get-by-title
// GetByTitle looks up a book by case-insensitive exact title match.
func (s *Store) GetByTitle(title string) (Book, error) {
	var b Book
	var sourceURL sql.NullString
	var createdStr, updatedStr string

	err := s.db.QueryRow(
		`SELECT book_id, title, source_url, created_at, updated_at
		 FROM books WHERE LOWER(title) = LOWER(?)`, title,
	).Scan(&b.ID, &b.Title, &sourceURL, &createdStr, &updatedStr)
	if errors.Is(err, sql.ErrNoRows) {
		return Book{}, ErrNotFound
	}
	if err != nil {
		return Book{}, fmt.Errorf("get book %q: %w", title, err)
	}

	if sourceURL.Valid {
		b.SourceURL = sourceURL.String
	}
	b.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	b.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
	return b, nil
}

// #endregion get-by-title

// #region save-analysis
// SaveAnalysis upserts the book and replaces its frequency rows in one
// transaction. Re-analysis fully discards prior entries. Returns the stored
// book and whether it was newly created.
func (s *Store) SaveAnalysis(title, sourceURL string, entries []analysis.Entry) (Book, bool, error) {
	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return Book{}, false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var book Book
	created := false

	var sourceNull sql.NullString
	var createdStr string
	err = tx.QueryRow(
		`SELECT book_id, title, source_url, created_at FROM books WHERE LOWER(title) = LOWER(?)`, title,
	).Scan(&book.ID, &book.Title, &sourceNull, &createdStr)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		created = true
		book = Book{
			ID:        uuid.New().String(),
			Title:     title,
			SourceURL: sourceURL,
			CreatedAt: now,
			UpdatedAt: now,
		}
		_, err = tx.Exec(
			`INSERT INTO books (book_id, title, source_url, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?)`,
			book.ID, book.Title, nullIfEmpty(book.SourceURL),
			now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
		)
		if err != nil {
			return Book{}, false, fmt.Errorf("insert book: %w", err)
		}
	case err != nil:
		return Book{}, false, fmt.Errorf("lookup book: %w", err)
	default:
		book.SourceURL = sourceURL
		book.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		book.UpdatedAt = now
		_, err = tx.Exec(
			`UPDATE books SET source_url = ?, updated_at = ? WHERE book_id = ?`,
			nullIfEmpty(sourceURL), now.Format(time.RFC3339Nano), book.ID,
		)
		if err != nil {
			return Book{}, false, fmt.Errorf("update book: %w", err)
		}
	}

	// Clear old frequencies, then insert new ones
	if _, err := tx.Exec(`DELETE FROM word_frequencies WHERE book_id = ?`, book.ID); err != nil {
		return Book{}, false, fmt.Errorf("clear frequencies: %w", err)
	}
	for _, e := range entries {
		_, err := tx.Exec(
			`INSERT INTO word_frequencies (book_id, word, frequency) VALUES (?, ?, ?)`,
			book.ID, e.Word, e.Count,
		)
		if err != nil {
			return Book{}, false, fmt.Errorf("insert frequency %q: %w", e.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Book{}, false, fmt.Errorf("commit: %w", err)
	}
	return book, created, nil
}

// #endregion save-analysis

// #region frequencies
// Frequencies returns a book's stored entries, highest count first. Rows
// with equal counts keep insertion order, which preserves the ranker's
// first-occurrence tie break.
func (s *Store) Frequencies(bookID string, limit int) ([]analysis.Entry, error) {
	rows, err := s.db.Query(
		`SELECT word, frequency FROM word_frequencies
		 WHERE book_id = ? ORDER BY frequency DESC, id ASC LIMIT ?`, bookID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list frequencies: %w", err)
	}
	defer rows.Close()

	var entries []analysis.Entry
	for rows.Next() {
		var e analysis.Entry
		if err := rows.Scan(&e.Word, &e.Count); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion frequencies

// #region list-books
// ListBooks returns the most recently updated books.
func (s *Store) ListBooks(limit int) ([]Book, error) {
	rows, err := s.db.Query(
		`SELECT book_id, title, source_url, created_at, updated_at
		 FROM books ORDER BY updated_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		var sourceURL sql.NullString
		var createdStr, updatedStr string
		if err := rows.Scan(&b.ID, &b.Title, &sourceURL, &createdStr, &updatedStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if sourceURL.Valid {
			b.SourceURL = sourceURL.String
		}
		b.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		b.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
		books = append(books, b)
	}
	return books, rows.Err()
}

// #endregion list-books

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
