package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/juliamirani/gutenberg-explorer/internal/analysis"
	"github.com/juliamirani/gutenberg-explorer/internal/catalog"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to explorer.db")
	last := flag.Int("last", 20, "show N most recently updated books")
	title := flag.String("title", "", "show single book detail by title")
	limit := flag.Int("limit", 10, "words to show in detail mode")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/explorer.db [--last N] [--title name] [--limit N] [--json]")
		os.Exit(2)
	}

	store, err := catalog.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *title != "" {
		if err := runDetailMode(store, *title, *limit, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(store, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	BookID    string `json:"book_id"`
	Title     string `json:"title"`
	SourceURL string `json:"source_url,omitempty"`
	Words     int    `json:"words"`
	UpdatedAt string `json:"updated_at"`
}

func runListMode(store *catalog.Store, last int, jsonOut bool) error {
	books, err := store.ListBooks(last)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		fmt.Fprintln(os.Stderr, "no books found")
		return nil
	}

	rows := make([]listRow, len(books))
	for i, b := range books {
		entries, err := store.Frequencies(b.ID, 1000)
		if err != nil {
			return err
		}
		rows[i] = listRow{
			BookID:    b.ID,
			Title:     b.Title,
			SourceURL: b.SourceURL,
			Words:     len(entries),
			UpdatedAt: b.UpdatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-10s  %-40s  %5s  %s\n", "Book", "Title", "Words", "Updated")
	fmt.Printf("%-10s+-%-40s+-%5s+-%s\n", "----------", strings.Repeat("-", 40), "-----", "--------------------")
	for _, r := range rows {
		fmt.Printf("%-10s  %-40s  %5d  %s\n", shortID(r.BookID), trunc(r.Title, 40), r.Words, r.UpdatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	BookID    string           `json:"book_id"`
	Title     string           `json:"title"`
	SourceURL string           `json:"source_url,omitempty"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
	TopWords  []analysis.Entry `json:"top_words"`
}

func runDetailMode(store *catalog.Store, title string, limit int, jsonOut bool) error {
	book, err := store.GetByTitle(title)
	if err != nil {
		return err
	}
	entries, err := store.Frequencies(book.ID, limit)
	if err != nil {
		return err
	}

	out := detailOutput{
		BookID:    book.ID,
		Title:     book.Title,
		SourceURL: book.SourceURL,
		CreatedAt: book.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: book.UpdatedAt.Format("2006-01-02T15:04:05Z"),
		TopWords:  entries,
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Book:    %s\n", out.BookID)
	fmt.Printf("Title:   %s\n", out.Title)
	if out.SourceURL != "" {
		fmt.Printf("Source:  %s\n", out.SourceURL)
	}
	fmt.Printf("Created: %s\n", out.CreatedAt)
	fmt.Printf("Updated: %s\n", out.UpdatedAt)

	if len(entries) == 0 {
		fmt.Println("\nNo word frequencies stored.")
		return nil
	}
	fmt.Printf("\nTop words:\n")
	for i, e := range entries {
		fmt.Printf("  %2d. %-20s %d\n", i+1, e.Word, e.Count)
	}
	return nil
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func trunc(s string, n int) string {
	if len(s) > n {
		return s[:n-1] + "…"
	}
	return s
}

// #endregion output
