package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/juliamirani/gutenberg-explorer/internal/catalog"
	"github.com/juliamirani/gutenberg-explorer/internal/explorer"
	"github.com/juliamirani/gutenberg-explorer/internal/fetch"
	"github.com/juliamirani/gutenberg-explorer/internal/server"
)

// #region main
func main() {
	dbPath := envOr("EXPLORER_DB", "explorer.db")
	addr := envOr("EXPLORER_ADDR", ":8080")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := catalog.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	fetcher := fetch.NewFetcher(fetch.DefaultConfig())
	exp := explorer.New(store, fetcher, explorer.DefaultLimit, logger)
	srv := server.NewServer(exp, store, addr, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Gutenberg Word Explorer ready.")
	log.Printf("  DB: %s | Addr: %s", dbPath, addr)

	if err := srv.Start(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
