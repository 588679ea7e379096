// Package fetch downloads plain-text documents over HTTP.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// #region types

// ErrFetch is the single coarse-grained failure condition for document
// fetches. Sub-causes (bad URL, unreachable host, bad status, short read)
// are carried in the wrapped message only.
var ErrFetch = errors.New("fetch failed")

// Config holds document fetch parameters.
type Config struct {
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string
}

// #endregion types

// #region config

// DefaultConfig returns default fetch configuration.
// Reads from env vars: EXPLORER_FETCH_TIMEOUT (seconds),
// EXPLORER_FETCH_MAX_BYTES.
func DefaultConfig() Config {
	cfg := Config{
		Timeout:      30 * time.Second,
		MaxBodyBytes: 10 << 20,
		UserAgent:    "gutenberg-explorer/1.0",
	}
	if v := os.Getenv("EXPLORER_FETCH_TIMEOUT"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			cfg.Timeout = time.Duration(sec) * time.Second
		}
	}
	if v := os.Getenv("EXPLORER_FETCH_MAX_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxBodyBytes = n
		}
	}
	return cfg
}

// #endregion config

// #region fetcher

// Fetcher downloads document text with a shared HTTP client.
type Fetcher struct {
	client *http.Client
	config Config
}

// NewFetcher creates a Fetcher with the given config.
func NewFetcher(config Config) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: config.Timeout},
		config: config,
	}
}

// Fetch downloads the document at url and returns its text. Single attempt,
// fail fast, no retries. Invalid UTF-8 sequences are dropped, matching how
// Gutenberg plain-text files are served.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %s", ErrFetch, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.config.MaxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrFetch, err)
	}
	return strings.ToValidUTF8(string(body), ""), nil
}

// #endregion fetcher
