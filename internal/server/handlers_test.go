package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/juliamirani/gutenberg-explorer/internal/catalog"
	"github.com/juliamirani/gutenberg-explorer/internal/explorer"
	"github.com/juliamirani/gutenberg-explorer/internal/fetch"
)

// #region fixtures
type stubFetcher struct {
	text string
	err  error
}

func (s *stubFetcher) Fetch(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func newTestMux(t *testing.T, fetcher explorer.Fetcher) (*http.ServeMux, *catalog.Store) {
	t.Helper()
	store, err := catalog.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	exp := explorer.New(store, fetcher, 0, nil)
	mux := http.NewServeMux()
	NewHandler(exp, store, nil).RegisterRoutes(mux)
	return mux, store
}

const bookText = "Title: The White Whale\n\nThe whale, the whale! The white whale rose from the sea."

func postJSON(t *testing.T, mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

// #endregion fixtures

// #region api-tests

func TestAPILoad_CreatesBook(t *testing.T) {
	mux, _ := newTestMux(t, &stubFetcher{text: bookText})

	rec := postJSON(t, mux, "/api/load", `{"url":"https://example.org/whale.txt"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Book struct {
			Title string `json:"title"`
		} `json:"book"`
		WordFrequencies []struct {
			Word  string `json:"word"`
			Count int    `json:"count"`
		} `json:"word_frequencies"`
		Created bool `json:"created"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Book.Title != "The White Whale" {
		t.Errorf("unexpected title %q", resp.Book.Title)
	}
	if !resp.Created {
		t.Error("expected created=true")
	}
	if len(resp.WordFrequencies) == 0 || resp.WordFrequencies[0].Word != "whale" {
		t.Errorf("expected whale first, got %v", resp.WordFrequencies)
	}
}

func TestAPILoad_SecondLoadIsUpdate(t *testing.T) {
	mux, _ := newTestMux(t, &stubFetcher{text: bookText})

	postJSON(t, mux, "/api/load", `{"url":"https://example.org/whale.txt"}`)
	rec := postJSON(t, mux, "/api/load", `{"url":"https://example.org/whale.txt"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for update, got %d", rec.Code)
	}
}

func TestAPILoad_FetchFailure(t *testing.T) {
	mux, _ := newTestMux(t, &stubFetcher{err: fmt.Errorf("%w: connection refused", fetch.ErrFetch)})

	rec := postJSON(t, mux, "/api/load", `{"url":"https://example.org/missing.txt"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "check the URL") {
		t.Errorf("expected coarse fetch message, got %s", rec.Body.String())
	}
}

func TestAPILoad_BlankURL(t *testing.T) {
	mux, _ := newTestMux(t, &stubFetcher{})

	rec := postJSON(t, mux, "/api/load", `{"url":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAPISearch_FoundCaseInsensitive(t *testing.T) {
	mux, _ := newTestMux(t, &stubFetcher{text: bookText})
	postJSON(t, mux, "/api/load", `{"url":"https://example.org/whale.txt"}`)

	rec := postJSON(t, mux, "/api/search", `{"title":"the white whale"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "The White Whale") {
		t.Errorf("expected stored title in response, got %s", rec.Body.String())
	}
}

func TestAPISearch_NotFound(t *testing.T) {
	mux, _ := newTestMux(t, &stubFetcher{})

	rec := postJSON(t, mux, "/api/search", `{"title":"Missing"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "paste its text URL") {
		t.Errorf("expected hint, got %s", rec.Body.String())
	}
}

func TestAPISearch_BadBody(t *testing.T) {
	mux, _ := newTestMux(t, &stubFetcher{})

	rec := postJSON(t, mux, "/api/search", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAPIBooks(t *testing.T) {
	mux, store := newTestMux(t, &stubFetcher{})
	store.SaveAnalysis("Dracula", "", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Dracula") {
		t.Errorf("expected Dracula listed, got %s", rec.Body.String())
	}
}

func TestAPIHealth(t *testing.T) {
	mux, _ := newTestMux(t, &stubFetcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

// #endregion api-tests

// #region form-tests

func postForm(t *testing.T, mux *http.ServeMux, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestFormIndex(t *testing.T) {
	mux, _ := newTestMux(t, &stubFetcher{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Word Explorer") {
		t.Errorf("expected form page, got %s", rec.Body.String())
	}
}

func TestFormSearch_BlankTitle(t *testing.T) {
	mux, _ := newTestMux(t, &stubFetcher{})

	rec := postForm(t, mux, url.Values{"search_title": {"1"}, "title": {""}})
	if !strings.Contains(rec.Body.String(), "Please enter a book title.") {
		t.Errorf("expected blank title error, got %s", rec.Body.String())
	}
}

func TestFormLoad_RendersFrequencies(t *testing.T) {
	mux, _ := newTestMux(t, &stubFetcher{text: bookText})

	rec := postForm(t, mux, url.Values{"load_url": {"1"}, "url": {"https://example.org/whale.txt"}})
	body := rec.Body.String()
	if !strings.Contains(body, "The White Whale") {
		t.Errorf("expected title rendered, got %s", body)
	}
	if !strings.Contains(body, "whale") || !strings.Contains(body, "added to the database") {
		t.Errorf("expected frequencies and message rendered, got %s", body)
	}
}

func TestFormSearch_MissRendersHint(t *testing.T) {
	mux, _ := newTestMux(t, &stubFetcher{})

	rec := postForm(t, mux, url.Values{"search_title": {"1"}, "title": {"Missing"}})
	if !strings.Contains(rec.Body.String(), "paste its text URL") {
		t.Errorf("expected hint, got %s", rec.Body.String())
	}
}

// #endregion form-tests
