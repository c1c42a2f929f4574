package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestDeck(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"index.html":       "<html><body><h1>Deck</h1></body></html>",
		"slides/01.html":   "<html><body><main>First slide</main></body></html>",
		"assets/theme.css": "body { margin: 0; }",
	}
	for name, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

// ---------------------------------------------------------------------------
// TestServeFile - HTML injection
// ---------------------------------------------------------------------------

func TestServeFile_InjectsReloadClientIntoHTML(t *testing.T) {
	t.Parallel()

	s := New(Config{Addr: ":0", Root: newTestDeck(t)})

	rec := get(t, s, "/slides/01.html")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "First slide") {
		t.Errorf("body does not contain the slide content:\n%s", body)
	}
	if !strings.Contains(body, ReloadPath) {
		t.Errorf("body does not contain the reload client:\n%s", body)
	}
	if strings.Index(body, "<script>") > strings.Index(body, "</body>") {
		t.Errorf("reload client was not injected before </body>:\n%s", body)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", got)
	}
}

func TestServeFile_RootServesIndex(t *testing.T) {
	t.Parallel()

	s := New(Config{Addr: ":0", Root: newTestDeck(t)})

	rec := get(t, s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); !strings.Contains(body, "<h1>Deck</h1>") {
		t.Errorf("body does not contain index content:\n%s", body)
	}
	if body := rec.Body.String(); !strings.Contains(body, ReloadPath) {
		t.Errorf("index page was served without the reload client")
	}
}

func TestServeFile_NonHTMLServedVerbatim(t *testing.T) {
	t.Parallel()

	s := New(Config{Addr: ":0", Root: newTestDeck(t)})

	rec := get(t, s, "/assets/theme.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "body { margin: 0; }" {
		t.Errorf("body = %q, want the stylesheet untouched", got)
	}
}

func TestServeFile_MissingPage(t *testing.T) {
	t.Parallel()

	s := New(Config{Addr: ":0", Root: newTestDeck(t)})

	if rec := get(t, s, "/slides/99.html"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestServeFile_TraversalStaysInRoot(t *testing.T) {
	t.Parallel()

	parent := t.TempDir()
	root := filepath.Join(parent, "deck")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(parent, "secret.html"), []byte("<html><body>secret</body></html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(Config{Addr: ":0", Root: root})

	rec := get(t, s, "/../secret.html")
	if rec.Code == http.StatusOK && strings.Contains(rec.Body.String(), "secret") {
		t.Errorf("request escaped the deck directory:\n%s", rec.Body.String())
	}
}
