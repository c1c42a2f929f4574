package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"

	"github.com/TheRonzor/data101-s26-slides/internal/region"
)

// ReloadPath is the WebSocket endpoint the injected client connects to.
// The double underscore keeps it out of the way of deck files.
const ReloadPath = "/__reload"

// reloadClient is injected before </body> on every HTML page the server
// sends. It reloads the page when the server broadcasts, and retries after
// a short delay when the connection drops (a server restart, usually).
const reloadClient = `<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var sock = new WebSocket(proto + location.host + "` + ReloadPath + `");
  sock.onmessage = function () { location.reload(); };
  sock.onclose = function () {
    setTimeout(function () { location.reload(); }, 1000);
  };
})();
</script>
`

// Config carries the settings for a development server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// Root is the deck directory to serve.
	Root string
}

// Server serves a deck directory over HTTP with live-reload injection.
type Server struct {
	root   string
	hub    *Hub
	router *mux.Router
	httpd  *http.Server
}

// New builds a server for the given configuration.
func New(cfg Config) *Server {
	s := &Server{
		root: filepath.Clean(cfg.Root),
		hub:  NewHub(),
	}

	s.router = mux.NewRouter()
	s.router.Handle(ReloadPath, s.hub)
	s.router.PathPrefix("/").HandlerFunc(s.serveFile)

	s.httpd = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// BroadcastReload tells connected browsers to refresh.
func (s *Server) BroadcastReload(path string) {
	s.hub.BroadcastReload(path)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully. A nil return means the server was stopped on purpose.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		errc <- s.httpd.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpd.Shutdown(shutCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// serveFile serves one file from the deck directory. HTML pages get the
// live-reload client injected; everything else is sent as is.
func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	// Cleaning the rooted path first keeps .. segments from escaping the
	// deck directory.
	name := path.Clean("/" + r.URL.Path)[1:]
	if name == "" {
		name = "index.html"
	}

	full := filepath.Join(s.root, filepath.FromSlash(name))
	if info, err := os.Stat(full); err == nil && info.IsDir() {
		full = filepath.Join(full, "index.html")
	}

	if filepath.Ext(full) != ".html" && filepath.Ext(full) != ".htm" {
		http.ServeFile(w, r, full)
		return
	}

	data, err := os.ReadFile(full) // #nosec G304 -- path is cleaned and rooted in the served directory
	if err != nil {
		http.NotFound(w, r)
		return
	}

	page := region.InsertBeforeBody(string(data), reloadClient)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(page))
}
