// Package server implements the development server for a deck directory.
//
// The server does three things:
//   - Serves the deck directory over HTTP, injecting a small live-reload
//     client into every HTML page it sends.
//   - Watches the directory for edits and triggers a rebuild after each
//     burst of filesystem events.
//   - Pushes a reload message to connected browsers over a WebSocket when
//     a rebuild lands, so open slides refresh themselves.
//
// It is a development convenience only. There is no TLS, no auth, and the
// WebSocket endpoint accepts any origin; the generated deck itself is plain
// static files and needs no server in production.
package server
