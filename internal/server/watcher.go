package server

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// rebuildInterval is the minimum spacing between rebuilds. The first edit
// rebuilds immediately; anything arriving sooner queues up behind it.
const rebuildInterval = 200 * time.Millisecond

// watchedExt lists the file extensions whose edits trigger a rebuild.
// Slides, manifests, and shell templates feed the build directly; styles,
// scripts, and images only need the browser to refresh.
var watchedExt = map[string]bool{
	".html": true,
	".htm":  true,
	".yaml": true,
	".yml":  true,
	".json": true,
	".css":  true,
	".js":   true,
	".tmpl": true,
	".svg":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Watcher watches a deck directory and invokes a callback after each burst
// of edits. The callback receives the path of the first file in the burst;
// it is expected to rebuild the whole deck regardless.
type Watcher struct {
	fw       *fsnotify.Watcher
	root     string
	onChange func(path string) error
	trigger  chan string
	limit    *rate.Limiter
}

// NewWatcher watches root and all its subdirectories. Call Run to start
// processing events and Close to release the underlying watcher.
func NewWatcher(root string, onChange func(path string) error) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fw:       fw,
		root:     filepath.Clean(root),
		onChange: onChange,
		trigger:  make(chan string, 1),
		limit:    rate.NewLimiter(rate.Every(rebuildInterval), 1),
	}
	if err := w.WatchTree(w.root); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// WatchTree adds dir and all its subdirectories to the watch set. Dot
// directories are skipped; editors and VCS tools churn inside them.
func (w *Watcher) WatchTree(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(info.Name(), ".") {
			return filepath.SkipDir
		}
		return w.fw.Add(path)
	})
}

// Run processes filesystem events until ctx is cancelled. Bursts of events
// collapse into at most one queued rebuild, so an editor saving several
// files produces one pass over the final state instead of one per file.
func (w *Watcher) Run(ctx context.Context) {
	go w.pump(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case path := <-w.trigger:
			if err := w.limit.Wait(ctx); err != nil {
				return
			}
			if err := w.onChange(path); err != nil {
				log.Printf("[watch] rebuild failed: %v", err)
			}
		}
	}
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

// pump filters raw filesystem events into the trigger channel. The channel
// holds one pending path; further events in a burst are dropped because a
// rebuild is already queued for them.
func (w *Watcher) pump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if !strings.HasPrefix(filepath.Base(ev.Name), ".") {
						if err := w.WatchTree(ev.Name); err != nil {
							log.Printf("[watch] watch %s: %v", ev.Name, err)
						}
					}
					continue
				}
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !w.relevant(ev.Name) {
				continue
			}
			select {
			case w.trigger <- ev.Name:
			default: // a rebuild is already queued
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Printf("[watch] error: %v", err)
		}
	}
}

// relevant reports whether an edit to name should trigger a rebuild.
// index.html and print.html at the deck root are build outputs; reacting
// to their writes would echo one redundant rebuild after every build. The
// slide files are outputs too, but those echoes are harmless: the
// follow-up pass produces identical bytes, writes nothing, and the loop
// settles.
func (w *Watcher) relevant(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	if !watchedExt[strings.ToLower(filepath.Ext(base))] {
		return false
	}
	if filepath.Dir(filepath.Clean(name)) == w.root && (base == "index.html" || base == "print.html") {
		return false
	}
	return true
}
